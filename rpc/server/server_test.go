// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc/jsonrpc"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/chain"
	"github.com/bitmark-inc/ofundd/mode"
	"github.com/bitmark-inc/ofundd/processor"
	"github.com/bitmark-inc/ofundd/rpc/ledger/mocks"
	"github.com/bitmark-inc/ofundd/rpc/node"
	"github.com/bitmark-inc/ofundd/rpc/server"
)

func TestCreate(t *testing.T) {
	logging := logger.Configuration{
		Directory: t.TempDir(),
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	require.Nil(t, logger.Initialise(logging), "logger")
	defer logger.Finalise()

	require.Nil(t, mode.Initialise(chain.Local), "mode")
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	proc := mocks.NewMockProcessor(ctl)
	proc.EXPECT().
		GetUserInvestment(gomock.Any()).
		Return(&processor.GetUserInvestmentReply{Amount: 42}, nil)

	var program account.Identity
	program[0] = 0x7f

	var count atomic.Uint64
	s := server.Create(logger.New("test"), proc, program, "0.1", &count)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))
	client := jsonrpc.NewClient(clientConn)
	defer client.Close()

	var investment processor.GetUserInvestmentReply
	require.Nil(t, client.Call("Ledger.GetUserInvestment", &processor.GetUserInvestmentRequest{}, &investment))
	assert.Equal(t, uint64(42), investment.Amount)

	var info node.InfoReply
	require.Nil(t, client.Call("Node.Info", &node.InfoArguments{}, &info))
	assert.Equal(t, chain.Local, info.Chain)
	assert.Equal(t, "Starting", info.Mode)
	assert.Equal(t, program, info.Program)
	assert.Equal(t, "0.1", info.Version)
}
