// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/rpc"
	"github.com/bitmark-inc/ofundd/rpc/ledger/mocks"
	"github.com/bitmark-inc/ofundd/rpc/listeners"
)

func TestInitialise(t *testing.T) {
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

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 10,
		Listen:             []string{"127.0.0.1:0"},
	}
	proc := mocks.NewMockProcessor(ctl)

	assert.Equal(t, fault.ErrNotInitialised, rpc.Finalise())

	require.Nil(t, rpc.Initialise(configuration, proc, account.Identity{1}, "test"))
	assert.Equal(t, fault.ErrAlreadyInitialised, rpc.Initialise(configuration, proc, account.Identity{1}, "test"))
	assert.Nil(t, rpc.Finalise())

	bad := &listeners.RPCConfiguration{
		MaximumConnections: 10,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        "missing.crt",
	}
	assert.Equal(t, fault.ErrMissingParameters, rpc.Initialise(bad, proc, account.Identity{1}, "test"))
}
