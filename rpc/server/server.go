// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/mode"
	"github.com/bitmark-inc/ofundd/rpc/ledger"
	"github.com/bitmark-inc/ofundd/rpc/node"
	"github.com/bitmark-inc/ofundd/storage"
)

// Create - an RPC server with the Ledger and Node services registered
func Create(log *logger.L, proc ledger.Processor, program account.Identity, version string, rpcCount *atomic.Uint64) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(ledger.New(log, proc, mode.Is, nil))
	_ = server.Register(node.New(log, storage.Pool.Accounts, program, start, version, rpcCount))

	return server
}
