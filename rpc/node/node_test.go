// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/chain"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/mode"
	"github.com/bitmark-inc/ofundd/record"
	"github.com/bitmark-inc/ofundd/rpc/node"
	"github.com/bitmark-inc/ofundd/storage"
)

func setup(t *testing.T) {
	dir := t.TempDir()
	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	require.Nil(t, logger.Initialise(logging), "logger")
	require.Nil(t, storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite), "storage")
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
}

func identity(b byte) account.Identity {
	var id account.Identity
	for i := range id {
		id[i] = b
	}
	return id
}

// store records at the given addresses
func store(t *testing.T, records map[account.Identity]record.Record) {
	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "transaction")
	for address, r := range records {
		packed, err := record.Pack(r)
		require.Nil(t, err, "pack")
		require.Nil(t, storage.CreateAccount(trx, address, len(packed)+16, packed), "create")
	}
	require.Nil(t, trx.Commit(), "commit")
}

func TestAccounts(t *testing.T) {
	setup(t)
	defer teardown()

	store(t, map[account.Identity]record.Record{
		identity(0x10): &record.MintAuthority{Mint: identity(0x01), Admin: identity(0x02), TokenName: "Fund"},
		identity(0x20): &record.Project{Admin: identity(0x02), Name: "solar", Vault: identity(0x03)},
		identity(0x30): &record.UserProfile{Owner: identity(0x04)},
	})

	n := node.New(logger.New("test"), storage.Pool.Accounts, identity(0x7f), time.Now(), "1", nil)

	var reply node.AccountsReply
	require.Nil(t, n.Accounts(&node.AccountsArguments{Count: 2}, &reply), "first page")
	require.Equal(t, 2, len(reply.Accounts))
	assert.Equal(t, identity(0x10), reply.Accounts[0].Address)
	assert.Equal(t, record.MintAuthorityKind.String(), reply.Accounts[0].Kind)
	assert.Equal(t, identity(0x20), reply.Accounts[1].Address)
	assert.Equal(t, record.ProjectKind.String(), reply.Accounts[1].Kind)
	assert.Equal(t, identity(0x20), reply.NextStart)

	var next node.AccountsReply
	require.Nil(t, n.Accounts(&node.AccountsArguments{Start: reply.NextStart, Count: 2}, &next), "second page")
	require.Equal(t, 1, len(next.Accounts))
	assert.Equal(t, identity(0x30), next.Accounts[0].Address)
	assert.Equal(t, record.UserProfileKind.String(), next.Accounts[0].Kind)
	assert.True(t, next.NextStart.IsZero(), "last page")

	err := n.Accounts(&node.AccountsArguments{Count: 0}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err)
	err = n.Accounts(&node.AccountsArguments{Count: 101}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err)
}

func TestInfo(t *testing.T) {
	setup(t)
	defer teardown()

	require.Nil(t, mode.Initialise(chain.Testing), "mode")
	defer mode.Finalise()
	mode.Set(mode.Serving)

	var count atomic.Uint64
	count.Store(3)

	n := node.New(logger.New("test"), storage.Pool.Accounts, identity(0x7f), time.Now(), "1.2.3", &count)

	var reply node.InfoReply
	require.Nil(t, n.Info(&node.InfoArguments{}, &reply))
	assert.Equal(t, chain.Testing, reply.Chain)
	assert.Equal(t, "Serving", reply.Mode)
	assert.True(t, reply.Testing)
	assert.Equal(t, identity(0x7f), reply.Program)
	assert.Equal(t, uint64(3), reply.RPCs)
	assert.Equal(t, "1.2.3", reply.Version)
	assert.NotEmpty(t, reply.Uptime)
}
