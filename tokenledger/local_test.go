// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenledger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/authority"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/storage"
	"github.com/bitmark-inc/ofundd/tokenledger"
)

func identity(b byte) account.Identity {
	id := account.Identity{}
	for i := range id {
		id[i] = b
	}
	return id
}

type fixture struct {
	ledger *tokenledger.Local
	trx    storage.Transaction
}

func setup(t *testing.T) *fixture {
	dir := filepath.Join(t.TempDir(), "testing")
	require.Nil(t, os.Mkdir(dir, 0700), "test directory")

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	err := storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	require.Nil(t, err, "storage")

	f := &fixture{}
	f.ledger, err = tokenledger.NewLocal(logger.New("tokenledger"), func() storage.Transaction {
		return f.trx
	})
	require.Nil(t, err, "ledger")
	return f
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
}

func (f *fixture) begin(t *testing.T) {
	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "transaction")
	f.trx = trx
}

func (f *fixture) commit(t *testing.T) {
	require.Nil(t, f.trx.Commit(), "commit")
	f.trx = nil
}

func proof(t *testing.T, id account.Identity) authority.Proof {
	p, err := authority.SignerProof(id)
	require.Nil(t, err, "proof")
	return p
}

func TestNoTransaction(t *testing.T) {
	f := setup(t)
	defer teardown()

	err := f.ledger.CreateMint(identity(1), identity(2), 9)
	assert.Equal(t, fault.ErrTransactionNotStarted, err, "create outside transaction")

	_, err = f.ledger.Balance(identity(1), identity(3))
	assert.True(t, fault.IsErrNotFound(err), "unknown mint: %s", err)
}

func TestMintAndTransfer(t *testing.T) {
	f := setup(t)
	defer teardown()

	mint := identity(1)
	signer := identity(2)
	alice := identity(3)
	bob := identity(4)

	f.begin(t)
	require.Nil(t, f.ledger.CreateMint(mint, signer, 9), "create")

	err := f.ledger.CreateMint(mint, signer, 9)
	assert.True(t, fault.IsErrExists(err), "duplicate mint: %s", err)

	err = f.ledger.Mint(mint, alice, 1000, proof(t, alice))
	assert.True(t, fault.IsErrAuthorisation(err), "wrong signer: %s", err)

	p := proof(t, signer)
	require.Nil(t, f.ledger.Mint(mint, alice, 1000, p), "mint")

	err = f.ledger.Mint(mint, alice, 1000, p)
	assert.Equal(t, fault.ErrProofAlreadyUsed, err, "reused proof")
	f.commit(t)

	balance, err := f.ledger.Balance(mint, alice)
	assert.Nil(t, err, "committed balance")
	assert.Equal(t, uint64(1000), balance, "minted")

	f.begin(t)
	err = f.ledger.Transfer(mint, alice, bob, 300, proof(t, bob))
	assert.True(t, fault.IsErrAuthorisation(err), "sender must sign: %s", err)

	err = f.ledger.Transfer(mint, alice, bob, 1001, proof(t, alice))
	assert.Equal(t, "InsufficientFunds", fault.Code(err), "insufficient")

	require.Nil(t, f.ledger.Transfer(mint, alice, bob, 300, proof(t, alice)), "transfer")

	info, err := f.ledger.MintInfo(mint)
	assert.Nil(t, err, "info")
	assert.Equal(t, signer, info.Authority, "authority")
	assert.Equal(t, uint8(9), info.Decimals, "decimals")
	assert.Equal(t, uint64(1000), info.Supply, "supply")
	f.commit(t)

	a, _ := f.ledger.Balance(mint, alice)
	b, _ := f.ledger.Balance(mint, bob)
	assert.Equal(t, uint64(700), a, "alice")
	assert.Equal(t, uint64(300), b, "bob")
}

func TestAbortedTransferLeavesBalances(t *testing.T) {
	f := setup(t)
	defer teardown()

	mint := identity(1)
	signer := identity(2)
	alice := identity(3)

	f.begin(t)
	require.Nil(t, f.ledger.CreateMint(mint, signer, 9), "create")
	require.Nil(t, f.ledger.Mint(mint, alice, 50, proof(t, signer)), "mint")
	f.commit(t)

	f.begin(t)
	require.Nil(t, f.ledger.Transfer(mint, alice, identity(5), 50, proof(t, alice)), "transfer")
	f.trx.Abort()
	f.trx = nil

	a, err := f.ledger.Balance(mint, alice)
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(50), a, "unchanged after abort")
}

func TestMintOverflow(t *testing.T) {
	f := setup(t)
	defer teardown()

	mint := identity(1)
	signer := identity(2)

	f.begin(t)
	defer f.trx.Abort()

	require.Nil(t, f.ledger.CreateMint(mint, signer, 0), "create")
	require.Nil(t, f.ledger.Mint(mint, identity(3), ^uint64(0), proof(t, signer)), "max")

	err := f.ledger.Mint(mint, identity(4), 1, proof(t, signer))
	assert.Equal(t, fault.ErrNumericalOverflow, err, "supply overflow")
}
