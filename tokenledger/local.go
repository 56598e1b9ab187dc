// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenledger

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/authority"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/storage"
)

// mint record: decimals ++ authority ++ supply
const mintRecordSize = 1 + account.IdentityLength + 8

// Local - units kept in the same database as the records
//
// all writes are staged in the open storage transaction so a failed
// request never leaves a partial transfer behind
type Local struct {
	log *logger.L
	trx func() storage.Transaction
}

// NewLocal - create a ledger that writes into the transaction returned by current
func NewLocal(log *logger.L, current func() storage.Transaction) (*Local, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Local{
		log: log,
		trx: current,
	}, nil
}

func (l *Local) transaction() (storage.Transaction, error) {
	trx := l.trx()
	if nil == trx {
		return nil, fault.ErrTransactionNotStarted
	}
	return trx, nil
}

// CreateMint - new unit type with zero supply
func (l *Local) CreateMint(mint account.Identity, authority account.Identity, decimals uint8) error {
	trx, err := l.transaction()
	if nil != err {
		return err
	}
	if trx.Has(storage.Pool.Mints, mint[:]) {
		return fmt.Errorf("mint: %s: %w", mint, fault.ErrMintAlreadyExists)
	}
	putMint(trx, MintInfo{
		Mint:      mint,
		Authority: authority,
		Decimals:  decimals,
	})
	l.log.Infof("create mint: %s  authority: %s  decimals: %d", mint, authority, decimals)
	return nil
}

// MintInfo - current state of a unit type
func (l *Local) MintInfo(mint account.Identity) (MintInfo, error) {
	trx, err := l.transaction()
	if nil != err {
		return MintInfo{}, err
	}
	return getMint(trx, mint)
}

// Mint - create new units, proof must come from the mint authority
func (l *Local) Mint(mint account.Identity, to account.Identity, amount uint64, proof authority.Proof) error {
	trx, err := l.transaction()
	if nil != err {
		return err
	}
	info, err := getMint(trx, mint)
	if nil != err {
		return err
	}
	signer, err := consume(proof)
	if nil != err {
		return err
	}
	if signer != info.Authority {
		return fmt.Errorf("signer: %s is not mint authority: %w", signer, fault.ErrUnauthorized)
	}

	supply := info.Supply + amount
	if supply < info.Supply {
		return fault.ErrNumericalOverflow
	}
	balance := getBalance(trx, mint, to)
	newBalance := balance + amount
	if newBalance < balance {
		return fault.ErrNumericalOverflow
	}

	info.Supply = supply
	putMint(trx, info)
	putBalance(trx, mint, to, newBalance)

	l.log.Debugf("mint: %s  to: %s  amount: %d", mint, to, amount)
	return nil
}

// Transfer - move units, proof must come from the sender
func (l *Local) Transfer(mint account.Identity, from account.Identity, to account.Identity, amount uint64, proof authority.Proof) error {
	trx, err := l.transaction()
	if nil != err {
		return err
	}
	_, err = getMint(trx, mint)
	if nil != err {
		return err
	}
	signer, err := consume(proof)
	if nil != err {
		return err
	}
	if signer != from {
		return fmt.Errorf("signer: %s is not sender: %w", signer, fault.ErrUnauthorized)
	}

	source := getBalance(trx, mint, from)
	if source < amount {
		return fmt.Errorf("balance: %d < %d: %w", source, amount, fault.ErrInsufficientFunds)
	}
	if from == to {
		return nil
	}
	destination := getBalance(trx, mint, to)
	if destination+amount < destination {
		return fault.ErrNumericalOverflow
	}

	putBalance(trx, mint, from, source-amount)
	putBalance(trx, mint, to, destination+amount)

	l.log.Debugf("transfer: %s  from: %s  to: %s  amount: %d", mint, from, to, amount)
	return nil
}

// Balance - units held, zero for an unknown owner
func (l *Local) Balance(mint account.Identity, owner account.Identity) (uint64, error) {
	trx := l.trx()
	if nil == trx {
		if !storage.Pool.Mints.Has(mint[:]) {
			return 0, fmt.Errorf("mint: %s: %w", mint, fault.ErrMintNotFound)
		}
		n, _ := storage.Pool.Balances.GetN(balanceKey(mint, owner))
		return n, nil
	}
	_, err := getMint(trx, mint)
	if nil != err {
		return 0, err
	}
	return getBalance(trx, mint, owner), nil
}

func consume(proof authority.Proof) (account.Identity, error) {
	if nil == proof {
		return account.Zero, fault.ErrInvalidProof
	}
	return proof.Consume()
}

func balanceKey(mint account.Identity, owner account.Identity) []byte {
	key := make([]byte, 0, 2*account.IdentityLength)
	key = append(key, mint[:]...)
	return append(key, owner[:]...)
}

func getBalance(trx storage.Transaction, mint account.Identity, owner account.Identity) uint64 {
	n, _ := trx.GetN(storage.Pool.Balances, balanceKey(mint, owner))
	return n
}

func putBalance(trx storage.Transaction, mint account.Identity, owner account.Identity, amount uint64) {
	trx.PutN(storage.Pool.Balances, balanceKey(mint, owner), amount)
}

func getMint(trx storage.Transaction, mint account.Identity) (MintInfo, error) {
	data := trx.Get(storage.Pool.Mints, mint[:])
	if nil == data {
		return MintInfo{}, fmt.Errorf("mint: %s: %w", mint, fault.ErrMintNotFound)
	}
	if mintRecordSize != len(data) {
		logger.Panicf("tokenledger: corrupt mint record: %s: %x", mint, data)
	}
	info := MintInfo{
		Mint:     mint,
		Decimals: data[0],
		Supply:   binary.BigEndian.Uint64(data[1+account.IdentityLength:]),
	}
	copy(info.Authority[:], data[1:1+account.IdentityLength])
	return info, nil
}

func putMint(trx storage.Transaction, info MintInfo) {
	data := make([]byte, mintRecordSize)
	data[0] = info.Decimals
	copy(data[1:], info.Authority[:])
	binary.BigEndian.PutUint64(data[1+account.IdentityLength:], info.Supply)
	trx.Put(storage.Pool.Mints, info.Mint[:], data)
}
