// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - all writes staged until commit
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

// TransactionImpl - the transaction over a single access
type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

// Begin - fails if a transaction is already open
func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

// Put - stage a key/value
func (t *TransactionImpl) Put(p *PoolHandle, key []byte, value []byte) {
	t.access.Put(p.prefixKey(key), value)
}

// PutN - stage a big endian uint64
func (t *TransactionImpl) PutN(p *PoolHandle, key []byte, value uint64) {
	t.access.Put(p.prefixKey(key), encodeCounter(value))
}

// Delete - stage a removal
func (t *TransactionImpl) Delete(p *PoolHandle, key []byte) {
	t.access.Delete(p.prefixKey(key))
}

// Get - value as seen by this transaction, nil if absent
func (t *TransactionImpl) Get(p *PoolHandle, key []byte) []byte {
	value, err := t.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// GetN - big endian uint64 as seen by this transaction
func (t *TransactionImpl) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return counter("transaction.GetN", key, t.Get(p, key))
}

// Has - key exists as seen by this transaction
func (t *TransactionImpl) Has(p *PoolHandle, key []byte) bool {
	found, err := t.access.Has(p.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

// Commit - write everything staged
func (t *TransactionImpl) Commit() error {
	return t.access.Commit()
}

// Abort - discard everything staged
func (t *TransactionImpl) Abort() {
	t.access.Abort()
}
