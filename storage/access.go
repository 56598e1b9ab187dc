// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/ofundd/fault"
)

// Access - for Database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	GetCommitted([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - batch and cache over one database
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

// Begin - mark the batch as in use
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.inUse = true
	return nil
}

// Put - stage a write
func (d *AccessData) Put(key []byte, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)
	d.cache.Write(key, stored)
	d.batch.Put(key, stored)
}

// Delete - stage a removal
func (d *AccessData) Delete(key []byte) {
	d.cache.Remove(key)
	d.batch.Delete(key)
}

// Commit - write the batch and release it
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.ErrTransactionNotStarted
	}

	// read only requests stage nothing
	if 0 == d.cache.Count() {
		d.reset()
		return nil
	}

	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

// Abort - discard the batch
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.reset()
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// Get - staged value if any, otherwise the stored one
//
// returns leveldb.ErrNotFound for absent or staged deleted keys
func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, state := d.cache.Lookup(key)
	switch state {
	case stagedDelete:
		return nil, leveldb.ErrNotFound
	case stagedWrite:
		return val, nil
	}
	return d.db.Get(key, nil)
}

// GetCommitted - ignore anything staged
func (d *AccessData) GetCommitted(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

// Iterator - over committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// Has - staged or stored
func (d *AccessData) Has(key []byte) (bool, error) {
	_, state := d.cache.Lookup(key)
	switch state {
	case stagedDelete:
		return false, nil
	case stagedWrite:
		return true, nil
	}
	return d.db.Has(key, nil)
}

// InUse - true while a transaction is open
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
