// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// width of allocations, mint decimals and unit balances
const counterSize = 8

// PoolHandle - the keys of one pool share a one byte prefix
//
// a handle reads committed state only, so queries never observe a
// request that may still abort
type PoolHandle struct {
	prefix byte
	limit  []byte
	access Access
}

// Element - one key of a pool without its prefix and its value
type Element struct {
	Key   []byte
	Value []byte
}

func (p *PoolHandle) prefixKey(key []byte) []byte {
	k := make([]byte, 0, len(key)+1)
	k = append(k, p.prefix)
	return append(k, key...)
}

// Get - committed value of an address or other key, nil if absent
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p || nil == p.access {
		return nil
	}
	value, err := p.access.GetCommitted(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - committed counter such as an allocation size
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return counter("pool.GetN", key, p.Get(key))
}

// Has - a committed value exists
func (p *PoolHandle) Has(key []byte) bool {
	return nil != p.Get(key)
}

// decode a stored counter, a short value means the database is damaged
func counter(where string, key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < counterSize {
		logger.Panicf("%s: truncated counter for: %x: %x", where, key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:counterSize]), true
}

func encodeCounter(value uint64) []byte {
	buffer := make([]byte, counterSize)
	binary.BigEndian.PutUint64(buffer, value)
	return buffer
}
