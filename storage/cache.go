// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// staged state of a key within the open request
type staged int

const (
	notStaged staged = iota
	stagedWrite
	stagedDelete
)

// Cache - writes of the open request that are not yet in leveldb
//
// entries never expire, the overlay is emptied when the request
// commits or aborts
type Cache interface {
	Lookup([]byte) ([]byte, staged)
	Write([]byte, []byte)
	Remove([]byte)
	Count() int
	Clear()
}

type overlay struct {
	entries *cache.Cache
}

type overlayEntry struct {
	state staged
	value []byte
}

func newCache() Cache {
	return &overlay{
		// no janitor, nothing is left behind after a request
		entries: cache.New(cache.NoExpiration, 0),
	}
}

// Lookup - a staged record value, nil when removed or not staged
func (o *overlay) Lookup(key []byte) ([]byte, staged) {
	obj, found := o.entries.Get(string(key))
	if !found {
		return nil, notStaged
	}
	e := obj.(overlayEntry)
	return e.value, e.state
}

func (o *overlay) Write(key []byte, value []byte) {
	o.entries.Set(string(key), overlayEntry{state: stagedWrite, value: value}, cache.NoExpiration)
}

func (o *overlay) Remove(key []byte) {
	o.entries.Set(string(key), overlayEntry{state: stagedDelete}, cache.NoExpiration)
}

// Count - keys touched by the open request
func (o *overlay) Count() int {
	return o.entries.ItemCount()
}

func (o *overlay) Clear() {
	o.entries.Flush()
}
