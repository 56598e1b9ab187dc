// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
)

// CreateAccount - stage a new record at an address with a fixed allocation
func CreateAccount(trx Transaction, address account.Identity, allocation int, data []byte) error {
	if trx.Has(Pool.Accounts, address[:]) {
		return fmt.Errorf("address: %s: %w", address, fault.ErrAccountAlreadyExists)
	}
	if allocation <= 0 || len(data) > allocation {
		return fmt.Errorf("%d bytes > %d: %w", len(data), allocation, fault.ErrAllocationExceeded)
	}
	trx.Put(Pool.Accounts, address[:], data)
	trx.PutN(Pool.Allocations, address[:], uint64(allocation))
	return nil
}

// UpdateAccount - stage new contents for an existing record
func UpdateAccount(trx Transaction, address account.Identity, data []byte) error {
	allocation, ok := trx.GetN(Pool.Allocations, address[:])
	if !ok {
		return fmt.Errorf("address: %s: %w", address, fault.ErrAccountNotFound)
	}
	if uint64(len(data)) > allocation {
		return fmt.Errorf("%d bytes > %d: %w", len(data), allocation, fault.ErrAllocationExceeded)
	}
	trx.Put(Pool.Accounts, address[:], data)
	return nil
}

// ReadAccount - a record and its allocation as seen by the transaction
func ReadAccount(trx Transaction, address account.Identity) ([]byte, int, error) {
	data := trx.Get(Pool.Accounts, address[:])
	if nil == data {
		return nil, 0, fmt.Errorf("address: %s: %w", address, fault.ErrAccountNotFound)
	}
	allocation, _ := trx.GetN(Pool.Allocations, address[:])
	return data, int(allocation), nil
}

// Reallocate - grow the allocation of an existing record
//
// an allocation never shrinks
func Reallocate(trx Transaction, address account.Identity, allocation int) error {
	current, ok := trx.GetN(Pool.Allocations, address[:])
	if !ok {
		return fmt.Errorf("address: %s: %w", address, fault.ErrAccountNotFound)
	}
	if allocation < 0 || uint64(allocation) < current {
		return fmt.Errorf("%d bytes < %d: %w", allocation, current, fault.ErrInvalidCount)
	}
	trx.PutN(Pool.Allocations, address[:], uint64(allocation))
	return nil
}

// AccountExists - committed record present at an address
func AccountExists(address account.Identity) bool {
	return Pool.Accounts.Has(address[:])
}

// CommittedAccount - the committed record at an address, nil if none
func CommittedAccount(address account.Identity) ([]byte, int) {
	data := Pool.Accounts.Get(address[:])
	if nil == data {
		return nil, 0
	}
	allocation, _ := Pool.Allocations.GetN(address[:])
	return data, int(allocation)
}
