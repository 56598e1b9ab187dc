// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/record"
	"github.com/bitmark-inc/ofundd/storage"
)

// load a record of the kind of r as seen by the transaction
func load(trx storage.Transaction, address account.Identity, r record.Record) (int, error) {
	data, allocation, err := storage.ReadAccount(trx, address)
	if nil != err {
		return 0, err
	}
	return allocation, decode(address, data, r)
}

// load a committed record
func loadCommitted(address account.Identity, r record.Record) (int, error) {
	data, allocation := storage.CommittedAccount(address)
	if nil == data {
		return 0, fmt.Errorf("address: %s: %w", address, fault.ErrAccountNotFound)
	}
	return allocation, decode(address, data, r)
}

func decode(address account.Identity, data []byte, r record.Record) error {
	packed := record.Packed(data)
	if packed.Kind() != r.Kind() {
		return fmt.Errorf("address: %s holds: %s: %w", address, packed.Kind(), fault.ErrWrongRecordKind)
	}
	err := packed.UnpackAs(r)
	if nil != err {
		logger.Panicf("processor: corrupt %s at: %s  error: %s", r.Kind(), address, err)
	}
	return nil
}

// create a record with the planned allocation
func (p *Processor) create(trx storage.Transaction, address account.Identity, r record.Record) error {
	packed, err := record.Pack(r)
	if nil != err {
		return err
	}
	return storage.CreateAccount(trx, address, record.Space(r.Kind(), p.policy), packed)
}

// rewrite a record within its allocation
func store(trx storage.Transaction, address account.Identity, r record.Record) error {
	packed, err := record.Pack(r)
	if nil != err {
		return err
	}
	return storage.UpdateAccount(trx, address, packed)
}

// the mint authority record for a mint, which must be initialised
func (p *Processor) mintAuthority(trx storage.Transaction, mint account.Identity) (account.Identity, *record.MintAuthority, error) {
	address, err := p.program.MintAuthority(mint)
	if nil != err {
		return account.Zero, nil, err
	}
	m := &record.MintAuthority{}
	_, err = load(trx, address.Identity, m)
	if fault.IsErrNotFound(err) {
		return account.Zero, nil, fmt.Errorf("mint: %s: %w", mint, fault.ErrMintAuthorityNotInitialized)
	}
	if nil != err {
		return account.Zero, nil, err
	}
	if !m.Initialized || m.Mint != mint {
		return account.Zero, nil, fmt.Errorf("mint: %s: %w", mint, fault.ErrMintAuthorityNotInitialized)
	}
	return address.Identity, m, nil
}
