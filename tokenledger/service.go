// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokenledger - the value unit ledger that mints and moves units
//
// the core never holds value itself, every movement is requested here
// with a one-shot proof from the authority package
package tokenledger

import (
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/authority"
)

// MintInfo - the state of one unit type
type MintInfo struct {
	Mint      account.Identity `json:"mint"`
	Authority account.Identity `json:"authority"`
	Decimals  uint8            `json:"decimals"`
	Supply    uint64           `json:"supply,string"`
}

// Service - external value transfer collaborator
//
//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Service interface {
	CreateMint(mint account.Identity, authority account.Identity, decimals uint8) error
	MintInfo(mint account.Identity) (MintInfo, error)
	Mint(mint account.Identity, to account.Identity, amount uint64, proof authority.Proof) error
	Transfer(mint account.Identity, from account.Identity, to account.Identity, amount uint64, proof authority.Proof) error
	Balance(mint account.Identity, owner account.Identity) (uint64, error)
}
