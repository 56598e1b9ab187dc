// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - derived addresses and the checks guarding every mutation
package authority

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
)

// MaxSeedLength - longest single seed component
const MaxSeedLength = 32

// seed tags
const (
	MintAuthoritySeed = "authority"
	MintSignerSeed    = "mint-authority"
	UserProfileSeed   = "user-profile"
	ProjectSeed       = "project"
	VaultSeed         = "project-vault"
)

// Program - the process wide identity every address is derived under
type Program struct {
	id account.Identity
}

// Address - a derived address with its canonical bump
type Address struct {
	Identity account.Identity
	Bump     uint8
}

// NewProgram - fix the program identity
func NewProgram(id account.Identity) (Program, error) {
	if id.IsZero() {
		return Program{}, fault.ErrInvalidIdentity
	}
	return Program{id: id}, nil
}

// ID - the program identity
func (p Program) ID() account.Identity {
	return p.id
}

// Derive - canonical address for a seed list, highest viable bump
func (p Program) Derive(seeds ...[]byte) (Address, error) {
	if p.id.IsZero() {
		return Address{}, fault.ErrNotInitialised
	}
	s, err := copySeeds(seeds)
	if nil != err {
		return Address{}, err
	}
	key, bump, err := common.FindProgramAddress(s, p.id.PublicKey())
	if nil != err {
		return Address{}, fmt.Errorf("%s: %w", err, fault.ErrInvalidSeeds)
	}
	return Address{
		Identity: account.FromPublicKey(key),
		Bump:     bump,
	}, nil
}

// Recreate - address for a seed list and a stored bump
func (p Program) Recreate(bump uint8, seeds ...[]byte) (account.Identity, error) {
	s, err := copySeeds(seeds)
	if nil != err {
		return account.Zero, err
	}
	s = append(s, []byte{bump})
	key, err := common.CreateProgramAddress(s, p.id.PublicKey())
	if nil != err {
		return account.Zero, fmt.Errorf("%s: %w", err, fault.ErrInvalidSeeds)
	}
	return account.FromPublicKey(key), nil
}

// fresh backing array so the derivation never appends into a caller's slice
func copySeeds(seeds [][]byte) ([][]byte, error) {
	s := make([][]byte, 0, len(seeds)+1)
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return nil, fault.ErrInvalidSeeds
		}
		s = append(s, seed)
	}
	return s, nil
}

// MintAuthority - address of the mint authority record
func (p Program) MintAuthority(mint account.Identity) (Address, error) {
	return p.Derive([]byte(MintAuthoritySeed), mint[:])
}

// MintSigner - address that is the authority of the mint itself
func (p Program) MintSigner(mint account.Identity) (Address, error) {
	return p.Derive([]byte(MintSignerSeed), mint[:])
}

// UserProfile - address of a participant's profile
func (p Program) UserProfile(owner account.Identity) (Address, error) {
	return p.Derive([]byte(UserProfileSeed), owner[:])
}

// Project - address of a project, derived from its name
func (p Program) Project(name string) (Address, error) {
	if 0 == len(name) {
		return Address{}, fault.ErrInvalidSeeds
	}
	if len(name) > MaxSeedLength {
		return Address{}, fault.ErrStringTooLong
	}
	return p.Derive([]byte(ProjectSeed), []byte(name))
}

// Vault - address of a project's vault
func (p Program) Vault(project account.Identity) (Address, error) {
	return p.Derive([]byte(VaultSeed), project[:])
}
