// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/tier"
)

// Record - any stored record
type Record interface {
	Kind() Kind
	Validate() error
}

// byte budgets for string fields
const (
	MaxTokenNameLength   = 56
	MaxTokenSymbolLength = 12
	MaxTokenURILength    = 124

	MaxProjectNameLength        = 32
	MaxProjectSymbolLength      = 8
	MaxProjectDescriptionLength = 200
)

// MintAuthority - one per unit type, fields are write once
type MintAuthority struct {
	Bump        uint8            `json:"bump"`
	Mint        account.Identity `json:"mint"`
	Admin       account.Identity `json:"admin"`
	TokenName   string           `json:"tokenName"`
	TokenSymbol string           `json:"tokenSymbol"`
	TokenURI    string           `json:"tokenUri"`
	Initialized bool             `json:"initialized"`
}

// UserProfile - one per participant
//
// investments are in the order they were first made
type UserProfile struct {
	Owner         account.Identity `json:"owner"`
	Bump          uint8            `json:"bump"`
	Tier          uint8            `json:"tier"`
	TotalInvested uint64           `json:"totalInvested,string"`
	Investments   []Investment     `json:"investments"`
}

// Investment - embedded in its owner's profile, one per project
type Investment struct {
	Project   account.Identity `json:"project"`
	Amount    uint64           `json:"amount,string"`
	Timestamp int64            `json:"timestamp"`
}

// Project - one per campaign, addressed by its name
type Project struct {
	Admin           account.Identity `json:"admin"`
	Bump            uint8            `json:"bump"`
	Name            string           `json:"name"`
	Symbol          string           `json:"symbol"`
	Description     string           `json:"description"`
	TargetAmount    uint64           `json:"targetAmount,string"`
	TotalRaised     uint64           `json:"totalRaised,string"`
	MinTierRequired uint8            `json:"minTierRequired"`
	Vault           account.Identity `json:"vault"`
	IsActive        bool             `json:"isActive"`
}

// Kind - record kind
func (*MintAuthority) Kind() Kind { return MintAuthorityKind }
func (*UserProfile) Kind() Kind   { return UserProfileKind }
func (*Project) Kind() Kind       { return ProjectKind }

// Validate - check the string budgets
func (m *MintAuthority) Validate() error {
	return checkStrings(
		budget{m.TokenName, MaxTokenNameLength},
		budget{m.TokenSymbol, MaxTokenSymbolLength},
		budget{m.TokenURI, MaxTokenURILength},
	)
}

// Validate - check the tier ordinal
func (u *UserProfile) Validate() error {
	if _, err := tier.FromUint8(u.Tier); nil != err {
		return fmt.Errorf("user profile: %w", err)
	}
	return nil
}

// Validate - check the string budgets
func (p *Project) Validate() error {
	return checkStrings(
		budget{p.Name, MaxProjectNameLength},
		budget{p.Symbol, MaxProjectSymbolLength},
		budget{p.Description, MaxProjectDescriptionLength},
	)
}

// Find - index of the entry for a project, -1 if none
func (u *UserProfile) Find(project account.Identity) int {
	for i, inv := range u.Investments {
		if inv.Project == project {
			return i
		}
	}
	return -1
}

// Clone - deep copy so that changes can be staged
func (u *UserProfile) Clone() *UserProfile {
	c := *u
	if nil != u.Investments {
		c.Investments = make([]Investment, len(u.Investments), cap(u.Investments))
		copy(c.Investments, u.Investments)
	}
	return &c
}
