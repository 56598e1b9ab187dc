// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package project - fundraising campaigns and their acceptance rules
package project

import (
	"fmt"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/authority"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/record"
	"github.com/bitmark-inc/ofundd/tier"
)

// Rules - which checks an investment must pass
type Rules struct {
	MinimumTier    tier.Tier // floor given to every new project
	EnforceActive  bool      // reject investment in an inactive project
	EnforceMinTier bool      // reject investors below the project minimum
}

// Registry - creates and gates projects
type Registry struct {
	rules Rules
}

// New - create a registry
func New(rules Rules) (*Registry, error) {
	if !rules.MinimumTier.Valid() {
		return nil, fault.ErrInvalidTier
	}
	return &Registry{rules: rules}, nil
}

// Create - a new active project with nothing raised
func (r *Registry) Create(admin account.Identity, bump uint8, name string, symbol string, description string, target uint64, vault account.Identity) (*record.Project, error) {
	if admin.IsZero() {
		return nil, fault.ErrInvalidIdentity
	}
	p := &record.Project{
		Admin:           admin,
		Bump:            bump,
		Name:            name,
		Symbol:          symbol,
		Description:     description,
		TargetAmount:    target,
		TotalRaised:     0,
		MinTierRequired: uint8(r.rules.MinimumTier),
		Vault:           vault,
		IsActive:        true,
	}
	err := p.Validate()
	if nil != err {
		return nil, err
	}
	return p, nil
}

// SetActive - admin only toggle, returns an updated copy
func (r *Registry) SetActive(caller account.Identity, p *record.Project, active bool) (*record.Project, error) {
	err := authority.RequireAdmin(caller, p.Admin)
	if nil != err {
		return nil, err
	}
	c := *p
	c.IsActive = active
	return &c, nil
}

// Accept - can an investor of this tier invest in the project
func (r *Registry) Accept(p *record.Project, investor tier.Tier) error {
	if r.rules.EnforceActive && !p.IsActive {
		return fmt.Errorf("project: %q: %w", p.Name, fault.ErrProjectNotActive)
	}
	if r.rules.EnforceMinTier && uint8(investor) < p.MinTierRequired {
		return fmt.Errorf("tier: %d < %d: %w", investor, p.MinTierRequired, fault.ErrInsufficientTier)
	}
	return nil
}
