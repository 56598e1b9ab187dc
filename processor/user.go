// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"fmt"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/authority"
	"github.com/bitmark-inc/ofundd/capacity"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/record"
	"github.com/bitmark-inc/ofundd/storage"
	"github.com/bitmark-inc/ofundd/tier"
)

// RegisterUser - create the caller's profile and mint the initial grant
func (p *Processor) RegisterUser(caller account.Identity, req *RegisterUserRequest) (*RegisterUserReply, error) {
	reply := &RegisterUserReply{}

	err := p.execute(OpRegisterUser, func(trx storage.Transaction) error {

		recordAddress, err := p.program.MintAuthority(req.Mint)
		if nil != err {
			return err
		}
		err = authority.Verify("mint authority", recordAddress, req.MintAuthority)
		if nil != err {
			return err
		}
		if caller.IsZero() {
			return fault.ErrUnauthorized
		}
		profileAddress, err := p.program.UserProfile(caller)
		if nil != err {
			return err
		}
		err = authority.Verify("user profile", profileAddress, req.UserProfile)
		if nil != err {
			return err
		}
		p.log.Debugf("user: %s  profile: %s", caller, profileAddress.Identity)

		_, m, err := p.mintAuthority(trx, req.Mint)
		if nil != err {
			return err
		}

		profile := &record.UserProfile{
			Owner:         caller,
			Bump:          profileAddress.Bump,
			Tier:          uint8(p.classifier.Classify(p.grant)),
			TotalInvested: 0,
			Investments:   []record.Investment{},
		}
		err = p.create(trx, profileAddress.Identity, profile)
		if nil != err {
			return err
		}

		proof, signer, err := p.program.MintCapability(req.Mint)
		if nil != err {
			return err
		}
		if signer.Bump != m.Bump {
			return fmt.Errorf("mint signer bump: %d: %w", m.Bump, fault.ErrUnauthorized)
		}
		err = p.units.Mint(req.Mint, caller, p.grant, proof)
		if nil != err {
			return err
		}

		reply.UserProfile = profileAddress.Identity
		reply.Bump = profileAddress.Bump
		reply.Tier = profile.Tier
		reply.Grant = p.grant
		return nil
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// UpdateUserTier - reclassify the caller from their current balance
func (p *Processor) UpdateUserTier(caller account.Identity, req *UpdateUserTierRequest) (*UpdateUserTierReply, error) {
	reply := &UpdateUserTierReply{}

	err := p.execute(OpUpdateUserTier, func(trx storage.Transaction) error {

		profileAddress, err := p.program.UserProfile(caller)
		if nil != err {
			return err
		}
		err = authority.Verify("user profile", profileAddress, req.UserProfile)
		if nil != err {
			return err
		}

		profile := &record.UserProfile{}
		_, err = load(trx, profileAddress.Identity, profile)
		if nil != err {
			return err
		}
		err = authority.RequireOwner(caller, profile.Owner)
		if nil != err {
			return err
		}

		_, _, err = p.mintAuthority(trx, req.Mint)
		if nil != err {
			return err
		}

		balance, err := p.units.Balance(req.Mint, caller)
		if nil != err {
			return err
		}

		updated := profile.Clone()
		updated.Tier = uint8(p.classifier.Classify(balance))
		err = store(trx, profileAddress.Identity, updated)
		if nil != err {
			return err
		}

		reply.Balance = balance
		reply.Tier = updated.Tier
		return nil
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetUserInvestment - amount an owner has invested in a project
func (p *Processor) GetUserInvestment(req *GetUserInvestmentRequest) (*GetUserInvestmentReply, error) {
	reply := &GetUserInvestmentReply{}

	err := p.query(OpGetUserInvestment, func() error {

		profileAddress, err := p.program.UserProfile(req.Owner)
		if nil != err {
			return err
		}
		err = authority.Verify("user profile", profileAddress, req.UserProfile)
		if nil != err {
			return err
		}

		profile := &record.UserProfile{}
		_, err = loadCommitted(profileAddress.Identity, profile)
		if nil != err {
			return err
		}

		reply.Amount, err = p.recorder.Lookup(profile, req.Project)
		return err
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// ReallocateUserProfile - grow a growable profile by a number of entries
func (p *Processor) ReallocateUserProfile(caller account.Identity, req *ReallocateUserProfileRequest) (*ReallocateUserProfileReply, error) {
	reply := &ReallocateUserProfileReply{}

	err := p.execute(OpReallocateUserProfile, func(trx storage.Transaction) error {

		profileAddress, err := p.program.UserProfile(caller)
		if nil != err {
			return err
		}
		err = authority.Verify("user profile", profileAddress, req.UserProfile)
		if nil != err {
			return err
		}

		profile := &record.UserProfile{}
		allocation, err := load(trx, profileAddress.Identity, profile)
		if nil != err {
			return err
		}
		err = authority.RequireOwner(caller, profile.Owner)
		if nil != err {
			return err
		}

		if capacity.Unbounded != p.policy.Mode {
			return fmt.Errorf("policy: %s: %w", p.policy, fault.ErrInvalidCapacityPolicy)
		}
		if req.Additional <= 0 {
			return fault.ErrInvalidCount
		}

		size := capacity.Grow(allocation, record.InvestmentCollection(0), req.Additional)
		err = storage.Reallocate(trx, profileAddress.Identity, size)
		if nil != err {
			return err
		}
		p.log.Debugf("profile: %s  allocation: %d -> %d", profileAddress.Identity, allocation, size)

		reply.Allocation = size
		return nil
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// ensure a profile allocation can hold its history
func (p *Processor) ensureRoom(trx storage.Transaction, address account.Identity, allocation int, profile *record.UserProfile) error {
	needed := record.UserProfileSpace(len(profile.Investments))
	if needed <= allocation {
		return nil
	}
	if capacity.Unbounded != p.policy.Mode || !p.autoRealloc {
		return fmt.Errorf("%d bytes > %d: %w", needed, allocation, fault.ErrAllocationExceeded)
	}
	p.log.Debugf("profile: %s  reallocate: %d -> %d", address, allocation, needed)
	return storage.Reallocate(trx, address, needed)
}

// tier of a stored profile
func profileTier(profile *record.UserProfile) tier.Tier {
	t, err := tier.FromUint8(profile.Tier)
	if nil != err {
		return tier.None
	}
	return t
}
