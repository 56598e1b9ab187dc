// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"errors"
	"fmt"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/authority"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/record"
	"github.com/bitmark-inc/ofundd/storage"
)

// InitializeProject - create a project administered by the caller
func (p *Processor) InitializeProject(caller account.Identity, req *InitializeProjectRequest) (*InitializeProjectReply, error) {
	reply := &InitializeProjectReply{}

	err := p.execute(OpInitializeProject, func(trx storage.Transaction) error {

		projectAddress, err := p.program.Project(req.Name)
		if nil != err {
			return err
		}
		err = authority.Verify("project", projectAddress, req.Project)
		if nil != err {
			return err
		}
		vault, err := p.program.Vault(projectAddress.Identity)
		if nil != err {
			return err
		}
		err = authority.Verify("vault", vault, req.Vault)
		if nil != err {
			return err
		}
		p.log.Debugf("project: %q  address: %s  vault: %s", req.Name, projectAddress.Identity, vault.Identity)

		if caller.IsZero() {
			return fault.ErrUnauthorized
		}

		proj, err := p.registry.Create(caller, projectAddress.Bump, req.Name, req.Symbol, req.Description, req.TargetAmount, vault.Identity)
		if nil != err {
			return err
		}
		err = p.create(trx, projectAddress.Identity, proj)
		if nil != err {
			return err
		}

		reply.Project = projectAddress.Identity
		reply.Bump = projectAddress.Bump
		reply.Vault = vault.Identity
		return nil
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// SetProjectActive - admin only toggle
func (p *Processor) SetProjectActive(caller account.Identity, req *SetProjectActiveRequest) (*SetProjectActiveReply, error) {
	reply := &SetProjectActiveReply{}

	err := p.execute(OpSetProjectActive, func(trx storage.Transaction) error {

		proj, err := p.loadProject(trx, req.Project)
		if nil != err {
			return err
		}

		updated, err := p.registry.SetActive(caller, proj, req.Active)
		if nil != err {
			return err
		}
		err = store(trx, req.Project, updated)
		if nil != err {
			return err
		}

		reply.Active = updated.IsActive
		return nil
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// InvestInProject - move units into a project vault and record it
func (p *Processor) InvestInProject(caller account.Identity, req *InvestInProjectRequest) (*InvestInProjectReply, error) {
	reply := &InvestInProjectReply{}

	err := p.execute(OpInvestInProject, func(trx storage.Transaction) error {

		profile, allocation, err := p.loadProfile(trx, caller, req.UserProfile)
		if nil != err {
			return err
		}

		proj, err := p.loadProject(trx, req.Project)
		if nil != err {
			return err
		}
		if proj.Vault != req.Vault {
			return fmt.Errorf("vault: %s: %w", req.Vault, fault.ErrUnauthorized)
		}

		_, _, err = p.mintAuthority(trx, req.Mint)
		if nil != err {
			return err
		}

		err = p.registry.Accept(proj, profileTier(profile))
		if nil != err {
			return err
		}

		updatedProfile, updatedProject, err := p.recorder.Record(caller, profile, req.Project, proj, req.Amount, p.clock().Unix())
		if nil != err {
			return err
		}

		err = p.ensureRoom(trx, req.UserProfile, allocation, updatedProfile)
		if nil != err {
			return err
		}
		err = store(trx, req.UserProfile, updatedProfile)
		if nil != err {
			return err
		}
		err = store(trx, req.Project, updatedProject)
		if nil != err {
			return err
		}

		proof, err := authority.SignerProof(caller)
		if nil != err {
			return err
		}
		err = p.units.Transfer(req.Mint, caller, proj.Vault, req.Amount, proof)
		if nil != err {
			return err
		}

		p.metrics.addInvested(req.Amount)

		i := updatedProfile.Find(req.Project)
		if i >= 0 {
			reply.Investment = updatedProfile.Investments[i].Amount
		}
		reply.TotalInvested = updatedProfile.TotalInvested
		reply.TotalRaised = updatedProject.TotalRaised
		reply.Tier = updatedProfile.Tier
		return nil
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// load the caller's profile
//
// an address other than the one derived for the caller is unauthorized
// unless it holds the correctly derived profile of another owner
func (p *Processor) loadProfile(trx storage.Transaction, caller account.Identity, address account.Identity) (*record.UserProfile, int, error) {
	derived, err := p.program.UserProfile(caller)
	if nil != err {
		return nil, 0, err
	}

	profile := &record.UserProfile{}
	if derived.Identity == address {
		allocation, err := load(trx, address, profile)
		if nil != err {
			return nil, 0, err
		}
		if caller != profile.Owner {
			return nil, 0, fmt.Errorf("caller: %s: %w", caller, fault.ErrInvalidUserProfile)
		}
		return profile, allocation, nil
	}

	_, err = load(trx, address, profile)
	if nil != err {
		return nil, 0, fmt.Errorf("user profile: %s: %w", address, fault.ErrUnauthorized)
	}
	owned, err := p.program.UserProfile(profile.Owner)
	if nil != err || owned.Identity != address {
		return nil, 0, fmt.Errorf("user profile: %s: %w", address, fault.ErrUnauthorized)
	}
	return nil, 0, fmt.Errorf("caller: %s: %w", caller, fault.ErrInvalidUserProfile)
}

// load a project and check its address against its name
func (p *Processor) loadProject(trx storage.Transaction, address account.Identity) (*record.Project, error) {
	proj := &record.Project{}
	_, err := load(trx, address, proj)
	if fault.IsErrNotFound(err) || errors.Is(err, fault.ErrWrongRecordKind) {
		return nil, fmt.Errorf("project address: %s: %s: %w", address, err, fault.ErrUnauthorized)
	}
	if nil != err {
		return nil, err
	}
	derived, err := p.program.Recreate(proj.Bump, []byte(authority.ProjectSeed), []byte(proj.Name))
	if nil != err {
		return nil, err
	}
	if derived != address {
		return nil, fmt.Errorf("project address: %s: %w", address, fault.ErrUnauthorized)
	}
	return proj, nil
}
