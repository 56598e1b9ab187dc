// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - per user investment history
//
// Investments are keyed by project: investing again in the same
// project adds to the existing entry and refreshes its timestamp,
// investing in a new project appends an entry if the history has
// room.  All arithmetic is checked and every change is made to
// copies, so a failure leaves the inputs untouched.
package ledger

import (
	"fmt"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/capacity"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/record"
	"github.com/bitmark-inc/ofundd/tier"
)

// Recorder - applies investments under a history policy
type Recorder struct {
	policy     capacity.Policy
	classifier tier.Classifier
	strict     bool
}

// New - create a recorder
//
// strict makes a lookup of an absent investment an error rather than zero
func New(policy capacity.Policy, classifier tier.Classifier, strict bool) *Recorder {
	return &Recorder{
		policy:     policy,
		classifier: classifier,
		strict:     strict,
	}
}

// Policy - the history policy in force
func (r *Recorder) Policy() capacity.Policy {
	return r.policy
}

// Record - add an investment to a profile and a project
//
// returns updated copies, the inputs are never modified
func (r *Recorder) Record(caller account.Identity, profile *record.UserProfile, projectAddress account.Identity, project *record.Project, amount uint64, now int64) (*record.UserProfile, *record.Project, error) {
	if nil == profile || nil == project {
		return nil, nil, fault.ErrInvalidStructPointer
	}
	if caller != profile.Owner {
		return nil, nil, fmt.Errorf("caller: %s: %w", caller, fault.ErrInvalidUserProfile)
	}
	if 0 == amount {
		return nil, nil, fault.ErrInvalidAmount
	}

	total, err := add(profile.TotalInvested, amount)
	if nil != err {
		return nil, nil, fmt.Errorf("total invested: %w", err)
	}
	raised, err := add(project.TotalRaised, amount)
	if nil != err {
		return nil, nil, fmt.Errorf("total raised: %w", err)
	}

	p := profile.Clone()
	j := *project

	if r.policy.KeepsHistory() {
		i := p.Find(projectAddress)
		if i >= 0 {
			entry := &p.Investments[i]
			entry.Amount, err = add(entry.Amount, amount)
			if nil != err {
				return nil, nil, fmt.Errorf("investment: %w", err)
			}
			entry.Timestamp = now
		} else {
			if !r.policy.Allows(len(p.Investments)) {
				return nil, nil, fmt.Errorf("policy: %s: %w", r.policy, fault.ErrMaxInvestmentsReached)
			}
			p.Investments = append(p.Investments, record.Investment{
				Project:   projectAddress,
				Amount:    amount,
				Timestamp: now,
			})
		}
	}

	p.TotalInvested = total
	p.Tier = uint8(r.classifier.Classify(total))
	j.TotalRaised = raised

	return p, &j, nil
}

// Lookup - amount a profile has in a project
func (r *Recorder) Lookup(profile *record.UserProfile, projectAddress account.Identity) (uint64, error) {
	if nil == profile {
		return 0, fault.ErrInvalidStructPointer
	}
	i := profile.Find(projectAddress)
	if i >= 0 {
		return profile.Investments[i].Amount, nil
	}
	if r.strict {
		return 0, fmt.Errorf("project: %s: %w", projectAddress, fault.ErrInvestmentNotFound)
	}
	return 0, nil
}

// Entries - number of history entries needed after investing in a project
func (r *Recorder) Entries(profile *record.UserProfile, projectAddress account.Identity) int {
	if !r.policy.KeepsHistory() {
		return 0
	}
	if profile.Find(projectAddress) >= 0 {
		return len(profile.Investments)
	}
	return len(profile.Investments) + 1
}

func add(a uint64, b uint64) (uint64, error) {
	c := a + b
	if c < a {
		return a, fault.ErrNumericalOverflow
	}
	return c, nil
}
