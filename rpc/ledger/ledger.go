// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/mode"
	"github.com/bitmark-inc/ofundd/processor"
	"github.com/bitmark-inc/ofundd/rpc/ratelimit"
)

// Processor - the operations served over RPC
//
//go:generate mockgen -source=ledger.go -destination=mocks/processor.go -package=mocks
type Processor interface {
	InitializeMintAuthority(account.Identity, *processor.InitializeMintAuthorityRequest) (*processor.InitializeMintAuthorityReply, error)
	MintTo(account.Identity, *processor.MintToRequest) (*processor.MintToReply, error)
	RegisterUser(account.Identity, *processor.RegisterUserRequest) (*processor.RegisterUserReply, error)
	UpdateUserTier(account.Identity, *processor.UpdateUserTierRequest) (*processor.UpdateUserTierReply, error)
	GetUserInvestment(*processor.GetUserInvestmentRequest) (*processor.GetUserInvestmentReply, error)
	ReallocateUserProfile(account.Identity, *processor.ReallocateUserProfileRequest) (*processor.ReallocateUserProfileReply, error)
	InitializeProject(account.Identity, *processor.InitializeProjectRequest) (*processor.InitializeProjectReply, error)
	SetProjectActive(account.Identity, *processor.SetProjectActiveRequest) (*processor.SetProjectActiveReply, error)
	InvestInProject(account.Identity, *processor.InvestInProjectRequest) (*processor.InvestInProjectReply, error)
	GetRecord(*processor.GetRecordRequest) (*processor.GetRecordReply, error)
}

// Ledger - type for the RPC
type Ledger struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Processor Processor
	IsMode    func(mode.Mode) bool
}

// New - create the RPC handler, a nil limiter selects the default rate
func New(log *logger.L, proc Processor, isMode func(mode.Mode) bool, limiter *rate.Limiter) *Ledger {
	if nil == limiter {
		limiter = ratelimit.New()
	}
	return &Ledger{
		Log:       log,
		Limiter:   limiter,
		Processor: proc,
		IsMode:    isMode,
	}
}

// common checks for a signed request, returns the authenticated caller
func (l *Ledger) admit(operation string, signed Signed, body interface{}) (account.Identity, error) {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return account.Identity{}, err
	}
	if !l.IsMode(mode.Serving) {
		return account.Identity{}, fault.ErrNotAvailable
	}
	caller, err := signed.verify(operation, body)
	if nil != err {
		l.Log.Warnf("%s: caller: %s  signature: %s", operation, signed.Caller, err)
		return account.Identity{}, err
	}
	l.Log.Infof("%s: caller: %s", operation, caller)
	return caller, nil
}

// errors cross the wire as text so prefix the symbolic code
func wire(err error) error {
	if nil == err {
		return nil
	}
	return fmt.Errorf("%s: %w", fault.Code(err), err)
}

// InitializeMintAuthority - link a mint to the program
func (l *Ledger) InitializeMintAuthority(arguments *InitializeMintAuthorityArguments, reply *processor.InitializeMintAuthorityReply) error {
	caller, err := l.admit(processor.OpInitializeMintAuthority, arguments.Signed, arguments.Request)
	if nil != err {
		return wire(err)
	}
	r, err := l.Processor.InitializeMintAuthority(caller, &arguments.Request)
	if nil != err {
		return wire(err)
	}
	*reply = *r
	return nil
}

// MintTo - admin issues units
func (l *Ledger) MintTo(arguments *MintToArguments, reply *processor.MintToReply) error {
	caller, err := l.admit(processor.OpMintTo, arguments.Signed, arguments.Request)
	if nil != err {
		return wire(err)
	}
	r, err := l.Processor.MintTo(caller, &arguments.Request)
	if nil != err {
		return wire(err)
	}
	*reply = *r
	return nil
}

// RegisterUser - create the caller's profile
func (l *Ledger) RegisterUser(arguments *RegisterUserArguments, reply *processor.RegisterUserReply) error {
	caller, err := l.admit(processor.OpRegisterUser, arguments.Signed, arguments.Request)
	if nil != err {
		return wire(err)
	}
	r, err := l.Processor.RegisterUser(caller, &arguments.Request)
	if nil != err {
		return wire(err)
	}
	*reply = *r
	return nil
}

// UpdateUserTier - refresh the caller's tier
func (l *Ledger) UpdateUserTier(arguments *UpdateUserTierArguments, reply *processor.UpdateUserTierReply) error {
	caller, err := l.admit(processor.OpUpdateUserTier, arguments.Signed, arguments.Request)
	if nil != err {
		return wire(err)
	}
	r, err := l.Processor.UpdateUserTier(caller, &arguments.Request)
	if nil != err {
		return wire(err)
	}
	*reply = *r
	return nil
}

// ReallocateUserProfile - grow the caller's profile
func (l *Ledger) ReallocateUserProfile(arguments *ReallocateUserProfileArguments, reply *processor.ReallocateUserProfileReply) error {
	caller, err := l.admit(processor.OpReallocateUserProfile, arguments.Signed, arguments.Request)
	if nil != err {
		return wire(err)
	}
	r, err := l.Processor.ReallocateUserProfile(caller, &arguments.Request)
	if nil != err {
		return wire(err)
	}
	*reply = *r
	return nil
}

// InitializeProject - create a project administered by the caller
func (l *Ledger) InitializeProject(arguments *InitializeProjectArguments, reply *processor.InitializeProjectReply) error {
	caller, err := l.admit(processor.OpInitializeProject, arguments.Signed, arguments.Request)
	if nil != err {
		return wire(err)
	}
	r, err := l.Processor.InitializeProject(caller, &arguments.Request)
	if nil != err {
		return wire(err)
	}
	*reply = *r
	return nil
}

// SetProjectActive - open or close a project
func (l *Ledger) SetProjectActive(arguments *SetProjectActiveArguments, reply *processor.SetProjectActiveReply) error {
	caller, err := l.admit(processor.OpSetProjectActive, arguments.Signed, arguments.Request)
	if nil != err {
		return wire(err)
	}
	r, err := l.Processor.SetProjectActive(caller, &arguments.Request)
	if nil != err {
		return wire(err)
	}
	*reply = *r
	return nil
}

// InvestInProject - move the caller's units into a project
func (l *Ledger) InvestInProject(arguments *InvestInProjectArguments, reply *processor.InvestInProjectReply) error {
	caller, err := l.admit(processor.OpInvestInProject, arguments.Signed, arguments.Request)
	if nil != err {
		return wire(err)
	}
	r, err := l.Processor.InvestInProject(caller, &arguments.Request)
	if nil != err {
		return wire(err)
	}
	*reply = *r
	return nil
}

// GetUserInvestment - read only, no signature
func (l *Ledger) GetUserInvestment(arguments *processor.GetUserInvestmentRequest, reply *processor.GetUserInvestmentReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return wire(err)
	}
	r, err := l.Processor.GetUserInvestment(arguments)
	if nil != err {
		return wire(err)
	}
	*reply = *r
	return nil
}

// GetRecord - read only, no signature
func (l *Ledger) GetRecord(arguments *processor.GetRecordRequest, reply *RecordReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return wire(err)
	}
	r, err := l.Processor.GetRecord(arguments)
	if nil != err {
		return wire(err)
	}
	body, err := json.Marshal(r.Record)
	if nil != err {
		return wire(err)
	}
	reply.Kind = r.Kind
	reply.Allocation = r.Allocation
	reply.Size = r.Size
	reply.Record = body
	return nil
}
