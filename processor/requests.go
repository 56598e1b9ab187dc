// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/record"
)

// operation names for logging and metrics
const (
	OpInitializeMintAuthority = "initialize-mint-authority"
	OpMintTo                  = "mint-to"
	OpRegisterUser            = "register-user"
	OpUpdateUserTier          = "update-user-tier"
	OpGetUserInvestment       = "get-user-investment"
	OpInitializeProject       = "initialize-project"
	OpInvestInProject         = "invest-in-project"
	OpSetProjectActive        = "set-project-active"
	OpReallocateUserProfile   = "reallocate-user-profile"
	OpGetRecord               = "get-record"
)

// InitializeMintAuthorityRequest - link a unit type to its authority
type InitializeMintAuthorityRequest struct {
	Mint          account.Identity `json:"mint"`
	MintAuthority account.Identity `json:"mintAuthority"`
	MintSigner    account.Identity `json:"mintSigner"`
	TokenName     string           `json:"tokenName"`
	TokenSymbol   string           `json:"tokenSymbol"`
	TokenURI      string           `json:"tokenUri"`
	ExistingMint  bool             `json:"existingMint"`
}

// InitializeMintAuthorityReply - the derived addresses
type InitializeMintAuthorityReply struct {
	MintAuthority     account.Identity `json:"mintAuthority"`
	MintAuthorityBump uint8            `json:"mintAuthorityBump"`
	MintSigner        account.Identity `json:"mintSigner"`
	MintSignerBump    uint8            `json:"mintSignerBump"`
}

// MintToRequest - admin mint to a recipient
type MintToRequest struct {
	Mint          account.Identity `json:"mint"`
	MintAuthority account.Identity `json:"mintAuthority"`
	Recipient     account.Identity `json:"recipient"`
	Amount        uint64           `json:"amount,string"`
}

// MintToReply - recipient balance after the mint
type MintToReply struct {
	Balance uint64 `json:"balance,string"`
}

// RegisterUserRequest - create the caller's profile and grant units
type RegisterUserRequest struct {
	Mint          account.Identity `json:"mint"`
	MintAuthority account.Identity `json:"mintAuthority"`
	UserProfile   account.Identity `json:"userProfile"`
}

// RegisterUserReply - the new profile
type RegisterUserReply struct {
	UserProfile account.Identity `json:"userProfile"`
	Bump        uint8            `json:"bump"`
	Tier        uint8            `json:"tier"`
	Grant       uint64           `json:"grant,string"`
}

// UpdateUserTierRequest - refresh the caller's tier from their balance
type UpdateUserTierRequest struct {
	Mint        account.Identity `json:"mint"`
	UserProfile account.Identity `json:"userProfile"`
}

// UpdateUserTierReply - balance used and resulting tier
type UpdateUserTierReply struct {
	Balance uint64 `json:"balance,string"`
	Tier    uint8  `json:"tier"`
}

// GetUserInvestmentRequest - amount an owner has in a project
type GetUserInvestmentRequest struct {
	Owner       account.Identity `json:"owner"`
	UserProfile account.Identity `json:"userProfile"`
	Project     account.Identity `json:"project"`
}

// GetUserInvestmentReply - amount, zero if none
type GetUserInvestmentReply struct {
	Amount uint64 `json:"amount,string"`
}

// InitializeProjectRequest - create a project administered by the caller
type InitializeProjectRequest struct {
	Project      account.Identity `json:"project"`
	Vault        account.Identity `json:"vault"`
	Name         string           `json:"name"`
	Symbol       string           `json:"symbol"`
	Description  string           `json:"description"`
	TargetAmount uint64           `json:"targetAmount,string"`
}

// InitializeProjectReply - derived addresses
type InitializeProjectReply struct {
	Project account.Identity `json:"project"`
	Bump    uint8            `json:"bump"`
	Vault   account.Identity `json:"vault"`
}

// InvestInProjectRequest - move units from the caller to a project vault
type InvestInProjectRequest struct {
	Mint        account.Identity `json:"mint"`
	UserProfile account.Identity `json:"userProfile"`
	Project     account.Identity `json:"project"`
	Vault       account.Identity `json:"vault"`
	Amount      uint64           `json:"amount,string"`
}

// InvestInProjectReply - totals after the investment
type InvestInProjectReply struct {
	Investment    uint64 `json:"investment,string"`
	TotalInvested uint64 `json:"totalInvested,string"`
	TotalRaised   uint64 `json:"totalRaised,string"`
	Tier          uint8  `json:"tier"`
}

// SetProjectActiveRequest - open or close a project
type SetProjectActiveRequest struct {
	Project account.Identity `json:"project"`
	Active  bool             `json:"active"`
}

// SetProjectActiveReply - the new state
type SetProjectActiveReply struct {
	Active bool `json:"active"`
}

// ReallocateUserProfileRequest - room for more investments
type ReallocateUserProfileRequest struct {
	UserProfile account.Identity `json:"userProfile"`
	Additional  int              `json:"additional"`
}

// ReallocateUserProfileReply - new allocation in bytes
type ReallocateUserProfileReply struct {
	Allocation int `json:"allocation"`
}

// GetRecordRequest - decode whatever is stored at an address
type GetRecordRequest struct {
	Address account.Identity `json:"address"`
}

// GetRecordReply - the decoded record
type GetRecordReply struct {
	Kind       string        `json:"kind"`
	Allocation int           `json:"allocation"`
	Size       int           `json:"size"`
	Record     record.Record `json:"record"`
}
