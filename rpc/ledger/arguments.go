// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"

	"github.com/bitmark-inc/ofundd/processor"
)

// InitializeMintAuthorityArguments - arguments for RPC
type InitializeMintAuthorityArguments struct {
	Signed
	Request processor.InitializeMintAuthorityRequest `json:"request"`
}

// MintToArguments - arguments for RPC
type MintToArguments struct {
	Signed
	Request processor.MintToRequest `json:"request"`
}

// RegisterUserArguments - arguments for RPC
type RegisterUserArguments struct {
	Signed
	Request processor.RegisterUserRequest `json:"request"`
}

// UpdateUserTierArguments - arguments for RPC
type UpdateUserTierArguments struct {
	Signed
	Request processor.UpdateUserTierRequest `json:"request"`
}

// ReallocateUserProfileArguments - arguments for RPC
type ReallocateUserProfileArguments struct {
	Signed
	Request processor.ReallocateUserProfileRequest `json:"request"`
}

// InitializeProjectArguments - arguments for RPC
type InitializeProjectArguments struct {
	Signed
	Request processor.InitializeProjectRequest `json:"request"`
}

// SetProjectActiveArguments - arguments for RPC
type SetProjectActiveArguments struct {
	Signed
	Request processor.SetProjectActiveRequest `json:"request"`
}

// InvestInProjectArguments - arguments for RPC
type InvestInProjectArguments struct {
	Signed
	Request processor.InvestInProjectRequest `json:"request"`
}

// RecordReply - result from RPC
//
// the record body is already JSON so clients can decode it by kind
type RecordReply struct {
	Kind       string          `json:"kind"`
	Allocation int             `json:"allocation"`
	Size       int             `json:"size"`
	Record     json.RawMessage `json:"record"`
}
