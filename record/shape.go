// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/ofundd/capacity"
)

// InvestmentSize - encoded size of one embedded investment
const InvestmentSize = capacity.IdentitySize + // project
	capacity.Uint64Size + // amount
	capacity.Int64Size // timestamp

// InvestmentCollection - element description for an investment history
func InvestmentCollection(count int) capacity.Collection {
	return capacity.Collection{
		MaximumCount: count,
		ElementSize:  InvestmentSize,
	}
}

// MintAuthorityShape - layout of a mint authority
func MintAuthorityShape() capacity.Shape {
	return capacity.Shape{
		Fixed: capacity.Uint8Size + // bump
			capacity.IdentitySize + // mint
			capacity.IdentitySize + // admin
			capacity.BoolSize, // initialized
		Strings: []int{
			MaxTokenNameLength,
			MaxTokenSymbolLength,
			MaxTokenURILength,
		},
	}
}

// UserProfileShape - layout of a user profile holding count investments
func UserProfileShape(count int) capacity.Shape {
	return capacity.Shape{
		Fixed: capacity.IdentitySize + // owner
			capacity.Uint8Size + // bump
			capacity.Uint8Size + // tier
			capacity.Uint64Size, // total invested
		Collections: []capacity.Collection{
			InvestmentCollection(count),
		},
	}
}

// ProjectShape - layout of a project
func ProjectShape() capacity.Shape {
	return capacity.Shape{
		Fixed: capacity.IdentitySize + // admin
			capacity.Uint8Size + // bump
			capacity.Uint64Size + // target amount
			capacity.Uint64Size + // total raised
			capacity.Uint8Size + // min tier required
			capacity.IdentitySize + // vault
			capacity.BoolSize, // is active
		Strings: []int{
			MaxProjectNameLength,
			MaxProjectSymbolLength,
			MaxProjectDescriptionLength,
		},
	}
}

// Space - allocation for a new record of a kind under a history policy
func Space(kind Kind, policy capacity.Policy) int {
	switch kind {
	case MintAuthorityKind:
		return capacity.Plan(MintAuthorityShape())
	case UserProfileKind:
		return capacity.Plan(UserProfileShape(policy.InitialCount()))
	case ProjectKind:
		return capacity.Plan(ProjectShape())
	default:
		return 0
	}
}

// UserProfileSpace - allocation needed for a profile holding count investments
func UserProfileSpace(count int) int {
	return capacity.Plan(UserProfileShape(count))
}
