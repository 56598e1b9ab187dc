// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/capacity"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/record"
)

func identity(b byte) account.Identity {
	id := account.Identity{}
	for i := range id {
		id[i] = b
	}
	return id
}

func TestDiscriminators(t *testing.T) {
	seen := map[record.Discriminator]record.Kind{}
	for k := record.MintAuthorityKind; k < record.InvalidKind; k += 1 {
		d, ok := k.Discriminator()
		assert.True(t, ok, "kind: %s", k)
		_, dup := seen[d]
		assert.False(t, dup, "duplicate discriminator for: %s", k)
		seen[d] = k
	}

	_, ok := record.NullKind.Discriminator()
	assert.False(t, ok, "null kind has a discriminator")
}

func TestSpace(t *testing.T) {
	capped, err := capacity.NewCapped(capacity.DefaultCap)
	assert.Nil(t, err, "capped")

	assert.Equal(t, 278, record.Space(record.MintAuthorityKind, capped), "mint authority")
	assert.Equal(t, 343, record.Space(record.ProjectKind, capped), "project")
	assert.Equal(t, 1014, record.Space(record.UserProfileKind, capped), "capped profile")
	assert.Equal(t, 54, record.Space(record.UserProfileKind, capacity.NewUnbounded()), "unbounded profile")
	assert.Equal(t, 54, record.Space(record.UserProfileKind, capacity.NewDisabled()), "disabled profile")
	assert.Equal(t, 0, record.Space(record.NullKind, capped), "null kind")
}

func TestMintAuthorityRoundTrip(t *testing.T) {
	m := &record.MintAuthority{
		Bump:        254,
		Mint:        identity(1),
		Admin:       identity(2),
		TokenName:   strings.Repeat("n", record.MaxTokenNameLength),
		TokenSymbol: strings.Repeat("s", record.MaxTokenSymbolLength),
		TokenURI:    strings.Repeat("u", record.MaxTokenURILength),
		Initialized: true,
	}

	packed, err := record.Pack(m)
	assert.Nil(t, err, "pack")
	assert.Equal(t, record.MintAuthorityKind, packed.Kind(), "kind")
	assert.Equal(t, record.Space(record.MintAuthorityKind, capacity.NewUnbounded()), len(packed), "full budget fills the plan")

	r, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, m, r, "round trip")
}

func TestProjectFitsPlan(t *testing.T) {
	p := &record.Project{
		Admin:           identity(3),
		Bump:            200,
		Name:            "Alpha",
		Symbol:          "ALP",
		Description:     "first project",
		TargetAmount:    1_000_000,
		TotalRaised:     500,
		MinTierRequired: 2,
		Vault:           identity(4),
		IsActive:        true,
	}

	packed, err := record.Pack(p)
	assert.Nil(t, err, "pack")
	assert.LessOrEqual(t, len(packed), record.Space(record.ProjectKind, capacity.NewUnbounded()), "fits plan")

	out := &record.Project{}
	err = packed.UnpackAs(out)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, p, out, "round trip")

	err = packed.UnpackAs(&record.UserProfile{})
	assert.Equal(t, fault.ErrWrongRecordKind, err, "wrong kind")
}

func TestUserProfileFitsPlan(t *testing.T) {
	u := &record.UserProfile{
		Owner:         identity(5),
		Bump:          255,
		Tier:          3,
		TotalInvested: 123,
	}
	for i := 0; i < capacity.DefaultCap; i += 1 {
		u.Investments = append(u.Investments, record.Investment{
			Project:   identity(byte(i)),
			Amount:    uint64(i + 1),
			Timestamp: int64(1600000000 + i),
		})
	}

	packed, err := record.Pack(u)
	assert.Nil(t, err, "pack")
	assert.Equal(t, record.UserProfileSpace(capacity.DefaultCap), len(packed), "full history fills the plan")

	r, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	out, ok := r.(*record.UserProfile)
	assert.True(t, ok, "type")
	assert.Equal(t, u.Owner, out.Owner, "owner")
	assert.Equal(t, u.TotalInvested, out.TotalInvested, "total")
	assert.Equal(t, u.Investments, out.Investments, "investments")

	empty := &record.UserProfile{Owner: identity(6)}
	packed, err = record.Pack(empty)
	assert.Nil(t, err, "pack empty")
	assert.Equal(t, record.UserProfileSpace(0), len(packed), "empty history")
}

func TestStringBudgets(t *testing.T) {
	_, err := record.Pack(&record.Project{
		Name: strings.Repeat("x", record.MaxProjectNameLength+1),
	})
	assert.True(t, fault.IsErrInvalid(err), "project name: %s", err)

	// multibyte characters count by byte
	_, err = record.Pack(&record.MintAuthority{
		TokenSymbol: strings.Repeat("é", 7),
	})
	assert.True(t, fault.IsErrInvalid(err), "token symbol: %s", err)

	_, err = record.Pack(&record.Project{
		Description: strings.Repeat("d", record.MaxProjectDescriptionLength),
	})
	assert.Nil(t, err, "description at limit")
}

func TestInvalidTier(t *testing.T) {
	_, err := record.Pack(&record.UserProfile{Tier: 4})
	assert.True(t, fault.IsErrInvalid(err), "tier: %s", err)
}

func TestUnpackGarbage(t *testing.T) {
	_, err := record.Packed{1, 2, 3}.Unpack()
	assert.Equal(t, fault.ErrInvalidRecord, err, "short")

	_, err = record.Packed(make([]byte, 40)).Unpack()
	assert.Equal(t, fault.ErrInvalidRecord, err, "zero discriminator")
}

func TestCloneAndFind(t *testing.T) {
	u := &record.UserProfile{
		Investments: []record.Investment{
			{Project: identity(7), Amount: 1},
			{Project: identity(8), Amount: 2},
		},
	}
	c := u.Clone()
	c.Investments[0].Amount = 99

	assert.Equal(t, uint64(1), u.Investments[0].Amount, "original unchanged")
	assert.Equal(t, 1, u.Find(identity(8)), "found")
	assert.Equal(t, -1, u.Find(identity(9)), "absent")
}
