// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/authority"
	"github.com/bitmark-inc/ofundd/capacity"
	"github.com/bitmark-inc/ofundd/storage"
	"github.com/bitmark-inc/ofundd/tier"
	"github.com/bitmark-inc/ofundd/tokenledger"
	"github.com/bitmark-inc/ofundd/tokenledger/mocks"
)

const testDecimals = 9

var (
	unit = tier.Unit(testDecimals)

	programID = identity(0x7f)
	mint      = identity(0x10)
	admin     = identity(0x20)
	user      = identity(0x30)
	other     = identity(0x40)
)

func identity(b byte) account.Identity {
	id := account.Identity{}
	for i := range id {
		id[i] = b
	}
	id[0] = 0x01
	return id
}

func setupStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "testing")
	require.Nil(t, os.Mkdir(dir, 0700), "test directory")

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	err := storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	require.Nil(t, err, "storage initialise")
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
}

func testSettings(t *testing.T) Settings {
	program, err := authority.NewProgram(programID)
	require.Nil(t, err, "program")
	policy, err := capacity.NewCapped(capacity.DefaultCap)
	require.Nil(t, err, "policy")
	return Settings{
		Program:  program,
		Decimals: testDecimals,
		Policy:   policy,
		Clock: func() time.Time {
			return time.Unix(1600000000, 0)
		},
	}
}

// processor over the leveldb unit ledger
func newLocal(t *testing.T, settings Settings) *Processor {
	units, err := tokenledger.NewLocal(logger.New("tokenledger"), storage.Current)
	require.Nil(t, err, "units")
	p, err := New(logger.New("processor"), settings, units, nil)
	require.Nil(t, err, "processor")
	return p
}

// processor over a mock unit ledger
func newMocked(t *testing.T, settings Settings) (*Processor, *mocks.MockService, *gomock.Controller) {
	ctl := gomock.NewController(t)
	units := mocks.NewMockService(ctl)
	p, err := New(logger.New("processor"), settings, units, nil)
	require.Nil(t, err, "processor")
	return p, units, ctl
}

type addresses struct {
	mintAuthority authority.Address
	mintSigner    authority.Address
	profile       authority.Address
	other         authority.Address
	project       authority.Address
	vault         authority.Address
}

func derive(t *testing.T, p *Processor, name string) addresses {
	a := addresses{}
	var err error
	a.mintAuthority, err = p.program.MintAuthority(mint)
	require.Nil(t, err, "mint authority")
	a.mintSigner, err = p.program.MintSigner(mint)
	require.Nil(t, err, "mint signer")
	a.profile, err = p.program.UserProfile(user)
	require.Nil(t, err, "profile")
	a.other, err = p.program.UserProfile(other)
	require.Nil(t, err, "other profile")
	a.project, err = p.program.Project(name)
	require.Nil(t, err, "project")
	a.vault, err = p.program.Vault(a.project.Identity)
	require.Nil(t, err, "vault")
	return a
}

func initMint(t *testing.T, p *Processor, a addresses) {
	_, err := p.InitializeMintAuthority(admin, &InitializeMintAuthorityRequest{
		Mint:          mint,
		MintAuthority: a.mintAuthority.Identity,
		MintSigner:    a.mintSigner.Identity,
		TokenName:     "OFUND",
		TokenSymbol:   "OFUND",
		TokenURI:      "https://example.com/ofund.json",
	})
	require.Nil(t, err, "initialize mint authority")
}

func register(t *testing.T, p *Processor, a addresses) *RegisterUserReply {
	reply, err := p.RegisterUser(user, &RegisterUserRequest{
		Mint:          mint,
		MintAuthority: a.mintAuthority.Identity,
		UserProfile:   a.profile.Identity,
	})
	require.Nil(t, err, "register")
	return reply
}

func createProject(t *testing.T, p *Processor, a addresses, name string) {
	_, err := p.InitializeProject(admin, &InitializeProjectRequest{
		Project:      a.project.Identity,
		Vault:        a.vault.Identity,
		Name:         name,
		Symbol:       "ALP",
		Description:  "a project",
		TargetAmount: 1_000_000 * unit,
	})
	require.Nil(t, err, "initialize project")
}

func invest(p *Processor, a addresses, amount uint64) (*InvestInProjectReply, error) {
	return p.InvestInProject(user, &InvestInProjectRequest{
		Mint:        mint,
		UserProfile: a.profile.Identity,
		Project:     a.project.Identity,
		Vault:       a.vault.Identity,
		Amount:      amount,
	})
}

func authorityAddress(id account.Identity, bump uint8) authority.Address {
	return authority.Address{Identity: id, Bump: bump}
}
