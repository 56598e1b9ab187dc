// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/authority"
	"github.com/bitmark-inc/ofundd/fault"
)

type derived struct {
	Address account.Identity `json:"address"`
	Bump    uint8            `json:"bump"`
}

type deriveReply struct {
	Program       account.Identity `json:"program"`
	MintAuthority *derived         `json:"mintAuthority,omitempty"`
	MintSigner    *derived         `json:"mintSigner,omitempty"`
	UserProfile   *derived         `json:"userProfile,omitempty"`
	Project       *derived         `json:"project,omitempty"`
	Vault         *derived         `json:"vault,omitempty"`
}

func runDerive(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	program, err := programFrom(c.String("program"))
	if nil != err {
		return err
	}

	mint := c.String("mint")
	owner := c.String("owner")
	name := c.String("name")
	if "" == mint && "" == owner && "" == name {
		return fmt.Errorf("one of mint, owner or name is required: %w", fault.ErrMissingParameters)
	}

	reply := deriveReply{
		Program: program.ID(),
	}

	if "" != mint {
		id, err := account.IdentityFromBase58(mint)
		if nil != err {
			return fmt.Errorf("mint: %w", err)
		}
		a, err := program.MintAuthority(id)
		if nil != err {
			return err
		}
		reply.MintAuthority = &derived{Address: a.Identity, Bump: a.Bump}

		s, err := program.MintSigner(id)
		if nil != err {
			return err
		}
		reply.MintSigner = &derived{Address: s.Identity, Bump: s.Bump}
	}

	if "" != owner {
		id, err := account.IdentityFromBase58(owner)
		if nil != err {
			return fmt.Errorf("owner: %w", err)
		}
		a, err := program.UserProfile(id)
		if nil != err {
			return err
		}
		reply.UserProfile = &derived{Address: a.Identity, Bump: a.Bump}
	}

	if "" != name {
		a, err := program.Project(name)
		if nil != err {
			return fmt.Errorf("name: %w", err)
		}
		reply.Project = &derived{Address: a.Identity, Bump: a.Bump}

		v, err := program.Vault(a.Identity)
		if nil != err {
			return err
		}
		reply.Vault = &derived{Address: v.Identity, Bump: v.Bump}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "program: %s\n", program.ID())
	}
	return printJson(m.w, reply)
}

func programFrom(s string) (authority.Program, error) {
	if "" == s {
		return authority.Program{}, fmt.Errorf("program: %w", fault.ErrMissingParameters)
	}
	id, err := account.IdentityFromBase58(s)
	if nil != err {
		return authority.Program{}, fmt.Errorf("program: %w", err)
	}
	return authority.NewProgram(id)
}
