// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ofundd/capacity"
	"github.com/bitmark-inc/ofundd/record"
)

type planReply struct {
	Policy        string `json:"policy"`
	MintAuthority int    `json:"mintAuthority"`
	Project       int    `json:"project"`
	UserProfile   int    `json:"userProfile"`
	Investment    int    `json:"investment"`
	Grown         *int   `json:"grown,omitempty"`
}

func runPlan(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	policy, err := capacity.ParsePolicy(c.String("policy"), count)
	if nil != err {
		return err
	}

	reply := planReply{
		Policy:        policy.String(),
		MintAuthority: record.Space(record.MintAuthorityKind, policy),
		Project:       record.Space(record.ProjectKind, policy),
		UserProfile:   record.Space(record.UserProfileKind, policy),
		Investment:    record.InvestmentSize,
	}

	// allocation after growing an unbounded profile to count entries
	if capacity.Unbounded == policy.Mode && count > 0 {
		grown := record.UserProfileSpace(count)
		reply.Grown = &grown
	}

	return printJson(m.w, reply)
}
