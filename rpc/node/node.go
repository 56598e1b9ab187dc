// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/mode"
	"github.com/bitmark-inc/ofundd/record"
	"github.com/bitmark-inc/ofundd/rpc/ratelimit"
	"github.com/bitmark-inc/ofundd/storage"
)

// limit for count
const maximumAccountList = 100

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Program account.Identity
	Pool    *storage.PoolHandle
	counter *atomic.Uint64
}

// New - create the node information handler
func New(log *logger.L, pool *storage.PoolHandle, program account.Identity, start time.Time, version string, counter *atomic.Uint64) *Node {
	return &Node{
		Log:     log,
		Limiter: ratelimit.New(),
		Start:   start,
		Version: version,
		Program: program,
		Pool:    pool,
		counter: counter,
	}
}

// ---

// AccountsArguments - arguments for RPC
//
// Start is exclusive: listing resumes after that address
type AccountsArguments struct {
	Start account.Identity `json:"start"`
	Count int              `json:"count"`
}

// AccountEntry - one stored record
type AccountEntry struct {
	Address account.Identity `json:"address"`
	Kind    string           `json:"kind"`
	Size    int              `json:"size"`
}

// AccountsReply - result from RPC
type AccountsReply struct {
	Accounts  []AccountEntry   `json:"accounts"`
	NextStart account.Identity `json:"nextStart"`
}

// Accounts - list stored records in address order
func (node *Node) Accounts(arguments *AccountsArguments, reply *AccountsReply) error {
	if err := ratelimit.LimitN(node.Limiter, arguments.Count, maximumAccountList); nil != err {
		return err
	}
	if nil == node.Pool {
		return fault.ErrNotInitialised
	}

	cursor := node.Pool.NewFetchCursor()
	if !arguments.Start.IsZero() {
		cursor.Seek(append(arguments.Start.Bytes(), 0x00))
	}

	elements, err := cursor.Fetch(arguments.Count)
	if nil != err {
		return err
	}

	reply.Accounts = make([]AccountEntry, 0, len(elements))
	for _, e := range elements {
		address, err := account.IdentityFromBytes(e.Key)
		if nil != err {
			node.Log.Errorf("skip malformed key: %x", e.Key)
			continue
		}
		reply.Accounts = append(reply.Accounts, AccountEntry{
			Address: address,
			Kind:    record.Packed(e.Value).Kind().String(),
			Size:    len(e.Value),
		})
	}

	// a short page is the last page
	if len(elements) == arguments.Count && len(reply.Accounts) > 0 {
		reply.NextStart = reply.Accounts[len(reply.Accounts)-1].Address
	}
	return nil
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string           `json:"chain"`
	Mode    string           `json:"mode"`
	Testing bool             `json:"testing"`
	Program account.Identity `json:"program"`
	RPCs    uint64           `json:"rpcs"`
	Version string           `json:"version"`
	Uptime  string           `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Testing = mode.IsTesting()
	reply.Program = node.Program
	if nil != node.counter {
		reply.RPCs = node.counter.Load()
	}
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
