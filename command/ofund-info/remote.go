// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/processor"
	"github.com/bitmark-inc/ofundd/rpc/ledger"
	"github.com/bitmark-inc/ofundd/rpc/node"
)

const dialTimeout = 10 * time.Second

// connect to a daemon, servers use self signed certificates
func dial(c *cli.Context) (*rpc.Client, error) {
	connect := c.String("connect")
	if "" == connect {
		return nil, fmt.Errorf("connect: %w", fault.ErrMissingParameters)
	}

	var conn net.Conn
	var err error
	if c.Bool("tls") {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.DialWithDialer(&net.Dialer{Timeout: dialTimeout}, "tcp", connect, tlsConfig)
	} else {
		conn, err = net.DialTimeout("tcp", connect, dialTimeout)
	}
	if nil != err {
		return nil, err
	}
	return jsonrpc.NewClient(conn), nil
}

func runNode(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply node.InfoReply
	if err := client.Call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runRecord(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	address, err := account.IdentityFromBase58(c.String("address"))
	if nil != err {
		return fmt.Errorf("address: %w", err)
	}

	client, err := dial(c)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply ledger.RecordReply
	err = client.Call("Ledger.GetRecord", &processor.GetRecordRequest{Address: address}, &reply)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
