// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "ofund-info"
	app.Usage = "inspect ofundd addresses, allocations and records"
	app.Version = version
	app.HideVersion = true
	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}

	programFlag := cli.StringFlag{
		Name:   "program, p",
		Value:  "",
		Usage:  "*program identity `BASE58`",
		EnvVar: "OFUND_PROGRAM_ID",
	}
	connectFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " ofundd RPC `HOST:PORT`",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " use TLS, the server certificate is not verified",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "derive",
			Usage:     "derive record addresses and their bumps",
			ArgsUsage: "\n   (* = required, + = at least one)",
			Flags: []cli.Flag{
				programFlag,
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "+mint identity `BASE58`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "+user identity `BASE58`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "+project `NAME`",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "plan",
			Usage:     "show the allocation planned for each record kind",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "policy, P",
					Value: "capped",
					Usage: " history `POLICY` [unbounded|capped|disabled]",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " history `COUNT` for capped, entries for unbounded growth",
				},
			},
			Action: runPlan,
		},
		{
			Name:      "dump",
			Usage:     "list the records in a stopped daemon's database",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "database, d",
					Value: "",
					Usage: "*leveldb `DIRECTORY`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " stop after `COUNT` records, 0 for all",
				},
			},
			Action: runDump,
		},
		{
			Name:      "node",
			Usage:     "display information from a running daemon",
			ArgsUsage: "\n   (* = required)",
			Flags:     connectFlags,
			Action:    runNode,
		},
		{
			Name:      "record",
			Usage:     "fetch and decode the record at an address",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*record address `BASE58`",
				},
			}, connectFlags...),
			Action: runRecord,
		},
		{
			Name:      "version",
			Usage:     "display ofund-info version",
			ArgsUsage: "\n",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}
