// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/record"
	"github.com/bitmark-inc/ofundd/storage"
)

type dumpEntry struct {
	Address    account.Identity `json:"address"`
	Kind       string           `json:"kind"`
	Size       int              `json:"size"`
	Allocation int              `json:"allocation"`
	Record     record.Record    `json:"record,omitempty"`
	Error      string           `json:"error,omitempty"`
}

var errEnough = errors.New("enough")

func runDump(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	database := c.String("database")
	if "" == database {
		return fmt.Errorf("database: %w", fault.ErrMissingParameters)
	}
	count := c.Int("count")

	entries, err := dump(database, count)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "records: %d\n", len(entries))
	}
	return printJson(m.w, entries)
}

// read every account record from a database opened read only
func dump(database string, count int) ([]dumpEntry, error) {
	if _, err := os.Stat(database); nil != err {
		return nil, err
	}

	logDirectory, err := os.MkdirTemp("", "ofund-info")
	if nil != err {
		return nil, err
	}
	defer os.RemoveAll(logDirectory)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "ofund-info.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		return nil, err
	}
	defer logger.Finalise()

	if err := storage.Initialise(database, storage.ReadOnly); nil != err {
		return nil, err
	}
	defer storage.Finalise()

	entries := []dumpEntry{}
	err = storage.Pool.Accounts.NewFetchCursor().Map(func(key []byte, value []byte) error {
		address, err := account.IdentityFromBytes(key)
		if nil != err {
			return fmt.Errorf("key: %x: %w", key, err)
		}
		_, allocation := storage.CommittedAccount(address)

		entry := dumpEntry{
			Address:    address,
			Kind:       record.Packed(value).Kind().String(),
			Size:       len(value),
			Allocation: allocation,
		}
		r, err := record.Packed(value).Unpack()
		if nil != err {
			entry.Error = err.Error()
		} else {
			entry.Record = r
		}
		entries = append(entries, entry)

		if count > 0 && len(entries) >= count {
			return errEnough
		}
		return nil
	})
	if nil != err && errEnough != err {
		return nil, err
	}
	return entries, nil
}
