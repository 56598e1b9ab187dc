// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ofundd/capacity"
	"github.com/bitmark-inc/ofundd/chain"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/tier"
)

const testProgramID = "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi"

func writeConfiguration(t *testing.T, body string) string {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "ofundd.conf")
	require.Nil(t, os.WriteFile(fileName, []byte(body), 0600), "write")
	return fileName
}

func TestMinimalConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    chain = "testing",
    program_id = "`+testProgramID+`",
}
`)
	dir := filepath.Dir(fileName)

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, chain.Testing, c.Chain)
	assert.Equal(t, filepath.Join(dir, "data", "testing.leveldb"), c.Database.Name)
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory)
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate)
	assert.Equal(t, "", c.PidFile)
	assert.DirExists(t, filepath.Join(dir, "data"))
	assert.DirExists(t, filepath.Join(dir, "log"))

	settings, err := c.settings()
	require.Nil(t, err, "settings")
	assert.Equal(t, testProgramID, settings.Program.ID().String())
	assert.Equal(t, uint8(defaultDecimals), settings.Decimals)
	assert.Equal(t, capacity.Capped, settings.Policy.Mode)
	assert.Equal(t, defaultHistoryCount, settings.Policy.Cap)
	assert.True(t, settings.Rules.EnforceActive)
	assert.True(t, settings.Rules.EnforceMinTier)
	assert.Equal(t, tier.None, settings.Rules.MinimumTier)
}

func TestFullConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "local"
M.pidfile = "ofundd.pid"
M.program_id = "`+testProgramID+`"
M.decimals = 6
M.initial_grant = 500
M.history = {
    policy = "unbounded",
    auto_reallocate = true,
    strict_lookup = true,
}
M.projects = {
    minimum_tier = 2,
    enforce_active = false,
    enforce_min_tier = true,
}
M.client_rpc = {
    maximum_connections = 3,
    listen = { "127.0.0.1:2130" },
    certificate = "",
    private_key = "",
}
M.metrics = {
    listen = { "127.0.0.1:2131" },
}
return M
`)
	dir := filepath.Dir(fileName)

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, filepath.Join(dir, "data", "local.leveldb"), c.Database.Name)
	assert.Equal(t, filepath.Join(dir, "ofundd.pid"), c.PidFile)
	assert.Equal(t, "", c.ClientRPC.Certificate)
	assert.Equal(t, uint64(3), c.ClientRPC.MaximumConnections)
	assert.Equal(t, []string{"127.0.0.1:2131"}, c.Metrics.Listen)

	settings, err := c.settings()
	require.Nil(t, err, "settings")
	assert.Equal(t, uint8(6), settings.Decimals)
	assert.Equal(t, uint64(500), settings.InitialGrant)
	assert.Equal(t, capacity.Unbounded, settings.Policy.Mode)
	assert.True(t, settings.AutoReallocate)
	assert.True(t, settings.StrictLookup)
	assert.False(t, settings.Rules.EnforceActive)
	assert.Equal(t, tier.Two, settings.Rules.MinimumTier)
}

func TestInvalidConfiguration(t *testing.T) {
	items := []struct {
		body  string
		fault error
	}{
		{`return { data_directory = ".", chain = "bitmark", program_id = "` + testProgramID + `" }`, fault.ErrInvalidChain},
		{`return { data_directory = ".", decimals = 15, program_id = "` + testProgramID + `" }`, fault.ErrInvalidDecimals},
		{`return { data_directory = ".", history = { policy = "sometimes" }, program_id = "` + testProgramID + `" }`, fault.ErrInvalidCapacityPolicy},
		{`return { data_directory = ".", history = { policy = "capped", count = 0 }, program_id = "` + testProgramID + `" }`, fault.ErrInvalidCapacityPolicy},
		{`return { data_directory = ".", projects = { minimum_tier = 4 }, program_id = "` + testProgramID + `" }`, fault.ErrInvalidTier},
		{`return { data_directory = ".", program_id = "not-base58!" }`, fault.ErrInvalidIdentity},
		{`return { data_directory = "." }`, fault.ErrInvalidIdentity},
	}

	for i, item := range items {
		_, err := getConfiguration(writeConfiguration(t, item.body))
		assert.ErrorIs(t, err, item.fault, "item: %d", i)
	}

	_, err := getConfiguration(writeConfiguration(t, `return { program_id = "`+testProgramID+`" }`))
	assert.NotNil(t, err, "missing data directory")
}
