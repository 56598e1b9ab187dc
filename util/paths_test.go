// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ofundd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/ofundd/data", util.EnsureAbsolute("/var/ofundd", "data"))
	assert.Equal(t, "/var/ofundd/log", util.EnsureAbsolute("/var/ofundd", "./x/../log"))
	assert.Equal(t, "/etc/rpc.crt", util.EnsureAbsolute("/var/ofundd", "/etc/rpc.crt"))

	assert.Equal(t, "", util.OptionalAbsolute("/var/ofundd", ""))
	assert.Equal(t, "/var/ofundd/ofundd.pid", util.OptionalAbsolute("/var/ofundd", "ofundd.pid"))
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "present")
	assert.Nil(t, os.WriteFile(name, []byte("x"), 0600))

	assert.True(t, util.EnsureFileExists(name))
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "absent")))
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("ofund.leveldb"))
	assert.False(t, util.IsPlainName("data/ofund.leveldb"))
	assert.False(t, util.IsPlainName("/ofund.leveldb"))
	assert.False(t, util.IsPlainName(""))
	assert.False(t, util.IsPlainName("."))
}
