// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ofundd/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Ofund, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), name)
	}
	assert.False(t, chain.Valid("bitmark"))
	assert.False(t, chain.Valid(""))
}

func TestIsTesting(t *testing.T) {
	assert.False(t, chain.IsTesting(chain.Ofund))
	assert.True(t, chain.IsTesting(chain.Testing))
	assert.True(t, chain.IsTesting(chain.Local))
}

func TestParameters(t *testing.T) {
	p, ok := chain.Get(chain.Local)
	assert.True(t, ok, "local")
	assert.Equal(t, chain.Local, p.Name)
	assert.True(t, p.Testing)

	_, ok = chain.Get("")
	assert.False(t, ok, "empty name")
	assert.False(t, chain.IsTesting("unknown"))
}

func TestDatabaseName(t *testing.T) {
	assert.Equal(t, "ofund.leveldb", chain.DatabaseName(chain.Ofund))
	assert.Equal(t, "testing.leveldb", chain.DatabaseName(chain.Testing))
	assert.Equal(t, "local.leveldb", chain.DatabaseName(chain.Local))
	assert.Equal(t, "", chain.DatabaseName("unknown"))
}
