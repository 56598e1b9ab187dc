// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
)

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

var testSeed = decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e")

func TestIdentityBase58RoundTrip(t *testing.T) {
	kp, err := account.KeyPairFromSeed(testSeed)
	assert.Nil(t, err, "key pair from seed")

	s := kp.Identity.String()
	id, err := account.IdentityFromBase58(s)
	assert.Nil(t, err, "decode base58")
	assert.Equal(t, kp.Identity, id, "identity changed")
	assert.True(t, id.IsOnCurve(), "ed25519 key must be on curve")
	assert.False(t, id.IsZero(), "identity should not be zero")
}

func TestIdentityInvalid(t *testing.T) {
	_, err := account.IdentityFromBase58("0OIl")
	assert.Equal(t, fault.ErrInvalidIdentity, err, "bad base58 characters")

	_, err = account.IdentityFromBase58("3yZe7d")
	assert.Equal(t, fault.ErrInvalidIdentity, err, "short identity")

	_, err = account.IdentityFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidIdentity, err, "short bytes")
}

func TestIdentityJSON(t *testing.T) {
	kp, err := account.KeyPairFromSeed(testSeed)
	assert.Nil(t, err, "key pair from seed")

	type wrapper struct {
		Owner account.Identity `json:"owner"`
	}

	b, err := json.Marshal(wrapper{Owner: kp.Identity})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"owner":"`+kp.Identity.String()+`"}`, string(b), "json text")

	var w wrapper
	err = json.Unmarshal(b, &w)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, kp.Identity, w.Owner, "owner changed")
}

func TestSignature(t *testing.T) {
	kp, err := account.NewKeyPair()
	assert.Nil(t, err, "new key pair")

	message := []byte("register-user")
	signature := kp.Sign(message)

	assert.Nil(t, kp.Identity.CheckSignature(message, signature), "valid signature")
	assert.Equal(t, fault.ErrInvalidSignature, kp.Identity.CheckSignature([]byte("other"), signature), "wrong message")
	assert.Equal(t, fault.ErrInvalidSignature, kp.Identity.CheckSignature(message, signature[:10]), "short signature")

	other, err := account.NewKeyPair()
	assert.Nil(t, err, "new key pair")
	assert.Equal(t, fault.ErrInvalidSignature, other.Identity.CheckSignature(message, signature), "wrong signer")
}
