// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ofundd/fault"
)

// KeyPair - signing key for an identity
type KeyPair struct {
	Identity   Identity
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - generate a random key pair
func NewKeyPair() (*KeyPair, error) {
	return newKeyPair(rand.Reader)
}

// KeyPairFromSeed - deterministic key pair from a 32 byte seed
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidIdentity
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	return fromPrivateKey(privateKey), nil
}

func newKeyPair(r io.Reader) (*KeyPair, error) {
	_, privateKey, err := ed25519.GenerateKey(r)
	if nil != err {
		return nil, err
	}
	return fromPrivateKey(privateKey), nil
}

func fromPrivateKey(privateKey ed25519.PrivateKey) *KeyPair {
	kp := &KeyPair{
		PrivateKey: privateKey,
	}
	copy(kp.Identity[:], privateKey[ed25519.SeedSize:])
	return kp
}

// Sign - sign a message
func (kp *KeyPair) Sign(message []byte) Signature {
	return ed25519.Sign(kp.PrivateKey, message)
}
