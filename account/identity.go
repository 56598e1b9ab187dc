// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ofundd/fault"
)

// IdentityLength - bytes in an identity
const IdentityLength = 32

// Identity - public key of a participant or a derived address
type Identity [IdentityLength]byte

// Zero - the all zero identity, never a valid owner
var Zero Identity

// IdentityFromBase58 - decode the base58 text form
func IdentityFromBase58(s string) (Identity, error) {
	id := Identity{}
	b, err := base58.Decode(s)
	if nil != err {
		return id, fault.ErrInvalidIdentity
	}
	if IdentityLength != len(b) {
		return id, fault.ErrInvalidIdentity
	}
	copy(id[:], b)
	return id, nil
}

// IdentityFromBytes - copy a 32 byte slice
func IdentityFromBytes(b []byte) (Identity, error) {
	id := Identity{}
	if IdentityLength != len(b) {
		return id, fault.ErrInvalidIdentity
	}
	copy(id[:], b)
	return id, nil
}

// FromPublicKey - convert from the sdk public key type
func FromPublicKey(key common.PublicKey) Identity {
	return Identity(key)
}

// PublicKey - convert to the sdk public key type
func (id Identity) PublicKey() common.PublicKey {
	return common.PublicKey(id)
}

// Bytes - a copy of the identity as a byte slice
func (id Identity) Bytes() []byte {
	b := make([]byte, IdentityLength)
	copy(b, id[:])
	return b
}

// IsZero - true for the unset identity
func (id Identity) IsZero() bool {
	return id == Zero
}

// Equal - compare two identities
func (id Identity) Equal(other Identity) bool {
	return bytes.Equal(id[:], other[:])
}

// IsOnCurve - only curve points can sign, derived addresses are off curve
func (id Identity) IsOnCurve() bool {
	return common.IsOnCurve(common.PublicKey(id))
}

// CheckSignature - verify an ed25519 signature made by this identity
func (id Identity) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(id[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// String - base58 encoding
func (id Identity) String() string {
	return base58.Encode(id[:])
}

// GoString - for %#v
func (id Identity) GoString() string {
	return "<identity:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert an identity to its base58 JSON form
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert base58 JSON form to an identity
func (id *Identity) UnmarshalText(s []byte) error {
	i, err := IdentityFromBase58(string(s))
	if nil != err {
		return err
	}
	*id = i
	return nil
}
