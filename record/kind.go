// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ofundd/capacity"
)

// Kind - the closed set of record kinds
type Kind uint8

// enumerate the record kinds
const (
	// null marks an unknown record - not used as a record kind
	NullKind = Kind(iota)

	MintAuthorityKind = Kind(iota)
	UserProfileKind   = Kind(iota)
	ProjectKind       = Kind(iota)

	// this item must be last
	InvalidKind = Kind(iota)
)

// Discriminator - leading bytes identifying the kind of a packed record
type Discriminator [capacity.DiscriminatorSize]byte

var kindNames = map[Kind]string{
	MintAuthorityKind: "MintAuthority",
	UserProfileKind:   "UserProfile",
	ProjectKind:       "Project",
}

var discriminators = map[Kind]Discriminator{}

func init() {
	for k, name := range kindNames {
		discriminators[k] = makeDiscriminator(name)
	}
}

func makeDiscriminator(name string) Discriminator {
	d := Discriminator{}
	h := sha3.Sum256([]byte("account:" + name))
	copy(d[:], h[:])
	return d
}

// String - name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// Discriminator - the packed prefix for a kind
func (k Kind) Discriminator() (Discriminator, bool) {
	d, ok := discriminators[k]
	return d, ok
}

// kindOf - determine the kind of a packed record
func kindOf(packed []byte) Kind {
	if len(packed) < capacity.DiscriminatorSize {
		return NullKind
	}
	for k, d := range discriminators {
		if bytes.Equal(d[:], packed[:capacity.DiscriminatorSize]) {
			return k
		}
	}
	return NullKind
}
