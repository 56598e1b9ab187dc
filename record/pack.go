// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"

	"github.com/near/borsh-go"

	"github.com/bitmark-inc/ofundd/capacity"
	"github.com/bitmark-inc/ofundd/fault"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Pack - validate and encode a record
func Pack(r Record) (Packed, error) {
	if nil == r {
		return nil, fault.ErrInvalidStructPointer
	}
	d, ok := r.Kind().Discriminator()
	if !ok {
		return nil, fault.ErrWrongRecordKind
	}
	err := r.Validate()
	if nil != err {
		return nil, err
	}
	body, err := borsh.Serialize(valueOf(r))
	if nil != err {
		return nil, fmt.Errorf("%s: %s: %w", r.Kind(), err, fault.ErrInvalidRecord)
	}
	buffer := make(Packed, 0, len(d)+len(body))
	buffer = append(buffer, d[:]...)
	buffer = append(buffer, body...)
	return buffer, nil
}

// Kind - kind of a packed record, NullKind if unrecognised
func (p Packed) Kind() Kind {
	return kindOf(p)
}

// Unpack - decode a record of any kind
func (p Packed) Unpack() (Record, error) {
	var r Record
	switch p.Kind() {
	case MintAuthorityKind:
		r = &MintAuthority{}
	case UserProfileKind:
		r = &UserProfile{}
	case ProjectKind:
		r = &Project{}
	default:
		return nil, fault.ErrInvalidRecord
	}
	err := p.unpackInto(r)
	if nil != err {
		return nil, err
	}
	return r, nil
}

// UnpackAs - decode a record that must be of the kind of r
func (p Packed) UnpackAs(r Record) error {
	if p.Kind() != r.Kind() {
		return fault.ErrWrongRecordKind
	}
	return p.unpackInto(r)
}

// encode the struct itself, a pointer would be written as an option
func valueOf(r Record) interface{} {
	switch t := r.(type) {
	case *MintAuthority:
		return *t
	case *UserProfile:
		return *t
	case *Project:
		return *t
	default:
		return r
	}
}

func (p Packed) unpackInto(r Record) error {
	err := borsh.Deserialize(r, p[capacity.DiscriminatorSize:])
	if nil != err {
		return fmt.Errorf("%s: %s: %w", r.Kind(), err, fault.ErrInvalidRecord)
	}
	return r.Validate()
}
