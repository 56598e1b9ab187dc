// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package capacity - plan the storage needed by a record before it exists
//
// A record is a fixed width header followed by variable width fields.
// Each string and each collection costs a four byte length prefix plus
// its declared maximum, so the result is an exact upper bound on the
// encoded size.
package capacity

// byte sizes of the encoded primitives
const (
	DiscriminatorSize = 8
	LengthPrefixSize  = 4
	IdentitySize      = 32
	Uint64Size        = 8
	Int64Size         = 8
	Uint8Size         = 1
	BoolSize          = 1
)

// Collection - a bounded repeated element
type Collection struct {
	MaximumCount int
	ElementSize  int
}

// Shape - everything the planner needs to know about a record
type Shape struct {
	Fixed       int          // sum of fixed width fields
	Strings     []int        // maximum byte length of each string field
	Collections []Collection // maximum count and size of each collection
}

// Plan - bytes needed to store any record of this shape
func Plan(shape Shape) int {
	size := DiscriminatorSize + shape.Fixed
	for _, s := range shape.Strings {
		size += LengthPrefixSize + s
	}
	for _, c := range shape.Collections {
		size += LengthPrefixSize + c.MaximumCount*c.ElementSize
	}
	return size
}

// Grow - bytes needed after adding extra elements to one collection
func Grow(current int, c Collection, extra int) int {
	return current + extra*c.ElementSize
}
