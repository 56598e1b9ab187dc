// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tier - classify a balance into an investor tier
package tier

import (
	"github.com/bitmark-inc/ofundd/fault"
)

// Tier - ordinal classification 0..3
type Tier uint8

// the tiers
const (
	None  Tier = iota // below the first threshold
	One               // 1,000 units
	Two               // 10,000 units
	Three             // 100,000 units
	limit
)

// MaximumDecimals - largest exponent that keeps the top threshold in a uint64
const MaximumDecimals = 14

// thresholds in whole units, lowest tier first
var unitThresholds = [...]uint64{1_000, 10_000, 100_000}

// Classifier - thresholds scaled to the smallest indivisible unit
type Classifier struct {
	decimals   uint8
	thresholds [len(unitThresholds)]uint64
}

// New - create a classifier for a unit with the given decimal exponent
func New(decimals uint8) (Classifier, error) {
	c := Classifier{}
	if decimals > MaximumDecimals {
		return c, fault.ErrInvalidDecimals
	}
	unit := Unit(decimals)
	c.decimals = decimals
	for i, t := range unitThresholds {
		c.thresholds[i] = t * unit
	}
	return c, nil
}

// Unit - smallest units in one whole unit
func Unit(decimals uint8) uint64 {
	unit := uint64(1)
	for i := uint8(0); i < decimals; i += 1 {
		unit *= 10
	}
	return unit
}

// Decimals - the exponent this classifier was created with
func (c Classifier) Decimals() uint8 {
	return c.decimals
}

// Classify - tier for a balance, highest threshold first
func (c Classifier) Classify(balance uint64) Tier {
	for i := len(c.thresholds) - 1; i >= 0; i -= 1 {
		if balance >= c.thresholds[i] {
			return Tier(i + 1)
		}
	}
	return None
}

// Threshold - lowest balance that reaches a tier
func (c Classifier) Threshold(t Tier) uint64 {
	if None == t || t >= limit {
		return 0
	}
	return c.thresholds[t-1]
}

// Valid - check a stored ordinal
func (t Tier) Valid() bool {
	return t < limit
}

// FromUint8 - check and convert a stored ordinal
func FromUint8(n uint8) (Tier, error) {
	t := Tier(n)
	if !t.Valid() {
		return None, fault.ErrInvalidTier
	}
	return t, nil
}
