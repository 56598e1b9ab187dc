// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capacity

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/ofundd/fault"
)

// Mode - how an investment history is stored
type Mode int

// the possible modes
const (
	Unbounded Mode = iota // header allocation, grows by reallocation
	Capped                // fixed maximum count allocated up front
	Disabled              // no history is kept
)

// names as used in configuration
const (
	unboundedName = "unbounded"
	cappedName    = "capped"
	disabledName  = "none"
)

// DefaultCap - maximum investments for a capped history
const DefaultCap = 20

// Policy - investment history policy
type Policy struct {
	Mode Mode
	Cap  int // only for Capped
}

// NewUnbounded - growable history
func NewUnbounded() Policy {
	return Policy{Mode: Unbounded}
}

// NewCapped - at most n entries
func NewCapped(n int) (Policy, error) {
	if n <= 0 {
		return Policy{}, fault.ErrInvalidCapacityPolicy
	}
	return Policy{Mode: Capped, Cap: n}, nil
}

// NewDisabled - no history
func NewDisabled() Policy {
	return Policy{Mode: Disabled}
}

// ParsePolicy - decode the configuration form
//
// accepts: "unbounded", "none" or "capped" with a positive count
func ParsePolicy(name string, count int) (Policy, error) {
	switch strings.ToLower(name) {
	case unboundedName:
		return NewUnbounded(), nil
	case cappedName:
		return NewCapped(count)
	case disabledName:
		return NewDisabled(), nil
	default:
		return Policy{}, fault.ErrInvalidCapacityPolicy
	}
}

// KeepsHistory - false if investments are only totalled
func (p Policy) KeepsHistory() bool {
	return Disabled != p.Mode
}

// InitialCount - number of entries to allocate at creation
func (p Policy) InitialCount() int {
	if Capped == p.Mode {
		return p.Cap
	}
	return 0
}

// Allows - can a history of this length take one more entry
func (p Policy) Allows(length int) bool {
	switch p.Mode {
	case Unbounded:
		return true
	case Capped:
		return length < p.Cap
	default:
		return false
	}
}

// String - for logging
func (p Policy) String() string {
	switch p.Mode {
	case Unbounded:
		return unboundedName
	case Capped:
		return fmt.Sprintf("%s(%d)", cappedName, p.Cap)
	case Disabled:
		return disabledName
	default:
		return "invalid"
	}
}
