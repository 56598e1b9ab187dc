// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bitmark-inc/ofundd/fault"
)

var (
	ErrAuthorisationOne = fault.AuthorisationError("authorisation one")
	ErrArithmeticOne    = fault.ArithmeticError("arithmetic one")
	ErrCapacityOne      = fault.CapacityError("capacity one")
	ErrExistsOne        = fault.ExistsError("exists one")
	ErrInvalidOne       = fault.InvalidError("invalid one")
	ErrNotFoundOne      = fault.NotFoundError("not found one")
	ErrProcessOne       = fault.ProcessError("process one")
	ErrStateOne         = fault.StateError("state one")
)

// test that the various errors can be classified
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		authorisation bool
		arithmetic    bool
		capacity      bool
		exists        bool
		invalid       bool
		notFound      bool
		process       bool
		state         bool
	}{
		{ErrAuthorisationOne, true, false, false, false, false, false, false, false},
		{ErrArithmeticOne, false, true, false, false, false, false, false, false},
		{ErrCapacityOne, false, false, true, false, false, false, false, false},
		{ErrExistsOne, false, false, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, false, true, false},
		{ErrStateOne, false, false, false, false, false, false, false, true},
		{fmt.Errorf("wrapped: %w", ErrStateOne), false, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAuthorisation(err) != e.authorisation {
			t.Errorf("%d: expected 'authorisation' == %v for err = %v", i, e.authorisation, err)
		}
		if fault.IsErrArithmetic(err) != e.arithmetic {
			t.Errorf("%d: expected 'arithmetic' == %v for err = %v", i, e.arithmetic, err)
		}
		if fault.IsErrCapacity(err) != e.capacity {
			t.Errorf("%d: expected 'capacity' == %v for err = %v", i, e.capacity, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrState(err) != e.state {
			t.Errorf("%d: expected 'state' == %v for err = %v", i, e.state, err)
		}
	}
}

func TestCode(t *testing.T) {
	codeList := []struct {
		err  error
		code string
	}{
		{fault.ErrUnauthorized, "Unauthorized"},
		{fault.ErrInvalidUserProfile, "InvalidUserProfile"},
		{fault.ErrNumericalOverflow, "NumericalOverflow"},
		{fault.ErrProjectNotActive, "ProjectNotActive"},
		{fault.ErrInvestmentNotFound, "InvestmentNotFound"},
		{fault.ErrMaxInvestmentsReached, "MaxInvestmentsReached"},
		{fault.ErrMintAuthorityNotInitialized, "MintAuthorityNotInitialized"},
		{fault.ErrInvalidCapacityPolicy, "InvalidCapacityPolicy"},
		{fault.ErrInvalidCount, "InvalidCount"},
		{fault.ErrInvalidDecimals, "InvalidDecimals"},
		{fault.ErrMissingParameters, "MissingParameters"},
		{fault.ErrTransactionInUse, "Busy"},
		{fmt.Errorf("policy: %s: %w", "capped(20)", fault.ErrInvalidCapacityPolicy), "InvalidCapacityPolicy"},
		{fmt.Errorf("invest %q: %w", "Alpha", fault.ErrNumericalOverflow), "NumericalOverflow"},
		{fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", fault.ErrInvalidSeeds)), "Unauthorized"},
		{ErrProcessOne, fault.CodeInternal},
		{errors.New("leveldb: closed"), fault.CodeInternal},
		{nil, fault.CodeInternal},
	}

	for i, c := range codeList {
		if actual := fault.Code(c.err); actual != c.code {
			t.Errorf("%d: code for %v: actual: %q  expected: %q", i, c.err, actual, c.code)
		}
	}
}

// every error a request can return has a documented code
func TestRequestErrorsHaveCodes(t *testing.T) {
	requestErrors := []error{
		fault.ErrAccountAlreadyExists,
		fault.ErrAccountNotFound,
		fault.ErrAllocationExceeded,
		fault.ErrInsufficientFunds,
		fault.ErrInsufficientTier,
		fault.ErrInvalidAmount,
		fault.ErrInvalidCapacityPolicy,
		fault.ErrInvalidCount,
		fault.ErrInvalidCursor,
		fault.ErrInvalidDecimals,
		fault.ErrInvalidIdentity,
		fault.ErrInvalidProof,
		fault.ErrInvalidRecord,
		fault.ErrInvalidSeeds,
		fault.ErrInvalidSignature,
		fault.ErrInvalidStructPointer,
		fault.ErrInvalidTier,
		fault.ErrInvalidUserProfile,
		fault.ErrInvestmentNotFound,
		fault.ErrMaxInvestmentsReached,
		fault.ErrMintAlreadyExists,
		fault.ErrMintAuthorityNotInitialized,
		fault.ErrMintNotFound,
		fault.ErrMissingParameters,
		fault.ErrNotAvailable,
		fault.ErrNumericalOverflow,
		fault.ErrProjectNotActive,
		fault.ErrProofAlreadyUsed,
		fault.ErrRateLimiting,
		fault.ErrStringTooLong,
		fault.ErrTransactionInUse,
		fault.ErrUnauthorized,
		fault.ErrWrongRecordKind,
	}

	for i, err := range requestErrors {
		if code := fault.Code(err); fault.CodeInternal == code {
			t.Errorf("%d: %v has no code", i, err)
		}
	}
}
