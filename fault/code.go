// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// CodeInternal - returned for any error that is not one of the fault instances
const CodeInternal = "Internal"

// symbolic codes reported to callers
var codes = map[error]string{
	ErrAccountAlreadyExists:        "AlreadyExists",
	ErrAccountNotFound:             "AccountNotFound",
	ErrAllocationExceeded:          "AllocationExceeded",
	ErrInsufficientFunds:           "InsufficientFunds",
	ErrInsufficientTier:            "InsufficientTier",
	ErrInvalidAmount:               "InvalidAmount",
	ErrInvalidCapacityPolicy:       "InvalidCapacityPolicy",
	ErrInvalidCount:                "InvalidCount",
	ErrInvalidCursor:               "InvalidCursor",
	ErrInvalidDecimals:             "InvalidDecimals",
	ErrInvalidIdentity:             "InvalidIdentity",
	ErrInvalidProof:                "Unauthorized",
	ErrInvalidRecord:               "InvalidRecord",
	ErrInvalidSeeds:                "Unauthorized",
	ErrInvalidSignature:            "Unauthorized",
	ErrInvalidStructPointer:        "InvalidRequest",
	ErrInvalidTier:                 "InvalidRecord",
	ErrInvalidUserProfile:          "InvalidUserProfile",
	ErrInvestmentNotFound:          "InvestmentNotFound",
	ErrMaxInvestmentsReached:       "MaxInvestmentsReached",
	ErrMintAlreadyExists:           "AlreadyExists",
	ErrMintAuthorityNotInitialized: "MintAuthorityNotInitialized",
	ErrMintNotFound:                "MintNotFound",
	ErrMissingParameters:           "MissingParameters",
	ErrNotAvailable:                "NotAvailable",
	ErrNumericalOverflow:           "NumericalOverflow",
	ErrProjectNotActive:            "ProjectNotActive",
	ErrProofAlreadyUsed:            "Unauthorized",
	ErrRateLimiting:                "RateLimited",
	ErrStringTooLong:               "StringTooLong",
	ErrTransactionInUse:            "Busy",
	ErrUnauthorized:                "Unauthorized",
	ErrWrongRecordKind:             "InvalidRecord",
}

// Code - the symbolic code for an error
//
// wrapped errors are unwrapped until a fault instance is found
func Code(err error) string {
	for e := err; nil != e; e = errors.Unwrap(e) {
		switch e.(type) {
		case AuthorisationError, ArithmeticError, CapacityError, ExistsError,
			InvalidError, NotFoundError, ProcessError, StateError:
			if c, ok := codes[e]; ok {
				return c
			}
			return CodeInternal
		}
	}
	return CodeInternal
}
