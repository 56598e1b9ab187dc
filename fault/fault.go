// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ArithmeticError GenericError
type CapacityError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyExists        = ExistsError("account already exists")
	ErrAccountNotFound             = NotFoundError("account not found")
	ErrAllocationExceeded          = CapacityError("record exceeds its allocation")
	ErrAlreadyInitialised          = ProcessError("already initialised")
	ErrFileAlreadyExists           = ExistsError("file already exists")
	ErrInsufficientFunds           = ProcessError("insufficient funds")
	ErrInsufficientTier            = AuthorisationError("tier is below project minimum")
	ErrInvalidAmount               = InvalidError("amount must be greater than zero")
	ErrInvalidCapacityPolicy       = InvalidError("invalid capacity policy")
	ErrInvalidChain                = InvalidError("invalid chain")
	ErrInvalidCount                = InvalidError("invalid count")
	ErrInvalidCursor               = InvalidError("invalid cursor")
	ErrInvalidDecimals             = InvalidError("invalid decimals")
	ErrInvalidIdentity             = InvalidError("invalid identity")
	ErrInvalidIPAddress            = InvalidError("invalid IP address")
	ErrInvalidLoggerChannel        = ProcessError("invalid logger channel")
	ErrInvalidProof                = AuthorisationError("invalid signing proof")
	ErrInvalidRecord               = InvalidError("invalid record")
	ErrInvalidSeeds                = InvalidError("invalid derivation seeds")
	ErrInvalidSignature            = AuthorisationError("invalid signature")
	ErrInvalidStructPointer        = InvalidError("invalid struct pointer")
	ErrInvalidTier                 = InvalidError("invalid tier")
	ErrInvalidUserProfile          = AuthorisationError("invalid user profile")
	ErrInvestmentNotFound          = NotFoundError("investment not found")
	ErrMaxInvestmentsReached       = CapacityError("maximum number of investments reached")
	ErrMintAlreadyExists           = ExistsError("mint already exists")
	ErrMintAuthorityNotInitialized = StateError("mint authority not initialized")
	ErrMintNotFound                = NotFoundError("mint not found")
	ErrMissingParameters           = InvalidError("missing parameters")
	ErrNotAvailable                = StateError("not available during startup")
	ErrNotInitialised              = ProcessError("not initialised")
	ErrNumericalOverflow           = ArithmeticError("numerical overflow")
	ErrProjectNotActive            = StateError("project is not active")
	ErrProofAlreadyUsed            = AuthorisationError("signing proof already used")
	ErrRateLimiting                = ProcessError("rate limiting")
	ErrStringTooLong               = InvalidError("string exceeds its byte budget")
	ErrTransactionInUse            = ProcessError("transaction already in use")
	ErrTransactionNotStarted       = ProcessError("transaction not started")
	ErrUnauthorized                = AuthorisationError("unauthorized access")
	ErrWrongRecordKind             = InvalidError("wrong record kind")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ArithmeticError) Error() string    { return string(e) }
func (e CapacityError) Error() string      { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e StateError) Error() string         { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrAuthorisation(e error) bool { var x AuthorisationError; return errors.As(e, &x) }
func IsErrArithmetic(e error) bool    { var x ArithmeticError; return errors.As(e, &x) }
func IsErrCapacity(e error) bool      { var x CapacityError; return errors.As(e, &x) }
func IsErrExists(e error) bool        { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool       { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool      { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool       { var x ProcessError; return errors.As(e, &x) }
func IsErrState(e error) bool         { var x StateError; return errors.As(e, &x) }
