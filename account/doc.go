// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - participant identities
//
// An identity is a 32 byte ed25519 public key, shown as base58.  The
// same type is used for derived sub-account addresses, which are not
// valid curve points and so can never produce a signature.
package account
