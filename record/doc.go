// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the stored record kinds
//
// Every record is packed as:
//
//   discriminator[8] . borsh(body)
//
// where the discriminator is the first 8 bytes of
// SHA3-256("account:" . kind name).  Strings and collections are
// prefixed with a little endian uint32 count, fixed size fields are
// written as is, so the size of any record is bounded by its Shape.
package record
