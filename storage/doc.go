// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a single Transaction: a leveldb batch plus a
// cache of the uncommitted values so that reads inside the
// transaction see its own writes.  Nothing reaches the database
// until Commit, Abort discards everything.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte identity (public key or derived address)
// 4. count        = big endian uint64 (8 bytes)
//
// Accounts:
//
//   A ++ address               - stored record
//                                data: discriminator ++ record body
//   S ++ address               - bytes allocated to the record
//                                data: count
//
// Value units:
//
//   M ++ mint                  - unit type
//                                data: decimals ++ authority address ++ supply count
//   B ++ mint ++ owner         - balance
//                                data: count
//
// Testing:
//   Z ++ key                   - testing data
package storage
