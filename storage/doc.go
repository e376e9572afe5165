// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. hash         = content hash (32 bytes)
// 4. count        = successive index value as big endian uint64 (8 bytes)
// 5. auditor      = account bytes (key variant ++ 32 byte public key)
// 6. *others*     = byte values of various length
//
// Ledger (one per content hash):
//
//   L ++ hash ++ count         - audits of a content hash in submission order
//                                data: packed audit entry
//   N ++ hash                  - number of audits for the hash
//                                data: count
//
// Hash index (each hash with at least one audit):
//
//   H ++ count                 - hashes in first audit order
//                                data: hash
//   P ++ hash                  - position of the hash in the H pool
//                                data: count
//   G ++ "total"               - number of indexed hashes
//                                data: count
//
// Auditor index (hashes an auditor has audited):
//
//   A ++ auditor               - next count value to use for appending
//                                data: count
//   S ++ auditor ++ count      - hashes in first audit order for this auditor
//                                data: hash
//   D ++ auditor ++ hash       - position in the S pool
//                                data: count
//   Q ++ auditor               - last accepted request nonce
//                                data: nonce
//
// Treasury:
//
//   O ++ "owner"               - owner account
//                                data: account bytes
//   B ++ "balance"             - withdrawable balance
//                                data: amount
//
// Testing:
//   Z ++ key                   - testing data
package storage
