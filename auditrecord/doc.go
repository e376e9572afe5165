// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auditrecord - audit entries and the signed requests that create them
//
// packed entry:
//   varint(rating) ++ varint(len summary) ++ summary ++
//   varint(len auditor) ++ auditor bytes ++ varint(timestamp)
//
// packed request (signature excluded):
//   varint(tag) ++ fields in struct order
package auditrecord
