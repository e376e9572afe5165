// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - append-only record of audits keyed by content hash
//
// three structures are kept in step by every registration:
//
//   ledger        - all audits of one hash in submission order
//   hash index    - every hash with at least one audit, in first audit order
//   auditor index - the hashes each auditor has audited, in first audit order
//
// both indexes have a presence set beside the ordered list so that
// membership is a single key lookup
package registry
