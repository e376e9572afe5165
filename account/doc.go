// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identity of an audit submitter
//
// an account is an ed25519 public key with a network flag, its text
// form is base58 of the key variant, the key and a four byte SHA3
// checksum; the byte form (without checksum) is the storage key
package account
