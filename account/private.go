// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"
)

// PrivateKey - ed25519 signing key
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// IsTesting - true for test network keys
func (privateKey *PrivateKey) IsTesting() bool {
	return privateKey.Test
}

// Account - the corresponding public account
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		Test:      privateKey.Test,
		PublicKey: append([]byte{}, privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:]...),
	}
}

// Sign - ed25519 signature of a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Seed - base58 seed from which this key can be recreated
func (privateKey *PrivateKey) Seed() string {
	return encodeSeed(privateKey.Test, privateKey.PrivateKey.Seed())
}
