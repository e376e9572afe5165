// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/auditd/fault"
)

// seed layout: header ++ network ++ ed25519 seed ++ checksum
var seedHeader = []byte{0x5a, 0xfe, 0x03}

const (
	seedHeaderLength   = 3
	seedNetworkLength  = 1
	seedChecksumLength = 4

	seedLength = seedHeaderLength + seedNetworkLength + ed25519.SeedSize + seedChecksumLength
)

// NewSeed - random base58 seed for the given network
func NewSeed(testnet bool) (string, error) {
	sk := make([]byte, ed25519.SeedSize)
	_, err := rand.Read(sk)
	if nil != err {
		return "", err
	}
	return encodeSeed(testnet, sk), nil
}

// NewPrivateKey - random private key for the given network
func NewPrivateKey(testnet bool) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{Test: testnet, PrivateKey: priv}, nil
}

// PrivateKeyFromBase58Seed - recreate a private key from its base58 seed
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {

	seed, err := base58.Decode(seedBase58Encoded)
	if nil != err || 0 == len(seed) {
		return nil, fault.CannotDecodeSeed
	}
	if seedLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	if !bytes.Equal(seedHeader, seed[:seedHeaderLength]) {
		return nil, fault.InvalidSeedHeader
	}

	network := seed[seedHeaderLength]
	secretStart := seedHeaderLength + seedNetworkLength

	privateKey := &PrivateKey{
		Test:       0x01 == network,
		PrivateKey: ed25519.NewKeyFromSeed(seed[secretStart:checksumStart]),
	}
	return privateKey, nil
}

func encodeSeed(testnet bool, sk []byte) string {
	network := byte(0x00)
	if testnet {
		network = 0x01
	}
	seed := make([]byte, 0, seedLength)
	seed = append(seed, seedHeader...)
	seed = append(seed, network)
	seed = append(seed, sk...)
	checksum := sha3.Sum256(seed)
	seed = append(seed, checksum[:seedChecksumLength]...)
	return base58.Encode(seed)
}
