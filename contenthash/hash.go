// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contenthash

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/auditd/fault"
)

// Length - number of bytes in a content hash
const Length = 32

// ContentHash - opaque identifier of an audited artefact
//
// compared byte for byte, no normalisation
// represented as lowercase hex for print and JSON
// to convert to bytes just use h[:]
type ContentHash [Length]byte

// New - SHA3-256 of some content
func New(content []byte) ContentHash {
	return sha3.Sum256(content)
}

// FromBytes - convert and validate a binary byte slice to a content hash
func FromBytes(hash *ContentHash, buffer []byte) error {
	if Length != len(buffer) {
		return fault.InvalidContentHash
	}
	copy(hash[:], buffer)
	return nil
}

// FromString - decode 64 hex characters
func FromString(s string) (ContentHash, error) {
	var hash ContentHash
	err := hash.UnmarshalText([]byte(s))
	return hash, err
}

// String - hex form for the fmt package (%s)
func (hash ContentHash) String() string {
	return hex.EncodeToString(hash[:])
}

// GoString - for the fmt package (%#v)
func (hash ContentHash) GoString() string {
	return "<content:" + hex.EncodeToString(hash[:]) + ">"
}

// IsZero - true for the all zero hash
func (hash ContentHash) IsZero() bool {
	return ContentHash{} == hash
}

// Scan - hex representation for the fmt package scan routines
func (hash *ContentHash) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return hash.UnmarshalText(token)
}

// MarshalText - convert to hex text
func (hash ContentHash) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, hash[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to a content hash
func (hash *ContentHash) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.InvalidContentHash
	}
	buffer := make([]byte, Length)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(hash[:], buffer)
	return nil
}
