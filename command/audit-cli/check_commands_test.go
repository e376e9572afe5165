// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/chain"
	"github.com/bitmark-inc/auditd/fault"
)

func TestCheckNetwork(t *testing.T) {
	items := []struct {
		in  string
		out string
		err error
	}{
		{"live", chain.Live, nil},
		{"bitmark", chain.Live, nil},
		{"test", chain.Testing, nil},
		{"testing", chain.Testing, nil},
		{"local", chain.Local, nil},
		{"", "", ErrInvalidNetwork},
		{"mainnet", "", ErrInvalidNetwork},
	}

	for i, item := range items {
		n, err := checkNetwork(item.in)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.out, n, "%d: wrong network", i)
	}
}

func TestCheckSeed(t *testing.T) {
	testSeed, err := account.NewSeed(true)
	if nil != err {
		t.Fatalf("new seed error: %s", err)
	}

	_, err = checkSeed("", false, true)
	assert.Equal(t, ErrRequiredSeed, err, "missing seed accepted")

	_, err = checkSeed(testSeed, true, true)
	assert.Equal(t, fault.IncompatibleOptions, err, "seed and new accepted")

	s, err := checkSeed(testSeed, false, true)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, testSeed, s, "wrong seed")

	_, err = checkSeed(testSeed, false, false)
	assert.Equal(t, fault.NotTestingAccount, err, "test seed accepted for live")

	s, err = checkSeed("", true, false)
	assert.Nil(t, err, "wrong error")
	privateKey, err := account.PrivateKeyFromBase58Seed(s)
	assert.Nil(t, err, "generated seed does not decode")
	assert.False(t, privateKey.IsTesting(), "generated seed on wrong network")
}

func TestCheckRating(t *testing.T) {
	r, err := checkRating(5)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint8(5), r, "wrong rating")

	// range is enforced by the server, only overflow is caught here
	r, err = checkRating(6)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint8(6), r, "wrong rating")

	_, err = checkRating(256)
	assert.Equal(t, fault.RatingOutOfRange, err, "overflow accepted")
}
