// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nonce_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/rpc/fixtures"
	"github.com/bitmark-inc/auditd/rpc/nonce"
)

func TestAccept(t *testing.T) {
	err := fixtures.SetupTestDatabase()
	if nil != err {
		t.Fatalf("setup error: %s", err)
	}
	defer fixtures.TeardownTestDatabase()

	a := fixtures.NewPrivateKey().Account()
	b := fixtures.NewPrivateKey().Account()

	n := nonce.New(logger.New(fixtures.LogCategory))

	assert.Equal(t, uint64(0), n.Last(a), "initial")
	assert.Equal(t, fault.StaleNonce, n.Accept(a, 0), "zero nonce")

	assert.Nil(t, n.Accept(a, 5), "first")
	assert.Equal(t, uint64(5), n.Last(a), "after first")

	assert.Equal(t, fault.StaleNonce, n.Accept(a, 5), "replay")
	assert.Equal(t, fault.StaleNonce, n.Accept(a, 4), "older")

	assert.Nil(t, n.Accept(a, 6), "next")
	assert.Nil(t, n.Accept(a, 1000), "gap")
	assert.Equal(t, uint64(1000), n.Last(a), "after gap")

	// accounts are independent
	assert.Nil(t, n.Accept(b, 1), "other account")
	assert.Equal(t, uint64(1000), n.Last(a), "first account unchanged")

	assert.Equal(t, fault.MissingParameters, n.Accept(nil, 7), "nil account")
	assert.Equal(t, uint64(0), n.Last(nil), "nil last")
}
