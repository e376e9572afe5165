// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auditrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/fault"
)

func TestRegisterRequest(t *testing.T) {
	privateKey, err := account.NewPrivateKey(true)
	if !assert.Nil(t, err, "new key") {
		return
	}

	request := &auditrecord.RegisterRequest{
		Hash:    contenthash.New([]byte("contract")),
		Rating:  5,
		Summary: "clean",
		Auditor: privateKey.Account(),
		Nonce:   1,
	}
	assert.Nil(t, request.Sign(privateKey), "sign error")
	assert.Nil(t, request.Verify(), "verify error")

	// any change invalidates the signature
	request.Rating = 4
	assert.Equal(t, fault.InvalidSignature, request.Verify(), "modified rating accepted")
	request.Rating = 5
	request.Nonce = 2
	assert.Equal(t, fault.InvalidSignature, request.Verify(), "modified nonce accepted")

	// signed by someone else
	other, _ := account.NewPrivateKey(true)
	request.Nonce = 1
	assert.Nil(t, request.Sign(other), "sign error")
	assert.Equal(t, fault.InvalidSignature, request.Verify(), "foreign signature accepted")

	request.Auditor = nil
	assert.Equal(t, fault.MissingParameters, request.Verify(), "missing auditor")
}

func TestWithdrawRequest(t *testing.T) {
	privateKey, _ := account.NewPrivateKey(false)

	request := &auditrecord.WithdrawRequest{
		Caller: privateKey.Account(),
		Nonce:  7,
	}
	assert.Nil(t, request.Sign(privateKey), "sign error")
	assert.Nil(t, request.Verify(), "verify error")

	// a register signature is not a withdraw signature
	register := &auditrecord.RegisterRequest{
		Rating:  1,
		Summary: "x",
		Auditor: privateKey.Account(),
		Nonce:   7,
	}
	assert.Nil(t, register.Sign(privateKey), "sign error")
	request.Signature = register.Signature
	assert.Equal(t, fault.InvalidSignature, request.Verify(), "cross request signature accepted")
}
