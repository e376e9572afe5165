// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auditrecord

import (
	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/util"
)

// TagType - type code for signed requests
type TagType uint64

// enumerated request tags
const (
	RegisterTag TagType = 1
	WithdrawTag TagType = 2
)

// RegisterRequest - a signed request to record an audit
type RegisterRequest struct {
	Hash      contenthash.ContentHash `json:"hash"`
	Rating    uint8                   `json:"rating"`
	Summary   string                  `json:"summary"`
	Auditor   *account.Account        `json:"auditor"`
	Nonce     uint64                  `json:"nonce,string"`
	Signature account.Signature       `json:"signature"`
}

// WithdrawRequest - a signed request to empty the treasury
type WithdrawRequest struct {
	Caller    *account.Account  `json:"caller"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Message - the bytes covered by the signature
func (request *RegisterRequest) Message() (Packed, error) {
	if nil == request.Auditor {
		return nil, fault.MissingParameters
	}
	message := util.ToVarint64(uint64(RegisterTag))
	message = appendBytes(message, request.Hash[:])
	message = util.AppendVarint64(message, uint64(request.Rating))
	message = appendString(message, request.Summary)
	message = appendAccount(message, request.Auditor)
	message = util.AppendVarint64(message, request.Nonce)
	return message, nil
}

// Sign - fill in the signature
func (request *RegisterRequest) Sign(privateKey *account.PrivateKey) error {
	message, err := request.Message()
	if nil != err {
		return err
	}
	request.Signature = privateKey.Sign(message)
	return nil
}

// Verify - check the signature against the auditor
func (request *RegisterRequest) Verify() error {
	message, err := request.Message()
	if nil != err {
		return err
	}
	return request.Auditor.CheckSignature(message, request.Signature)
}

// Message - the bytes covered by the signature
func (request *WithdrawRequest) Message() (Packed, error) {
	if nil == request.Caller {
		return nil, fault.MissingParameters
	}
	message := util.ToVarint64(uint64(WithdrawTag))
	message = appendAccount(message, request.Caller)
	message = util.AppendVarint64(message, request.Nonce)
	return message, nil
}

// Sign - fill in the signature
func (request *WithdrawRequest) Sign(privateKey *account.PrivateKey) error {
	message, err := request.Message()
	if nil != err {
		return err
	}
	request.Signature = privateKey.Sign(message)
	return nil
}

// Verify - check the signature against the caller
func (request *WithdrawRequest) Verify() error {
	message, err := request.Message()
	if nil != err {
		return err
	}
	return request.Caller.CheckSignature(message, request.Signature)
}
