// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nonce - replay protection for signed requests
//
// each account has a last accepted nonce; a request is only accepted
// with a strictly greater one
package nonce

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/storage"
)

// Nonces - per account request counters
type Nonces interface {
	Accept(*account.Account, uint64) error
	Last(*account.Account) uint64
}

type nonces struct {
	sync.Mutex
	log *logger.L
}

// New - nonce store over the database
func New(log *logger.L) Nonces {
	return &nonces{
		log: log,
	}
}

// Accept - record nonce as the latest for the account
//
// fails with StaleNonce unless it exceeds the previous value
func (n *nonces) Accept(a *account.Account, nonce uint64) error {
	if nil == a {
		return fault.MissingParameters
	}

	n.Lock()
	defer n.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := a.Bytes()
	last, found := trx.GetN(storage.Pool.AuditorNonce, key)
	if found && nonce <= last {
		trx.Abort()
		n.log.Debugf("stale nonce: %d  last: %d  account: %s", nonce, last, a)
		return fault.StaleNonce
	}
	if !found && 0 == nonce {
		trx.Abort()
		return fault.StaleNonce
	}

	trx.PutN(storage.Pool.AuditorNonce, key, nonce)
	return trx.Commit()
}

// Last - most recently accepted nonce, zero if none
func (n *nonces) Last(a *account.Account) uint64 {
	if nil == a {
		return 0
	}
	last, _ := storage.Pool.AuditorNonce.GetN(a.Bytes())
	return last
}
