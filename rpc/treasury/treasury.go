// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasury

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/rpc/nonce"
	"github.com/bitmark-inc/auditd/rpc/ratelimit"
	"github.com/bitmark-inc/auditd/treasury"
)

const (
	rateLimitTreasury = 10
	rateBurstTreasury = 5
)

// Treasury - type for RPC calls
type Treasury struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Treasury treasury.Treasury
	Nonces   nonce.Nonces
}

// New - create the treasury rpc service
func New(log *logger.L, t treasury.Treasury, nonces nonce.Nonces) *Treasury {
	return &Treasury{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitTreasury, rateBurstTreasury),
		Treasury: t,
		Nonces:   nonces,
	}
}

// ---

// DepositArguments - amount to credit
type DepositArguments struct {
	Amount uint64 `json:"amount,string"`
}

// DepositReply - balance after the credit
type DepositReply struct {
	Balance uint64 `json:"balance,string"`
}

// Deposit - credit the treasury
func (t *Treasury) Deposit(arguments *DepositArguments, reply *DepositReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	balance, err := t.Treasury.Deposit(arguments.Amount)
	if nil != err {
		return err
	}

	reply.Balance = balance
	return nil
}

// ---

// WithdrawReply - amount transferred to the owner
type WithdrawReply struct {
	Amount uint64 `json:"amount,string"`
}

// Withdraw - owner signed request to take the whole balance
func (t *Treasury) Withdraw(arguments *auditrecord.WithdrawRequest, reply *WithdrawReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	if err := arguments.Verify(); nil != err {
		t.Log.Warnf("withdraw: caller: %s  signature error: %s", arguments.Caller, err)
		return err
	}

	if !t.Treasury.Owner().Equal(arguments.Caller) {
		return fault.Unauthorised
	}

	if err := t.Nonces.Accept(arguments.Caller, arguments.Nonce); nil != err {
		return err
	}

	amount, err := t.Treasury.Withdraw(arguments.Caller)
	if nil != err {
		return err
	}

	reply.Amount = amount
	return nil
}

// ---

// OwnerArguments - empty arguments for owner request
type OwnerArguments struct{}

// OwnerReply - treasury state
type OwnerReply struct {
	Owner   *account.Account `json:"owner"`
	Balance uint64           `json:"balance,string"`
}

// Owner - the owner account and current balance
func (t *Treasury) Owner(_ *OwnerArguments, reply *OwnerReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	reply.Owner = t.Treasury.Owner()
	reply.Balance = t.Treasury.Balance()
	return nil
}
