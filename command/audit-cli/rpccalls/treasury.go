// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/rpc/treasury"
)

// Deposit - credit the treasury
func (client *Client) Deposit(amount uint64) (*treasury.DepositReply, error) {
	var reply treasury.DepositReply
	err := client.client.Call("Treasury.Deposit", &treasury.DepositArguments{Amount: amount}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Withdraw - empty the treasury, only the owner can do this
func (client *Client) Withdraw(caller *account.PrivateKey) (*treasury.WithdrawReply, error) {
	request := &auditrecord.WithdrawRequest{
		Caller: caller.Account(),
		Nonce:  nextNonce(),
	}
	err := request.Sign(caller)
	if nil != err {
		return nil, err
	}

	if client.verbose {
		printJSON(client.handle, "Withdraw Request", request)
	}

	var reply treasury.WithdrawReply
	err = client.client.Call("Treasury.Withdraw", request, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Owner - treasury owner and balance
func (client *Client) Owner() (*treasury.OwnerReply, error) {
	var reply treasury.OwnerReply
	err := client.client.Call("Treasury.Owner", &treasury.OwnerArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
