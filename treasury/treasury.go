// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treasury - funds held by the registry and withdrawable only by
// its owner
package treasury

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/storage"
)

// single record keys
var (
	ownerKey   = []byte("owner")
	balanceKey = []byte("balance")
)

// Treasury - owner gated balance
type Treasury interface {
	Owner() *account.Account
	Balance() uint64
	Deposit(uint64) (uint64, error)
	Withdraw(*account.Account) (uint64, error)
}

type treasury struct {
	sync.Mutex
	log   *logger.L
	owner *account.Account
}

// New - open the treasury, recording the owner on first use
//
// the owner can never change: a different configured owner is an error
func New(log *logger.L, owner *account.Account) (Treasury, error) {
	if nil == owner {
		return nil, fault.ConfigurationOwnerBlank
	}

	stored := storage.Pool.TreasuryOwner.Get(ownerKey)
	if nil != stored {
		a, err := account.FromBytes(stored)
		if nil != err {
			log.Criticalf("stored owner: %x  error: %s", stored, err)
			return nil, err
		}
		if !a.Equal(owner) {
			log.Errorf("stored owner: %s  configured owner: %s", a, owner)
			return nil, fault.OwnerMismatch
		}
		log.Infof("owner: %s", a)
		return &treasury{log: log, owner: a}, nil
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.TreasuryOwner, ownerKey, owner.Bytes())
	trx.PutN(storage.Pool.TreasuryBalance, balanceKey, 0)
	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	log.Infof("recorded owner: %s", owner)
	return &treasury{log: log, owner: owner}, nil
}

// Owner - the account allowed to withdraw
func (t *treasury) Owner() *account.Account {
	return &account.Account{
		Test:      t.owner.Test,
		PublicKey: append([]byte{}, t.owner.PublicKey...),
	}
}

// Balance - current withdrawable amount
func (t *treasury) Balance() uint64 {
	t.Lock()
	defer t.Unlock()
	n, _ := storage.Pool.TreasuryBalance.GetN(balanceKey)
	return n
}

// Deposit - credit the balance, returns the new balance
func (t *treasury) Deposit(amount uint64) (uint64, error) {
	if 0 == amount {
		return 0, fault.InvalidCount
	}

	t.Lock()
	defer t.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	balance, _ := trx.GetN(storage.Pool.TreasuryBalance, balanceKey)
	if balance+amount < balance {
		trx.Abort()
		return balance, fault.InvalidCount
	}
	balance += amount

	trx.PutN(storage.Pool.TreasuryBalance, balanceKey, balance)
	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	t.log.Infof("deposit: %d  balance: %d", amount, balance)
	return balance, nil
}

// Withdraw - transfer the whole balance to the owner
//
// returns the amount transferred, the balance becomes zero
func (t *treasury) Withdraw(caller *account.Account) (uint64, error) {
	if !t.owner.Equal(caller) {
		t.log.Warnf("withdraw refused for: %s", caller)
		return 0, fault.Unauthorised
	}

	t.Lock()
	defer t.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	amount, _ := trx.GetN(storage.Pool.TreasuryBalance, balanceKey)
	trx.PutN(storage.Pool.TreasuryBalance, balanceKey, 0)
	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	t.log.Infof("withdraw: %d  to: %s", amount, caller)
	return amount, nil
}
