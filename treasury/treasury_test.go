// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasury_test

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/storage"
	"github.com/bitmark-inc/auditd/treasury"
)

const testingDirName = "testing"

var databasePath = path.Join(testingDirName, "treasury.leveldb")

func setup(t *testing.T) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databasePath, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func mustAccount(s string) *account.Account {
	a, err := account.FromBase58(s)
	if nil != err {
		panic(err)
	}
	return a
}

var (
	owner    = mustAccount("eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2")
	stranger = mustAccount("fZzH7BaVcqY7R2LtmvfEZGRPWJDstUaETkSPY8tRyAaxoftYMj")
)

func TestWithdraw(t *testing.T) {
	setup(t)
	defer teardown(t)

	tr, err := treasury.New(logger.New("testing"), owner)
	if !assert.Nil(t, err, "new") {
		return
	}
	assert.True(t, owner.Equal(tr.Owner()), "owner")
	assert.Equal(t, uint64(0), tr.Balance(), "initial balance")

	balance, err := tr.Deposit(40)
	assert.Nil(t, err, "deposit")
	assert.Equal(t, uint64(40), balance, "balance after deposit")
	balance, _ = tr.Deposit(2)
	assert.Equal(t, uint64(42), balance, "balance after second deposit")

	amount, err := tr.Withdraw(stranger)
	assert.Equal(t, fault.Unauthorised, err, "stranger withdraw")
	assert.True(t, fault.IsErrAuthorisation(err), "error class")
	assert.Equal(t, uint64(0), amount, "stranger amount")
	assert.Equal(t, uint64(42), tr.Balance(), "balance after refused withdraw")

	amount, err = tr.Withdraw(nil)
	assert.Equal(t, fault.Unauthorised, err, "nil caller")

	amount, err = tr.Withdraw(owner)
	assert.Nil(t, err, "owner withdraw")
	assert.Equal(t, uint64(42), amount, "owner amount")
	assert.Equal(t, uint64(0), tr.Balance(), "balance after withdraw")

	amount, err = tr.Withdraw(owner)
	assert.Nil(t, err, "empty withdraw")
	assert.Equal(t, uint64(0), amount, "empty amount")
}

func TestDepositLimits(t *testing.T) {
	setup(t)
	defer teardown(t)

	tr, _ := treasury.New(logger.New("testing"), owner)

	_, err := tr.Deposit(0)
	assert.Equal(t, fault.InvalidCount, err, "zero deposit")

	_, err = tr.Deposit(^uint64(0))
	assert.Nil(t, err, "maximum deposit")
	_, err = tr.Deposit(1)
	assert.Equal(t, fault.InvalidCount, err, "overflow")
	assert.Equal(t, ^uint64(0), tr.Balance(), "balance after overflow")
}

func TestOwnerImmutable(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := treasury.New(logger.New("testing"), nil)
	assert.Equal(t, fault.ConfigurationOwnerBlank, err, "blank owner")

	tr, err := treasury.New(logger.New("testing"), owner)
	assert.Nil(t, err, "first open")
	_, _ = tr.Deposit(5)

	_, err = treasury.New(logger.New("testing"), stranger)
	assert.Equal(t, fault.OwnerMismatch, err, "changed owner")

	tr, err = treasury.New(logger.New("testing"), owner)
	assert.Nil(t, err, "reopen")
	assert.Equal(t, uint64(5), tr.Balance(), "balance kept")
}
