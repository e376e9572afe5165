// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/chain"
	"github.com/bitmark-inc/auditd/command/audit-cli/rpccalls"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/counter"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/mode"
	"github.com/bitmark-inc/auditd/registry"
	"github.com/bitmark-inc/auditd/rpc/certificate"
	"github.com/bitmark-inc/auditd/rpc/fixtures"
	"github.com/bitmark-inc/auditd/rpc/listeners"
	"github.com/bitmark-inc/auditd/rpc/nonce"
	"github.com/bitmark-inc/auditd/rpc/server"
	"github.com/bitmark-inc/auditd/treasury"
)

var (
	connect string
	owner   *account.PrivateKey
)

func TestMain(m *testing.M) {
	if err := fixtures.SetupTestDatabase(); nil != err {
		fmt.Printf("setup error: %s\n", err)
		os.Exit(1)
	}

	rc := run(m)

	fixtures.TeardownTestDatabase()
	os.Exit(rc)
}

func run(m *testing.M) int {
	log := logger.New(fixtures.LogCategory)

	if err := mode.Initialise(chain.Testing); nil != err {
		fmt.Printf("mode error: %s\n", err)
		return 1
	}
	defer mode.Finalise()
	mode.Set(mode.Normal)

	owner = fixtures.NewPrivateKey()
	t, err := treasury.New(log, owner.Account())
	if nil != err {
		fmt.Printf("treasury error: %s\n", err)
		return 1
	}

	c := counter.Counter(0)
	s := server.Create(log, "1.0", &c, server.Services{
		Registry: registry.New(log, nil),
		Treasury: t,
		Nonces:   nonce.New(log),
		Clock:    registry.NewClock(0),
		PublishKey: func() []byte {
			return []byte{0x01, 0x02}
		},
	})

	tlsConfig, fingerprint, err := certificate.Get(log, "test", fixtures.Certificate(), fixtures.Key())
	if nil != err {
		fmt.Printf("certificate error: %s\n", err)
		return 1
	}

	connect = fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000) // 30,000 - 60,000
	l, err := listeners.NewRPC(
		&listeners.RPCConfiguration{
			MaximumConnections: 10,
			Listen:             []string{connect},
		},
		log,
		&c,
		s,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		fmt.Printf("listener error: %s\n", err)
		return 1
	}
	if err := l.Serve(); nil != err {
		fmt.Printf("serve error: %s\n", err)
		return 1
	}
	defer l.Stop()

	return m.Run()
}

func newClient(t *testing.T) *rpccalls.Client {
	client, err := rpccalls.NewClient(true, connect, true, ioutil.Discard)
	if nil != err {
		t.Fatalf("connect error: %s", err)
	}
	return client
}

func TestRegisterAndQuery(t *testing.T) {
	client := newClient(t)
	defer client.Close()

	auditor := fixtures.NewPrivateKey()
	hash := contenthash.New([]byte("contract source"))

	total, err := client.Total()
	if !assert.Nil(t, err, "wrong total error") {
		return
	}
	before := total.Count

	for i, rating := range []uint8{3, 5} {
		reply, err := client.Register(&rpccalls.RegisterData{
			Hash:    hash,
			Rating:  rating,
			Summary: fmt.Sprintf("review %d", i),
			Auditor: auditor,
		})
		if !assert.Nil(t, err, "wrong register error") {
			return
		}
		assert.Equal(t, hash, reply.Hash, "wrong reply hash")
	}

	total, err = client.Total()
	assert.Nil(t, err, "wrong total error")
	assert.Equal(t, before+1, total.Count, "hash counted more than once")

	contract, err := client.Contract(hash)
	assert.Nil(t, err, "wrong contract error")
	if assert.Equal(t, 2, len(contract.Audits), "wrong audit count") {
		assert.Equal(t, uint8(3), contract.Audits[0].Rating, "wrong first rating")
		assert.Equal(t, uint8(5), contract.Audits[1].Rating, "wrong second rating")
	}

	latest, err := client.Latest(hash)
	assert.Nil(t, err, "wrong latest error")
	assert.Equal(t, "review 1", latest.Audit.Summary, "wrong latest summary")
	assert.True(t, auditor.Account().Equal(latest.Audit.Auditor), "wrong latest auditor")

	history, err := client.Auditor(auditor.Account())
	assert.Nil(t, err, "wrong auditor error")
	assert.Equal(t, []contenthash.ContentHash{hash}, history.Hashes, "wrong auditor history")

	list, err := client.List(before, 10)
	assert.Nil(t, err, "wrong list error")
	if assert.Equal(t, 1, len(list.Audits), "wrong list length") {
		assert.Equal(t, hash, list.Audits[0].Hash, "wrong listed hash")
	}

	_, err = client.Latest(contenthash.New([]byte("never audited")))
	assert.EqualError(t, err, fault.AuditNotFound.Error(), "wrong latest error")
}

func TestRegisterInvalid(t *testing.T) {
	client := newClient(t)
	defer client.Close()

	_, err := client.Register(&rpccalls.RegisterData{
		Hash:    contenthash.New([]byte("x")),
		Rating:  6,
		Summary: "too many stars",
		Auditor: fixtures.NewPrivateKey(),
	})
	assert.EqualError(t, err, fault.RatingOutOfRange.Error(), "wrong error")

	live, err := account.NewPrivateKey(false)
	if nil != err {
		t.Fatalf("new key error: %s", err)
	}
	_, err = client.Register(&rpccalls.RegisterData{
		Hash:    contenthash.New([]byte("x")),
		Rating:  1,
		Summary: "wrong network",
		Auditor: live,
	})
	assert.Equal(t, fault.NotTestingAccount, err, "live key accepted")
}

func TestTreasury(t *testing.T) {
	client := newClient(t)
	defer client.Close()

	deposit, err := client.Deposit(250)
	if !assert.Nil(t, err, "wrong deposit error") {
		return
	}
	assert.Equal(t, uint64(250), deposit.Balance, "wrong balance")

	o, err := client.Owner()
	assert.Nil(t, err, "wrong owner error")
	assert.True(t, owner.Account().Equal(o.Owner), "wrong owner")
	assert.Equal(t, uint64(250), o.Balance, "wrong owner balance")

	_, err = client.Withdraw(fixtures.NewPrivateKey())
	assert.EqualError(t, err, fault.Unauthorised.Error(), "stranger withdrew")

	withdraw, err := client.Withdraw(owner)
	assert.Nil(t, err, "wrong withdraw error")
	assert.Equal(t, uint64(250), withdraw.Amount, "wrong withdrawn amount")

	o, err = client.Owner()
	assert.Nil(t, err, "wrong owner error")
	assert.Equal(t, uint64(0), o.Balance, "balance not emptied")
}

func TestGetInfo(t *testing.T) {
	client := newClient(t)
	defer client.Close()

	info, err := client.GetInfo()
	if !assert.Nil(t, err, "wrong info error") {
		return
	}
	assert.Equal(t, chain.Testing, info.Chain, "wrong chain")
	assert.Equal(t, "1.0", info.Version, "wrong version")
	assert.Equal(t, "0102", info.PublishKey, "wrong publish key")
}
