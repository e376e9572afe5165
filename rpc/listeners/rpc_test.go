// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/counter"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/rpc/certificate"
	"github.com/bitmark-inc/auditd/rpc/fixtures"
	"github.com/bitmark-inc/auditd/rpc/listeners"
	"github.com/bitmark-inc/auditd/util"
)

// Echo - minimal service for round trips
type Echo struct{}

// EchoArguments - text to send back
type EchoArguments struct {
	Text string
}

// Say - reply with the arguments
func (Echo) Say(arguments *EchoArguments, reply *string) error {
	*reply = arguments.Text
	return nil
}

func startRPC(t *testing.T, maximum uint64, count *counter.Counter) (string, listeners.Listener) {
	log := logger.New(fixtures.LogCategory)

	s := rpc.NewServer()
	if err := s.Register(Echo{}); nil != err {
		t.Fatalf("register error: %s", err)
	}

	tlsConfig, fingerprint, err := certificate.Get(log, "test", fixtures.Certificate(), fixtures.Key())
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}

	address := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	l, err := listeners.NewRPC(
		&listeners.RPCConfiguration{
			MaximumConnections: maximum,
			Listen:             []string{address},
		},
		log,
		count,
		s,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		t.Fatalf("NewRPC error: %s", err)
	}

	if err := l.Serve(); nil != err {
		t.Fatalf("serve error: %s", err)
	}
	return address, l
}

func dialRPC(t *testing.T, address string) *rpc.Client {
	conn, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	return jsonrpc.NewClient(conn)
}

func TestRPCRoundTrip(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	address, l := startRPC(t, 5, &count)
	defer l.Stop()

	client := dialRPC(t, address)
	defer client.Close()

	var reply string
	err := client.Call("Echo.Say", &EchoArguments{Text: "audit"}, &reply)
	assert.Nil(t, err, "wrong call error")
	assert.Equal(t, "audit", reply, "wrong reply")
	assert.Equal(t, uint64(1), count.Uint64(), "connection not counted")
}

func TestRPCConnectionLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	address, l := startRPC(t, 1, &count)
	defer l.Stop()

	first := dialRPC(t, address)
	defer first.Close()

	var reply string
	err := first.Call("Echo.Say", &EchoArguments{Text: "one"}, &reply)
	assert.Nil(t, err, "first connection refused")

	// the server closes connections beyond the limit
	conn, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		return
	}
	second := jsonrpc.NewClient(conn)
	defer second.Close()

	err = second.Call("Echo.Say", &EchoArguments{Text: "two"}, &reply)
	assert.NotNil(t, err, "connection over the limit was served")
}

func TestRPCInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	items := []struct {
		maximum uint64
		listen  []string
		err     error
	}{
		{0, []string{"127.0.0.1:2130"}, fault.MissingParameters},
		{1, []string{}, fault.MissingParameters},
		{1, nil, fault.MissingParameters},
		{1, []string{"300.1.2.3:2130"}, util.ErrInvalidIPAddress},
		{1, []string{"127.0.0.1:0"}, util.ErrInvalidPortNumber},
	}

	for i, item := range items {
		count := counter.Counter(0)
		_, err := listeners.NewRPC(
			&listeners.RPCConfiguration{
				MaximumConnections: item.maximum,
				Listen:             item.listen,
			},
			logger.New(fixtures.LogCategory),
			&count,
			rpc.NewServer(),
			&tls.Config{},
			[32]byte{},
		)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}
