// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/chain"
	"github.com/bitmark-inc/auditd/counter"
	"github.com/bitmark-inc/auditd/mode"
	"github.com/bitmark-inc/auditd/rpc/fixtures"
	"github.com/bitmark-inc/auditd/rpc/mocks"
	"github.com/bitmark-inc/auditd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_ = mode.Initialise(chain.Testing)
	defer mode.Finalise()

	r := mocks.NewMockRegistry(ctl)

	now := time.Now()
	c := counter.Counter(5)

	n := node.New(
		logger.New(fixtures.LogCategory),
		r,
		now,
		"100",
		&c,
		func() []byte { return []byte{0xab, 0xcd} },
	)

	r.EXPECT().TotalContracts().Return(uint64(12)).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, mode.Starting.String(), reply.Mode, "wrong mode")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, uint64(12), reply.TotalContracts, "wrong total")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
	assert.Equal(t, "abcd", reply.PublishKey, "wrong public key")
}

func TestNodeInfoWithoutPublisher(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_ = mode.Initialise(chain.Local)
	defer mode.Finalise()

	r := mocks.NewMockRegistry(ctl)
	c := counter.Counter(0)

	n := node.New(logger.New(fixtures.LogCategory), r, time.Now(), "1", &c, nil)

	r.EXPECT().TotalContracts().Return(uint64(0)).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Local, reply.Chain, "wrong chain")
	assert.Equal(t, "", reply.PublishKey, "wrong empty public key")
}
