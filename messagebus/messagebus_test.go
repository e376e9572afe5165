// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auditd/messagebus"
)

func TestBroadcast(t *testing.T) {
	queue := &messagebus.BroadcastQueue{}
	defer queue.Release()

	// no listeners: message is dropped silently
	queue.Send("nobody")

	items := []messagebus.Message{
		{Command: "c1", Parameters: [][]byte{[]byte("p1")}},
		{Command: "c2", Parameters: [][]byte{[]byte("p2"), []byte("p3")}},
		{Command: "c3", Parameters: [][]byte{}},
	}

	c1 := queue.Chan(10)
	c2 := queue.Chan(10)
	assert.Equal(t, 2, queue.Listeners(), "listener count")

	for _, item := range items {
		queue.Send(item.Command, item.Parameters...)
	}

	for _, c := range []<-chan messagebus.Message{c1, c2} {
		for i, item := range items {
			received := <-c
			assert.Equal(t, item.Command, received.Command, "%d: command", i)
			assert.Equal(t, item.Parameters, received.Parameters, "%d: parameters", i)
		}
	}
}

func TestBroadcastCopiesParameters(t *testing.T) {
	queue := &messagebus.BroadcastQueue{}
	defer queue.Release()

	c := queue.Chan(1)

	buffer := []byte("original")
	queue.Send("copy", buffer)
	copy(buffer, "modified")

	received := <-c
	assert.Equal(t, []byte("original"), received.Parameters[0], "parameter shared with sender")
}

func TestBroadcastFullQueue(t *testing.T) {
	queue := &messagebus.BroadcastQueue{}
	defer queue.Release()

	c := queue.Chan(2)
	queue.Send("m1")
	queue.Send("m2")
	queue.Send("m3") // must not block

	assert.Equal(t, uint64(1), queue.Dropped(), "dropped count")
	assert.Equal(t, "m1", (<-c).Command, "first message")
	assert.Equal(t, "m2", (<-c).Command, "second message")
}

func TestRelease(t *testing.T) {
	queue := &messagebus.BroadcastQueue{}
	c := queue.Chan(0)
	queue.Release()

	_, ok := <-c
	assert.False(t, ok, "channel not closed")
	assert.Equal(t, 0, queue.Listeners(), "listeners remain")

	queue.Send("after release")
}
