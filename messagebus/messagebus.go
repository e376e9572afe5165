// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/auditd/counter"
)

// default listener queue size
const defaultQueueSize = 1000

// Message - a command with its binary parameters
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// BroadcastQueue - fan out to any number of listeners
type BroadcastQueue struct {
	dropped counter.Counter // first for 64 bit alignment
	sync.RWMutex
	out []chan Message
}

// Bus - the set of queues
var Bus = struct {
	Broadcast *BroadcastQueue // registration notifications
}{
	Broadcast: &BroadcastQueue{},
}

// Send - copy a message to every listener
//
// never blocks: a full listener queue drops the message
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {

	// copy so the caller may reuse its buffers
	p := make([][]byte, len(parameters))
	for i, parameter := range parameters {
		p[i] = append([]byte{}, parameter...)
	}

	m := Message{
		Command:    command,
		Parameters: p,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, out := range queue.out {
		select {
		case out <- m:
		default:
			queue.dropped.Increment()
		}
	}
}

// Chan - add a listener with the given queue size
//
// a size of zero or less selects the default
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.out = append(queue.out, c)
	queue.Unlock()

	return c
}

// Release - close every listener channel
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, out := range queue.out {
		close(out)
	}
	queue.out = nil
}

// Listeners - number of active listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.out)
}

// Dropped - number of messages lost to full listener queues
func (queue *BroadcastQueue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
