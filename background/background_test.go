// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auditd/background"
)

// drains its input until shutdown, then records that it finished
type drain struct {
	input    chan int
	total    int
	finished bool
}

func (d *drain) Run(args interface{}, shutdown <-chan struct{}) {
	multiplier := args.(int)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case n := <-d.input:
			d.total += n * multiplier
		}
	}

	time.Sleep(5 * time.Millisecond) // Stop must wait for this
	d.finished = true
}

func TestStartStop(t *testing.T) {

	d1 := &drain{input: make(chan int)}
	d2 := &drain{input: make(chan int)}

	p := background.Start(background.Processes{d1, d2}, 3)

	for i := 1; i <= 4; i += 1 {
		d1.input <- i
		d2.input <- 10 * i
	}

	p.Stop()

	assert.True(t, d1.finished, "first process not finished")
	assert.True(t, d2.finished, "second process not finished")
	assert.Equal(t, 30, d1.total, "first total")
	assert.Equal(t, 300, d2.total, "second total")

	// second stop is harmless
	p.Stop()
}

func TestStopEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
