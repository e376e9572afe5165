// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auditd/counter"
)

func TestCounter(t *testing.T) {

	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "after increment")

	for i := 0; i < 5; i += 1 {
		c.Decrement()
	}
	assert.True(t, c.IsZero(), "after decrement")
}

func TestTryIncrement(t *testing.T) {

	var c counter.Counter

	n, ok := c.TryIncrement(2)
	assert.True(t, ok, "first")
	assert.Equal(t, uint64(1), n, "first value")

	n, ok = c.TryIncrement(2)
	assert.True(t, ok, "second")
	assert.Equal(t, uint64(2), n, "second value")

	n, ok = c.TryIncrement(2)
	assert.False(t, ok, "limit exceeded")
	assert.Equal(t, uint64(2), n, "value at limit")
}

func TestTryIncrementConcurrent(t *testing.T) {

	const limit = 50

	var c counter.Counter
	var accepted counter.Counter

	var wg sync.WaitGroup
	for i := 0; i < 200; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := c.TryIncrement(limit); ok {
				accepted.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(limit), c.Uint64(), "final value")
	assert.Equal(t, uint64(limit), accepted.Uint64(), "accepted count")
}
