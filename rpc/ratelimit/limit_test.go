// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)

	for i := 0; i < 5; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "%d: limit", i)
	}
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 0, 100), "zero count")
	assert.Nil(t, ratelimit.LimitN(limiter, 50, 100), "within maximum")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 101, 100), "above maximum")
}

func TestLimitBurstExceeded(t *testing.T) {
	limiter := rate.NewLimiter(10, 5)

	// a reservation larger than the burst can never be satisfied
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(limiter, 6, 100), "burst")
}
