// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned value that can be changed concurrently
//
// must be 64 bit aligned, so place first in any enclosing struct
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// TryIncrement - add 1 only if the result does not exceed limit
//
// returns the new value and true on success
func (ic *Counter) TryIncrement(limit uint64) (uint64, bool) {
	for {
		current := atomic.LoadUint64((*uint64)(ic))
		if current >= limit {
			return current, false
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), current, current+1) {
			return current + 1, true
		}
	}
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == atomic.LoadUint64((*uint64)(ic))
}
