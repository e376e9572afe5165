// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"
	"time"

	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/storage"
)

// Clock - source of registration timestamps
type Clock interface {
	Now() uint64
}

// never returns a value lower than a previous one
type monotonicClock struct {
	sync.Mutex
	last uint64
	now  func() time.Time
}

// NewClock - UNIX seconds that never go backwards
//
// floor is the lowest value ever returned, e.g. the last stored timestamp
func NewClock(floor uint64) Clock {
	return &monotonicClock{
		last: floor,
		now:  time.Now,
	}
}

func (c *monotonicClock) Now() uint64 {
	c.Lock()
	defer c.Unlock()

	t := c.now().Unix()
	if t > 0 && uint64(t) > c.last {
		c.last = uint64(t)
	}
	return c.last
}

// LastTimestamp - highest timestamp of any stored audit, 0 if none
func LastTimestamp() (uint64, error) {
	last := uint64(0)
	err := storage.Pool.Ledger.NewFetchCursor().Map(func(key []byte, value []byte) error {
		entry, err := auditrecord.Packed(value).Unpack()
		if nil != err {
			return err
		}
		if entry.Timestamp > last {
			last = entry.Timestamp
		}
		return nil
	})
	if nil != err {
		return 0, err
	}
	return last, nil
}
