// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/storage"
)

const countLength = 8

// Check - verify that the stored structures agree with each other
//
// every problem is logged, the result is non-nil if any was found
func Check(log *logger.L) error {
	c := &checker{log: log}

	ledgers := c.checkLedgers()
	c.checkHashIndex(ledgers)
	c.checkAuditorIndex(ledgers)

	if 0 != c.problems {
		log.Errorf("check: %d problems found", c.problems)
		return fault.InconsistentIndex
	}
	log.Infof("check: %d hashes  ok", len(ledgers))
	return nil
}

type checker struct {
	log      *logger.L
	problems int
}

func (c *checker) fail(format string, arguments ...interface{}) {
	c.problems += 1
	c.log.Errorf(format, arguments...)
}

// ledger contents: hash → auditors of its entries (as key strings)
type ledgerSummary map[contenthash.ContentHash]map[string]struct{}

// every ledger is contiguous from zero, its length record matches and
// each entry unpacks
func (c *checker) checkLedgers() ledgerSummary {
	ledgers := make(ledgerSummary)
	counts := make(map[contenthash.ContentHash]uint64)

	err := storage.Pool.Ledger.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if contenthash.Length+countLength != len(key) {
			c.fail("ledger: invalid key: %x", key)
			return nil
		}
		var hash contenthash.ContentHash
		copy(hash[:], key[:contenthash.Length])
		n := binary.BigEndian.Uint64(key[contenthash.Length:])

		if n != counts[hash] {
			c.fail("ledger: %s  expected position: %d  actual: %d", hash, counts[hash], n)
		}
		counts[hash] = n + 1

		entry, err := auditrecord.Packed(value).Unpack()
		if nil != err {
			c.fail("ledger: %s[%d]  unpack error: %s", hash, n, err)
			return nil
		}
		if nil == ledgers[hash] {
			ledgers[hash] = make(map[string]struct{})
		}
		ledgers[hash][string(entry.Auditor.Bytes())] = struct{}{}
		return nil
	})
	if nil != err {
		c.fail("ledger: scan error: %s", err)
	}

	err = storage.Pool.LedgerCount.NewFetchCursor().Map(func(key []byte, value []byte) error {
		var hash contenthash.ContentHash
		if nil != contenthash.FromBytes(&hash, key) || countLength != len(value) {
			c.fail("ledger count: invalid record: %x → %x", key, value)
			return nil
		}
		n := binary.BigEndian.Uint64(value)
		if n != counts[hash] {
			c.fail("ledger count: %s  recorded: %d  entries: %d", hash, n, counts[hash])
		}
		delete(counts, hash)
		return nil
	})
	if nil != err {
		c.fail("ledger count: scan error: %s", err)
	}

	for hash, n := range counts {
		c.fail("ledger: %s  has %d entries but no count", hash, n)
	}

	return ledgers
}

// hash index holds each non-empty ledger exactly once in positions 0..total-1
func (c *checker) checkHashIndex(ledgers ledgerSummary) {
	seen := make(map[contenthash.ContentHash]uint64)
	expected := uint64(0)

	err := storage.Pool.HashIndex.NewFetchCursor().Map(func(key []byte, value []byte) error {
		var hash contenthash.ContentHash
		if countLength != len(key) || nil != contenthash.FromBytes(&hash, value) {
			c.fail("hash index: invalid record: %x → %x", key, value)
			return nil
		}
		position := binary.BigEndian.Uint64(key)
		if position != expected {
			c.fail("hash index: expected position: %d  actual: %d", expected, position)
		}
		expected = position + 1

		if p, ok := seen[hash]; ok {
			c.fail("hash index: %s  duplicate at: %d and %d", hash, p, position)
		}
		seen[hash] = position

		if _, ok := ledgers[hash]; !ok {
			c.fail("hash index: %s  at: %d  has an empty ledger", hash, position)
		}

		p, found := storage.Pool.HashPosition.GetN(hash[:])
		if !found || p != position {
			c.fail("hash index: %s  position: %d  presence record: %d (found: %t)", hash, position, p, found)
		}
		return nil
	})
	if nil != err {
		c.fail("hash index: scan error: %s", err)
	}

	for hash := range ledgers {
		if _, ok := seen[hash]; !ok {
			c.fail("hash index: %s  non-empty ledger not indexed", hash)
		}
	}

	presence := uint64(0)
	err = storage.Pool.HashPosition.NewFetchCursor().Map(func(key []byte, value []byte) error {
		presence += 1
		var hash contenthash.ContentHash
		if nil != contenthash.FromBytes(&hash, key) {
			c.fail("hash presence: invalid key: %x", key)
			return nil
		}
		if _, ok := seen[hash]; !ok {
			c.fail("hash presence: %s  not in the ordered index", hash)
		}
		return nil
	})
	if nil != err {
		c.fail("hash presence: scan error: %s", err)
	}

	total := hashTotal()
	if total != uint64(len(seen)) || total != presence {
		c.fail("hash index: total: %d  ordered: %d  presence: %d", total, len(seen), presence)
	}
}

// each auditor list is duplicate free, agrees with its presence set and
// next count, and lists exactly the hashes whose ledgers hold an entry
// by that auditor
func (c *checker) checkAuditorIndex(ledgers ledgerSummary) {

	// expected: auditor key → hashes
	expected := make(map[string]map[contenthash.ContentHash]struct{})
	for hash, auditors := range ledgers {
		for auditorKey := range auditors {
			if nil == expected[auditorKey] {
				expected[auditorKey] = make(map[contenthash.ContentHash]struct{})
			}
			expected[auditorKey][hash] = struct{}{}
		}
	}

	err := storage.Pool.AuditorNextCount.NewFetchCursor().Map(func(key []byte, value []byte) error {
		auditor, err := account.FromBytes(key)
		if nil != err || countLength != len(value) {
			c.fail("auditor count: invalid record: %x → %x", key, value)
			return nil
		}
		n := binary.BigEndian.Uint64(value)

		hashes := auditorHashes(auditor)
		if uint64(len(hashes)) != n {
			c.fail("auditor: %s  next count: %d  list length: %d", auditor, n, len(hashes))
		}

		want := expected[string(key)]
		seen := make(map[contenthash.ContentHash]struct{})
		for i, hash := range hashes {
			if _, ok := seen[hash]; ok {
				c.fail("auditor: %s  duplicate hash: %s", auditor, hash)
			}
			seen[hash] = struct{}{}

			if _, ok := want[hash]; !ok {
				c.fail("auditor: %s  hash: %s  has no entry by this auditor", auditor, hash)
			}

			presenceKey := append(append([]byte{}, key...), hash[:]...)
			p, found := storage.Pool.AuditorHashIndex.GetN(presenceKey)
			if !found || p != uint64(i) {
				c.fail("auditor: %s  hash: %s  position: %d  presence record: %d (found: %t)", auditor, hash, i, p, found)
			}
		}
		for hash := range want {
			if _, ok := seen[hash]; !ok {
				c.fail("auditor: %s  hash: %s  missing from history", auditor, hash)
			}
		}
		delete(expected, string(key))
		return nil
	})
	if nil != err {
		c.fail("auditor count: scan error: %s", err)
	}

	for auditorKey, hashes := range expected {
		c.fail("auditor: %x  has %d audited hashes but no history", []byte(auditorKey), len(hashes))
	}

	// every presence record belongs to a listed auditor hash
	err = storage.Pool.AuditorHashIndex.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if len(key) <= contenthash.Length {
			c.fail("auditor presence: invalid key: %x", key)
			return nil
		}
		split := len(key) - contenthash.Length
		n, found := storage.Pool.AuditorNextCount.GetN(key[:split])
		if !found {
			c.fail("auditor presence: %x  unknown auditor", key[:split])
			return nil
		}
		if countLength != len(value) || binary.BigEndian.Uint64(value) >= n {
			c.fail("auditor presence: %x  position: %x  beyond count: %d", key, value, n)
			return nil
		}
		listKey := append(append([]byte{}, key[:split]...), value...)
		if !bytes.Equal(storage.Pool.AuditorList.Get(listKey), key[split:]) {
			c.fail("auditor presence: %x  does not match list", key)
		}
		return nil
	})
	if nil != err {
		c.fail("auditor presence: scan error: %s", err)
	}
}
