// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/storage"
)

// ledger key: hash ++ count
func ledgerKey(hash contenthash.ContentHash, n uint64) []byte {
	key := make([]byte, 0, contenthash.Length+8)
	key = append(key, hash[:]...)
	return append(key, storage.NToBytes(n)...)
}

// append an entry, returns its position in the ledger
func appendLedger(trx storage.Transaction, hash contenthash.ContentHash, packed auditrecord.Packed) uint64 {
	n, _ := trx.GetN(storage.Pool.LedgerCount, hash[:])

	trx.Put(storage.Pool.Ledger, ledgerKey(hash, n), packed)
	trx.PutN(storage.Pool.LedgerCount, hash[:], n+1)

	return n
}

// number of audits of a hash
func ledgerLength(hash contenthash.ContentHash) uint64 {
	n, _ := storage.Pool.LedgerCount.GetN(hash[:])
	return n
}

// one entry of a ledger
func ledgerEntry(hash contenthash.ContentHash, n uint64) *auditrecord.Entry {
	packed := storage.Pool.Ledger.Get(ledgerKey(hash, n))
	if nil == packed {
		logger.Panicf("registry: missing ledger entry: %s[%d]", hash, n)
	}
	entry, err := auditrecord.Packed(packed).Unpack()
	if nil != err {
		logger.Panicf("registry: ledger entry: %s[%d]  unpack error: %s", hash, n, err)
	}
	return entry
}

// every entry of a ledger in submission order
func ledgerEntries(hash contenthash.ContentHash) []auditrecord.Entry {
	n := ledgerLength(hash)
	entries := make([]auditrecord.Entry, 0, n)
	if 0 == n {
		return entries
	}

	elements, err := storage.Pool.Ledger.NewFetchCursor().Within(hash[:]).Fetch(int(n))
	logger.PanicIfError("registry: ledger fetch", err)

	if uint64(len(elements)) != n {
		logger.Panicf("registry: ledger: %s  count: %d  entries: %d", hash, n, len(elements))
	}

	for i, e := range elements {
		entry, err := auditrecord.Packed(e.Value).Unpack()
		if nil != err {
			logger.Panicf("registry: ledger entry: %s[%d]  unpack error: %s", hash, i, err)
		}
		entries = append(entries, *entry)
	}
	return entries
}
