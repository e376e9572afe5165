// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/storage"
)

// key of the single hash total record
var totalKey = []byte("total")

// add a hash if not already present, true if it was added
func indexHash(trx storage.Transaction, hash contenthash.ContentHash) bool {
	if trx.Has(storage.Pool.HashPosition, hash[:]) {
		return false
	}

	total, _ := trx.GetN(storage.Pool.HashTotal, totalKey)

	trx.Put(storage.Pool.HashIndex, storage.NToBytes(total), hash[:])
	trx.PutN(storage.Pool.HashPosition, hash[:], total)
	trx.PutN(storage.Pool.HashTotal, totalKey, total+1)

	return true
}

// number of indexed hashes
func hashTotal() uint64 {
	total, _ := storage.Pool.HashTotal.GetN(totalKey)
	return total
}

// up to count hashes starting at a position
func hashesFrom(start uint64, count uint64) []contenthash.ContentHash {
	hashes := make([]contenthash.ContentHash, 0, count)
	if 0 == count {
		return hashes
	}

	elements, err := storage.Pool.HashIndex.NewFetchCursor().Seek(storage.NToBytes(start)).Fetch(int(count))
	logger.PanicIfError("registry: hash index fetch", err)

	for _, e := range elements {
		var hash contenthash.ContentHash
		err := contenthash.FromBytes(&hash, e.Value)
		if nil != err {
			logger.Panicf("registry: hash index: %x  value: %x  error: %s", e.Key, e.Value, err)
		}
		hashes = append(hashes, hash)
	}
	return hashes
}
