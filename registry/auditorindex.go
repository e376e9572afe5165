// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/storage"
)

// add a hash to an auditor's list if not already present, true if it was added
func indexAuditor(trx storage.Transaction, auditor *account.Account, hash contenthash.ContentHash) bool {
	auditorKey := auditor.Bytes()

	presenceKey := make([]byte, 0, len(auditorKey)+contenthash.Length)
	presenceKey = append(presenceKey, auditorKey...)
	presenceKey = append(presenceKey, hash[:]...)

	if trx.Has(storage.Pool.AuditorHashIndex, presenceKey) {
		return false
	}

	n, _ := trx.GetN(storage.Pool.AuditorNextCount, auditorKey)

	listKey := make([]byte, 0, len(auditorKey)+8)
	listKey = append(listKey, auditorKey...)
	listKey = append(listKey, storage.NToBytes(n)...)

	trx.Put(storage.Pool.AuditorList, listKey, hash[:])
	trx.PutN(storage.Pool.AuditorHashIndex, presenceKey, n)
	trx.PutN(storage.Pool.AuditorNextCount, auditorKey, n+1)

	return true
}

// hashes audited by an auditor in first audit order
func auditorHashes(auditor *account.Account) []contenthash.ContentHash {
	auditorKey := auditor.Bytes()

	n, _ := storage.Pool.AuditorNextCount.GetN(auditorKey)
	hashes := make([]contenthash.ContentHash, 0, n)
	if 0 == n {
		return hashes
	}

	elements, err := storage.Pool.AuditorList.NewFetchCursor().Within(auditorKey).Fetch(int(n))
	logger.PanicIfError("registry: auditor index fetch", err)

	for _, e := range elements {
		var hash contenthash.ContentHash
		err := contenthash.FromBytes(&hash, e.Value)
		if nil != err {
			logger.Panicf("registry: auditor index: %x  value: %x  error: %s", e.Key, e.Value, err)
		}
		hashes = append(hashes, hash)
	}
	return hashes
}
