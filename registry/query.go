// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/fault"
)

// TotalContracts - number of distinct hashes with at least one audit
func (r *registry) TotalContracts() uint64 {
	r.RLock()
	defer r.RUnlock()
	return hashTotal()
}

// AllAudits - latest audit of each hash, paged over first audit order
//
// start must address an indexed hash; the page is clamped to the end
func (r *registry) AllAudits(start uint64, limit uint64) ([]Row, error) {
	r.RLock()
	defer r.RUnlock()

	total := hashTotal()
	if start >= total {
		return nil, fault.IndexOutOfBounds
	}

	actual := total - start
	if limit < actual {
		actual = limit
	}

	rows := make([]Row, 0, actual)
	for _, hash := range hashesFrom(start, actual) {
		n := ledgerLength(hash)
		if 0 == n {
			continue
		}
		rows = append(rows, Row{
			Hash:  hash,
			Entry: *ledgerEntry(hash, n-1),
		})
	}
	return rows, nil
}

// ContractAudits - every audit of a hash in submission order
//
// an unknown hash gives an empty result
func (r *registry) ContractAudits(hash contenthash.ContentHash) ([]auditrecord.Entry, error) {
	r.RLock()
	defer r.RUnlock()
	return ledgerEntries(hash), nil
}

// AuditorHistory - distinct hashes audited by an auditor in first audit order
//
// an auditor with no audits gives an empty result
func (r *registry) AuditorHistory(auditor *account.Account) ([]contenthash.ContentHash, error) {
	if nil == auditor {
		return nil, fault.MissingParameters
	}

	r.RLock()
	defer r.RUnlock()
	return auditorHashes(auditor), nil
}

// LatestAudit - most recently submitted audit of a hash
func (r *registry) LatestAudit(hash contenthash.ContentHash) (*auditrecord.Entry, error) {
	r.RLock()
	defer r.RUnlock()

	n := ledgerLength(hash)
	if 0 == n {
		return nil, fault.AuditNotFound
	}
	return ledgerEntry(hash, n-1), nil
}
