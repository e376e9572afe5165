// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auditrecord

import (
	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/fault"
)

// limits on entry fields
const (
	MaximumRating        = 5
	MaximumSummaryLength = 500 // bytes
)

// Entry - one submitted audit, never changed after creation
type Entry struct {
	Rating    uint8            `json:"rating"`
	Summary   string           `json:"summary"`
	Auditor   *account.Account `json:"auditor"`
	Timestamp uint64           `json:"timestamp"`
}

// Validate - check the caller supplied fields of an entry
//
// rating is checked first so a request failing both reports the rating
func Validate(rating uint8, summary string) error {
	if rating > MaximumRating {
		return fault.RatingOutOfRange
	}
	if 0 == len(summary) {
		return fault.SummaryEmpty
	}
	if len(summary) > MaximumSummaryLength {
		return fault.SummaryTooLong
	}
	return nil
}

// Validate - check a complete entry
func (entry *Entry) Validate() error {
	if nil == entry.Auditor {
		return fault.MissingParameters
	}
	return Validate(entry.Rating, entry.Summary)
}
