// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auditrecord

import (
	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/util"
)

// Packed - binary form of an entry or request
type Packed []byte

// maximum size of a packed account
const maximumAccountLength = 64

// Pack - binary form of an entry
func (entry *Entry) Pack() (Packed, error) {
	if err := entry.Validate(); nil != err {
		return nil, err
	}

	buffer := util.ToVarint64(uint64(entry.Rating))
	buffer = appendString(buffer, entry.Summary)
	buffer = appendAccount(buffer, entry.Auditor)
	buffer = util.AppendVarint64(buffer, entry.Timestamp)
	return buffer, nil
}

// Unpack - turn a packed entry back into an entry
//
// the whole buffer must be consumed
func (record Packed) Unpack() (entry *Entry, e error) {

	defer func() {
		if r := recover(); nil != r {
			entry = nil
			e = fault.PacketTruncated
		}
	}()

	rating, n := util.FromVarint64(record)
	if 0 == n {
		return nil, fault.PacketTruncated
	}
	if rating > MaximumRating {
		return nil, fault.RatingOutOfRange
	}

	summaryLength, summaryOffset := util.FromVarint64(record[n:])
	if 0 == summaryOffset {
		return nil, fault.PacketTruncated
	}
	if 0 == summaryLength {
		return nil, fault.SummaryEmpty
	}
	if summaryLength > MaximumSummaryLength {
		return nil, fault.SummaryTooLong
	}
	n += summaryOffset
	if n+int(summaryLength) > len(record) {
		return nil, fault.PacketTruncated
	}
	summary := string(record[n : n+int(summaryLength)])
	n += int(summaryLength)

	accountLength, accountOffset := util.ClippedVarint64(record[n:], 1, maximumAccountLength)
	if 0 == accountOffset || n+accountOffset+accountLength > len(record) {
		return nil, fault.PacketTruncated
	}
	n += accountOffset
	auditor, err := account.FromBytes(record[n : n+accountLength])
	if nil != err {
		return nil, err
	}
	n += accountLength

	timestamp, timestampLength := util.FromVarint64(record[n:])
	if 0 == timestampLength {
		return nil, fault.PacketTruncated
	}
	n += timestampLength

	if n != len(record) {
		return nil, fault.PacketTrailingData
	}

	entry = &Entry{
		Rating:    uint8(rating),
		Summary:   summary,
		Auditor:   auditor,
		Timestamp: timestamp,
	}
	return entry, nil
}

// append a length prefixed string
func appendString(buffer []byte, s string) []byte {
	buffer = util.AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append a length prefixed byte slice
func appendBytes(buffer []byte, data []byte) []byte {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append a length prefixed account
func appendAccount(buffer []byte, a *account.Account) []byte {
	return appendBytes(buffer, a.Bytes())
}
