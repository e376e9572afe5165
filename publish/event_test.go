// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/registry"
)

const auditorText = "fZzH7BaVcqY7R2LtmvfEZGRPWJDstUaETkSPY8tRyAaxoftYMj"

func packedEntry(t *testing.T) (contenthash.ContentHash, []byte) {
	auditor, err := account.FromBase58(auditorText)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	entry := &auditrecord.Entry{
		Rating:    4,
		Summary:   "Good",
		Auditor:   auditor,
		Timestamp: 1000,
	}
	packed, err := entry.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return contenthash.New([]byte("contract")), packed
}

func TestFrames(t *testing.T) {
	hash, packed := packedEntry(t)

	fs, err := frames(registry.NotificationCommand, [][]byte{hash[:], packed})
	if !assert.Nil(t, err, "frames") {
		return
	}
	if !assert.Equal(t, 2, len(fs), "frame count") {
		return
	}

	assert.Equal(t, HashTopic+hash.String(), fs[0].topic, "hash topic")
	assert.Equal(t, AuditorTopic+auditorText, fs[1].topic, "auditor topic")
	assert.Equal(t, fs[0].body, fs[1].body, "same body")

	var body map[string]interface{}
	err = json.Unmarshal(fs[0].body, &body)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, hash.String(), body["hash"], "hash")
	assert.Equal(t, float64(4), body["rating"], "rating")
	assert.Equal(t, "Good", body["summary"], "summary")
	assert.Equal(t, auditorText, body["auditor"], "auditor")
	assert.Equal(t, float64(1000), body["timestamp"], "timestamp")
}

func TestFramesRejects(t *testing.T) {
	hash, packed := packedEntry(t)

	_, err := frames("block", [][]byte{hash[:], packed})
	assert.Equal(t, fault.MissingParameters, err, "wrong command")

	_, err = frames(registry.NotificationCommand, [][]byte{hash[:]})
	assert.Equal(t, fault.MissingParameters, err, "missing entry")

	_, err = frames(registry.NotificationCommand, [][]byte{hash[:5], packed})
	assert.Equal(t, fault.InvalidContentHash, err, "short hash")

	_, err = frames(registry.NotificationCommand, [][]byte{hash[:], packed[:3]})
	assert.Equal(t, fault.PacketTruncated, err, "truncated entry")
}
