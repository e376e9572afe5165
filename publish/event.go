// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/registry"
)

// topic prefixes
const (
	HashTopic    = "hash:"
	AuditorTopic = "auditor:"
)

// Event - body of a published registration, field order matches the
// notification order
type Event struct {
	Hash      contenthash.ContentHash `json:"hash"`
	Rating    uint8                   `json:"rating"`
	Summary   string                  `json:"summary"`
	Auditor   *account.Account        `json:"auditor"`
	Timestamp uint64                  `json:"timestamp"`
}

// frame - a topic and body pair ready to send
type frame struct {
	topic string
	body  []byte
}

// decode a bus message into the frames to publish
func frames(command string, parameters [][]byte) ([]frame, error) {
	if registry.NotificationCommand != command || 2 != len(parameters) {
		return nil, fault.MissingParameters
	}

	e := Event{}
	if err := contenthash.FromBytes(&e.Hash, parameters[0]); nil != err {
		return nil, err
	}

	entry, err := auditrecord.Packed(parameters[1]).Unpack()
	if nil != err {
		return nil, err
	}
	e.Rating = entry.Rating
	e.Summary = entry.Summary
	e.Auditor = entry.Auditor
	e.Timestamp = entry.Timestamp

	body, err := json.Marshal(e)
	if nil != err {
		return nil, err
	}

	return []frame{
		{topic: HashTopic + e.Hash.String(), body: body},
		{topic: AuditorTopic + e.Auditor.String(), body: body},
	}, nil
}
