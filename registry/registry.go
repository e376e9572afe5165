// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/storage"
)

// NotificationCommand - command of the message sent after each registration
//
// parameters: hash bytes, packed entry
const NotificationCommand = "audit"

// Context - identity and time supplied by the host for a registration
type Context struct {
	Auditor   *account.Account
	Timestamp uint64
}

// Row - one line of the paginated listing
type Row struct {
	Hash  contenthash.ContentHash `json:"hash"`
	Entry auditrecord.Entry       `json:"entry"`
}

// Sender - receives registration notifications
type Sender interface {
	Send(command string, parameters ...[]byte)
}

// Registry - the audit registry operations
type Registry interface {
	Register(Context, contenthash.ContentHash, uint8, string) error
	TotalContracts() uint64
	AllAudits(uint64, uint64) ([]Row, error)
	ContractAudits(contenthash.ContentHash) ([]auditrecord.Entry, error)
	AuditorHistory(*account.Account) ([]contenthash.ContentHash, error)
	LatestAudit(contenthash.ContentHash) (*auditrecord.Entry, error)
}

// a single writer holds the lock exclusively for the whole registration,
// readers share it so a multi-key read never sees half a registration
type registry struct {
	sync.RWMutex
	log    *logger.L
	sender Sender
}

// New - create a registry over the storage pools
//
// sender may be nil when no notifications are wanted
func New(log *logger.L, sender Sender) Registry {
	return &registry{
		log:    log,
		sender: sender,
	}
}

// Register - record an audit of a content hash
//
// validation failures leave every structure untouched
func (r *registry) Register(ctx Context, hash contenthash.ContentHash, rating uint8, summary string) error {

	err := auditrecord.Validate(rating, summary)
	if nil != err {
		return err
	}
	if nil == ctx.Auditor {
		return fault.MissingParameters
	}

	entry := auditrecord.Entry{
		Rating:    rating,
		Summary:   summary,
		Auditor:   ctx.Auditor,
		Timestamp: ctx.Timestamp,
	}
	packed, err := entry.Pack()
	if nil != err {
		return err
	}

	r.Lock()
	defer r.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	// a panic on corrupt storage must not leave the batch held
	done := false
	defer func() {
		if !done {
			trx.Abort()
		}
	}()

	position := appendLedger(trx, hash, packed)
	newHash := indexHash(trx, hash)
	newForAuditor := indexAuditor(trx, ctx.Auditor, hash)

	err = trx.Commit()
	done = true
	if nil != err {
		r.log.Errorf("register: hash: %s  commit error: %s", hash, err)
		return err
	}

	r.log.Infof("register: hash: %s  auditor: %s  rating: %d  position: %d  new hash: %t  new for auditor: %t",
		hash, ctx.Auditor, rating, position, newHash, newForAuditor)

	// only durable state is announced
	if nil != r.sender {
		r.sender.Send(NotificationCommand, hash[:], packed)
	}

	return nil
}
