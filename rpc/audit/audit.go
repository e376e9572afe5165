// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package audit

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/mode"
	"github.com/bitmark-inc/auditd/registry"
	"github.com/bitmark-inc/auditd/rpc/nonce"
	"github.com/bitmark-inc/auditd/rpc/ratelimit"
)

const (
	rateLimitAudit = 200
	rateBurstAudit = 100
)

// limit for count
const maximumAuditList = 100

// Audit - type for RPC calls
type Audit struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	Registry       registry.Registry
	Nonces         nonce.Nonces
	Clock          registry.Clock
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
}

// New - create the audit rpc service
func New(log *logger.L, reg registry.Registry, nonces nonce.Nonces, clock registry.Clock, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Audit {
	return &Audit{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitAudit, rateBurstAudit),
		Registry:       reg,
		Nonces:         nonces,
		Clock:          clock,
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
	}
}

// ---

// RegisterReply - result of a registration
type RegisterReply struct {
	Hash      contenthash.ContentHash `json:"hash"`
	Timestamp uint64                  `json:"timestamp,string"`
}

// Register - record a signed audit
//
// the signature proves the auditor, the nonce prevents replay and the
// timestamp is assigned here
func (audit *Audit) Register(arguments *auditrecord.RegisterRequest, reply *RegisterReply) error {

	if err := ratelimit.Limit(audit.Limiter); nil != err {
		return err
	}

	if !audit.IsNormalMode(mode.Normal) {
		return fault.NotAvailable
	}

	if nil == arguments || nil == arguments.Auditor {
		return fault.MissingParameters
	}

	if arguments.Auditor.IsTesting() != audit.IsTestingChain() {
		return fault.NotTestingAccount
	}

	if err := arguments.Verify(); nil != err {
		audit.Log.Debugf("register: auditor: %s  signature error: %s", arguments.Auditor, err)
		return err
	}

	// reject bad arguments before the nonce is used up
	if err := auditrecord.Validate(arguments.Rating, arguments.Summary); nil != err {
		return err
	}

	if err := audit.Nonces.Accept(arguments.Auditor, arguments.Nonce); nil != err {
		return err
	}

	ctx := registry.Context{
		Auditor:   arguments.Auditor,
		Timestamp: audit.Clock.Now(),
	}
	err := audit.Registry.Register(ctx, arguments.Hash, arguments.Rating, arguments.Summary)
	if nil != err {
		return err
	}

	reply.Hash = arguments.Hash
	reply.Timestamp = ctx.Timestamp

	return nil
}

// ---

// TotalArguments - empty arguments for total request
type TotalArguments struct{}

// TotalReply - number of distinct audited contracts
type TotalReply struct {
	Count uint64 `json:"count,string"`
}

// Total - number of distinct content hashes ever audited
func (audit *Audit) Total(_ *TotalArguments, reply *TotalReply) error {

	if err := ratelimit.Limit(audit.Limiter); nil != err {
		return err
	}

	reply.Count = audit.Registry.TotalContracts()
	return nil
}

// ---

// ListArguments - page selection over the global index
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count uint64 `json:"count"`
}

// ListReply - one page of latest audits
type ListReply struct {
	Audits    []registry.Row `json:"audits"`
	NextStart uint64         `json:"nextStart,string"`
}

// List - latest audit of each contract in first registration order
func (audit *Audit) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(audit.Limiter, arguments.Count, maximumAuditList); nil != err {
		return err
	}

	rows, err := audit.Registry.AllAudits(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Audits = rows
	reply.NextStart = arguments.Start + uint64(len(rows))

	return nil
}

// ---

// HashArguments - select a single contract
type HashArguments struct {
	Hash contenthash.ContentHash `json:"hash"`
}

// ContractReply - every audit of a contract oldest first
type ContractReply struct {
	Audits []auditrecord.Entry `json:"audits"`
}

// Contract - full audit history of one content hash
func (audit *Audit) Contract(arguments *HashArguments, reply *ContractReply) error {

	if err := ratelimit.Limit(audit.Limiter); nil != err {
		return err
	}

	entries, err := audit.Registry.ContractAudits(arguments.Hash)
	if nil != err {
		return err
	}

	reply.Audits = entries
	return nil
}

// ---

// AuditorArguments - select a single auditor
type AuditorArguments struct {
	Auditor *account.Account `json:"auditor"`
}

// AuditorReply - contracts an auditor has reviewed
type AuditorReply struct {
	Hashes []contenthash.ContentHash `json:"hashes"`
}

// Auditor - distinct content hashes audited by one auditor
func (audit *Audit) Auditor(arguments *AuditorArguments, reply *AuditorReply) error {

	if err := ratelimit.Limit(audit.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Auditor {
		return fault.MissingParameters
	}

	hashes, err := audit.Registry.AuditorHistory(arguments.Auditor)
	if nil != err {
		return err
	}

	reply.Hashes = hashes
	return nil
}

// ---

// LatestReply - most recent audit of a contract
type LatestReply struct {
	Audit *auditrecord.Entry `json:"audit"`
}

// Latest - most recent audit of one content hash
func (audit *Audit) Latest(arguments *HashArguments, reply *LatestReply) error {

	if err := ratelimit.Limit(audit.Limiter); nil != err {
		return err
	}

	entry, err := audit.Registry.LatestAudit(arguments.Hash)
	if nil != err {
		return err
	}

	reply.Audit = entry
	return nil
}
