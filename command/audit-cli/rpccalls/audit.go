// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/auditrecord"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/rpc/audit"
)

// RegisterData - an audit to submit
type RegisterData struct {
	Hash    contenthash.ContentHash
	Rating  uint8
	Summary string
	Auditor *account.PrivateKey
}

// Register - sign and submit an audit
func (client *Client) Register(data *RegisterData) (*audit.RegisterReply, error) {

	if nil == data.Auditor {
		return nil, fault.MissingParameters
	}
	if data.Auditor.IsTesting() != client.testnet {
		return nil, fault.NotTestingAccount
	}

	request := &auditrecord.RegisterRequest{
		Hash:    data.Hash,
		Rating:  data.Rating,
		Summary: data.Summary,
		Auditor: data.Auditor.Account(),
		Nonce:   nextNonce(),
	}
	err := request.Sign(data.Auditor)
	if nil != err {
		return nil, err
	}

	if client.verbose {
		printJSON(client.handle, "Register Request", request)
	}

	var reply audit.RegisterReply
	err = client.client.Call("Audit.Register", request, &reply)
	if nil != err {
		return nil, err
	}

	if client.verbose {
		printJSON(client.handle, "Register Reply", reply)
	}
	return &reply, nil
}

// Total - number of distinct audited hashes
func (client *Client) Total() (*audit.TotalReply, error) {
	var reply audit.TotalReply
	err := client.client.Call("Audit.Total", &audit.TotalArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// List - latest audit of each hash from a position
func (client *Client) List(start uint64, count uint64) (*audit.ListReply, error) {
	arguments := &audit.ListArguments{
		Start: start,
		Count: count,
	}

	if client.verbose {
		printJSON(client.handle, "List Request", arguments)
	}

	var reply audit.ListReply
	err := client.client.Call("Audit.List", arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Contract - every audit of one hash
func (client *Client) Contract(hash contenthash.ContentHash) (*audit.ContractReply, error) {
	var reply audit.ContractReply
	err := client.client.Call("Audit.Contract", &audit.HashArguments{Hash: hash}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Auditor - hashes audited by an account
func (client *Client) Auditor(auditor *account.Account) (*audit.AuditorReply, error) {
	var reply audit.AuditorReply
	err := client.client.Call("Audit.Auditor", &audit.AuditorArguments{Auditor: auditor}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Latest - most recent audit of one hash
func (client *Client) Latest(hash contenthash.ContentHash) (*audit.LatestReply, error) {
	var reply audit.LatestReply
	err := client.client.Call("Audit.Latest", &audit.HashArguments{Hash: hash}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
