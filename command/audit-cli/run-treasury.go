// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrRequiredAmount
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Deposit(amount)
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}

func runWithdraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	private, err := promptAndCheckPassword(c, m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Withdraw(private.PrivateKey)
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}

func runOwner(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Owner()
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}

type auditdInfo struct {
	Connection string      `json:"connection"`
	Info       interface{} `json:"info"`
}

func runAuditdInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJSON(m.w, auditdInfo{
		Connection: m.config.Connections[m.connectionOffset],
		Info:       response,
	})
}
