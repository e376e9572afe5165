// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/auditd/command/audit-cli/rpccalls"
)

func newClient(m *metadata) (*rpccalls.Client, error) {
	connect := m.config.Connections[m.connectionOffset]
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", connect)
	}
	return rpccalls.NewClient(m.testnet, connect, m.verbose, m.e)
}

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hash, err := checkHash(c)
	if nil != err {
		return err
	}

	rating, err := checkRating(c.Uint("rating"))
	if nil != err {
		return err
	}

	summary, err := checkSummary(c.String("summary"))
	if nil != err {
		return err
	}

	private, err := promptAndCheckPassword(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "hash: %s\n", hash)
		fmt.Fprintf(m.e, "rating: %d\n", rating)
		fmt.Fprintf(m.e, "auditor: %s\n", private.Account)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Register(&rpccalls.RegisterData{
		Hash:    hash,
		Rating:  rating,
		Summary: summary,
		Auditor: private.PrivateKey,
	})
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}

func runTotal(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Total()
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.List(c.Uint64("start"), c.Uint64("count"))
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}

func runContract(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hash, err := checkHash(c)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Contract(hash)
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}

func runLatest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hash, err := checkHash(c)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Latest(hash)
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}

func runAuditor(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("auditor")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	auditor, err := m.config.Account(name)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Auditor(auditor)
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}
