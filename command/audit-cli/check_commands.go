// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/chain"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/fault"
)

// command line errors - keep in alphabetic order
var (
	ErrInvalidNetwork      = fault.InvalidError("network must be one of: live, testing, local")
	ErrRequiredAmount      = fault.InvalidError("amount is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredHash        = fault.InvalidError("one of hash or file is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredSeed        = fault.InvalidError("one of seed or new is required")
	ErrRequiredSummary     = fault.InvalidError("summary is required")
)

// canonical network name
func checkNetwork(network string) (string, error) {
	switch network {
	case "live", "bitmark", "production":
		return chain.Live, nil
	case "testing", "test":
		return chain.Testing, nil
	case "local", "regression":
		return chain.Local, nil
	default:
		return "", ErrInvalidNetwork
	}
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required.
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// either an existing seed or a new one
func checkSeed(seed string, new bool, testnet bool) (string, error) {
	switch {
	case "" != seed && new:
		return "", fault.IncompatibleOptions
	case new:
		return account.NewSeed(testnet)
	case "" == seed:
		return "", ErrRequiredSeed
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return "", err
	}
	if privateKey.IsTesting() != testnet {
		return "", fault.NotTestingAccount
	}
	return seed, nil
}

// exactly one of --hash or --file
func checkHash(c *cli.Context) (contenthash.ContentHash, error) {
	h := c.String("hash")
	f := c.String("file")

	switch {
	case "" != h && "" != f:
		return contenthash.ContentHash{}, fault.IncompatibleOptions
	case "" != h:
		return contenthash.FromString(h)
	case "" != f:
		data, err := ioutil.ReadFile(f)
		if nil != err {
			return contenthash.ContentHash{}, err
		}
		return contenthash.New(data), nil
	default:
		return contenthash.ContentHash{}, ErrRequiredHash
	}
}

// summary is required, length is checked by the server
func checkSummary(summary string) (string, error) {
	if "" == summary {
		return "", ErrRequiredSummary
	}
	return summary, nil
}

// rating must fit the wire type, range is checked by the server
func checkRating(rating uint) (uint8, error) {
	if rating > 255 {
		return 0, fault.RatingOutOfRange
	}
	return uint8(rating), nil
}

// check if file exists, true if it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
