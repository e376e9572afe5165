// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/auditd/chain"
	"github.com/bitmark-inc/auditd/command/audit-cli/configuration"
)

type metadata struct {
	file             string
	config           *configuration.Configuration
	connectionOffset int
	save             bool
	testnet          bool
	verbose          bool
	e                io.Writer
	w                io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "audit-cli"
	app.Usage = "submit and query audits held by auditd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "testing",
			Usage: " connect to auditd `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}

	hashFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "hash, H",
			Value: "",
			Usage: "+content hash `HEX` (64 characters)",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: "+`FILE` to hash with SHA3-256",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new seed and account, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise audit-cli configuration",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*auditd host/IP and port, `HOST:PORT[,HOST:PORT...]`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new seed",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new seed",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+`ACCOUNT` for a receive only identity",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "register",
			Usage:     "submit an audit of some content",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.UintFlag{
					Name:  "rating, r",
					Value: 0,
					Usage: "*rating `STARS` 0..5",
				},
				cli.StringFlag{
					Name:  "summary, s",
					Value: "",
					Usage: "*audit summary `TEXT` (at most 500 bytes)",
				},
			}, hashFlags...),
			Action: runRegister,
		},
		{
			Name:   "total",
			Usage:  "number of distinct audited hashes",
			Action: runTotal,
		},
		{
			Name:      "list",
			Usage:     "latest audit of each hash in registration order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start position `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "contract",
			Usage:     "all audits of some content",
			ArgsUsage: "\n   (+ = select one)",
			Flags:     hashFlags,
			Action:    runContract,
		},
		{
			Name:      "latest",
			Usage:     "most recent audit of some content",
			ArgsUsage: "\n   (+ = select one)",
			Flags:     hashFlags,
			Action:    runLatest,
		},
		{
			Name:      "auditor",
			Usage:     "hashes audited by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "auditor, a",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runAuditor,
		},
		{
			Name:      "deposit",
			Usage:     "credit the treasury",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*`AMOUNT` to deposit",
				},
			},
			Action: runDeposit,
		},
		{
			Name:   "withdraw",
			Usage:  "withdraw the treasury balance, identity must be the owner",
			Action: runWithdraw,
		},
		{
			Name:   "owner",
			Usage:  "display treasury owner and balance",
			Action: runOwner,
		},
		{
			Name:   "info",
			Usage:  "display audit-cli status",
			Action: runInfo,
		},
		{
			Name:   "auditdInfo",
			Usage:  "display auditd status",
			Action: runAuditdInfo,
		},
		{
			Name:   "password",
			Usage:  "change identity's password",
			Action: runChangePassword,
		},
		{
			Name:  "version",
			Usage: "display audit-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command || "h" == command {
			return nil
		}

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return err
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			save:    false,
			testnet: chain.Live != network,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		switch command {
		case "setup":
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

		case "generate":
			// no configuration needed

		default:
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			config, err := configuration.Load(file)
			if nil != err {
				return err
			}
			if 0 == len(config.Connections) {
				return ErrRequiredConnect
			}
			m.config = config
			m.testnet = config.TestNet
			m.connectionOffset = rand.Intn(len(config.Connections))
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	rand.Seed(time.Now().UnixNano())

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "%s %s\n", color.RedString("terminated with error:"), err)
		os.Exit(1)
	}
}
