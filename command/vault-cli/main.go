// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/tokenvault/vaultd/command/vault-cli/configuration"
	"github.com/tokenvault/vaultd/version"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

func main() {

	app := cli.NewApp()
	app.Name = "vault-cli"
	app.Usage = "connect to a vaultd and manage vault shares"
	app.Version = version.Version
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
			Value: "",
			Usage: " connect to vault `NETWORK` [live|test|local]",
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
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise vault-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*vaultd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " existing hex `SEED`, blank generates a new one",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file, set it as default",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " existing hex `SEED`, blank generates a new one",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive-only base58 `ACCOUNT`, no private key stored",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "deposit",
			Usage:     "pay assets in, mint shares at the current rate",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: " identity or account to credit `ACCOUNT` [default identity]",
				},
				cli.StringFlag{
					Name:  "assets, a",
					Value: "",
					Usage: "*asset amount to deposit `NUMBER`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "mint",
			Usage:     "buy an exact number of shares at the current rate",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: " identity or account to credit `ACCOUNT` [default identity]",
				},
				cli.StringFlag{
					Name:  "shares, s",
					Value: "",
					Usage: "*share amount to mint `NUMBER`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "withdraw",
			Usage:     "take an exact asset amount out, burning shares",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: " identity or account to pay `ACCOUNT` [default identity]",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity or account owning the shares `ACCOUNT` [default identity]",
				},
				cli.StringFlag{
					Name:  "assets, a",
					Value: "",
					Usage: "*asset amount to withdraw `NUMBER`",
				},
			},
			Action: runWithdraw,
		},
		{
			Name:      "redeem",
			Usage:     "burn an exact number of shares for assets",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: " identity or account to pay `ACCOUNT` [default identity]",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity or account owning the shares `ACCOUNT` [default identity]",
				},
				cli.StringFlag{
					Name:  "shares, s",
					Value: "",
					Usage: "*share amount to redeem `NUMBER`",
				},
			},
			Action: runRedeem,
		},
		{
			Name:      "approve",
			Usage:     "let a spender redeem against the caller's shares",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*identity or account allowed to spend `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "shares, q",
					Value: "",
					Usage: "*share allowance to grant `NUMBER`",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "allowance",
			Usage:     "display the allowance for an owner and spender pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity or account owning the shares `ACCOUNT` [default identity]",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*identity or account allowed to spend `ACCOUNT`",
				},
			},
			Action: runAllowance,
		},
		{
			Name:      "balance",
			Usage:     "display share balance and its asset value",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity or account `ACCOUNT` [default identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "preview",
			Usage:     "preview a conversion without moving anything",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operation, o",
					Value: "",
					Usage: "*one of `[to-shares|to-assets|deposit|mint|withdraw|redeem]`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*amount to convert `NUMBER`",
				},
			},
			Action: runPreview,
		},
		{
			Name:      "max",
			Usage:     "display the operation limit for an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operation, o",
					Value: "",
					Usage: "*one of `[deposit|mint|withdraw|redeem]`",
				},
				cli.StringFlag{
					Name:  "owner, w",
					Value: "",
					Usage: " identity or account `ACCOUNT` [default identity]",
				},
			},
			Action: runMax,
		},
		{
			Name:   "info",
			Usage:  "display vaultd pool and node status",
			Action: runInfo,
		},
		{
			Name:      "account",
			Usage:     "display the account of an identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, i",
					Value: "",
					Usage: " identity `NAME` [default identity]",
				},
			},
			Action: runAccount,
		},
		{
			Name:   "password",
			Usage:  "change default identity's password",
			Action: runChangePassword,
		},
		{
			Name:  "version",
			Usage: "display vault-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version.Version)
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
		if "version" == command {
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "live", "production":
			network = "live"
		case "test", "testing":
			network = "test"
		case "local", "regression":
			network = "local"
		default:
			return fmt.Errorf("network: %q can only be live/test/local", network)
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

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != "live",
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			conf, err := configuration.Load(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  conf,
				testnet: conf.TestNet,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

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

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
