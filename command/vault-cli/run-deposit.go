// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/tokenvault/vaultd/command/vault-cli/rpccalls"
)

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assets, err := checkAmount(c.String("assets"))
	if nil != err {
		return err
	}

	receiverName, receiver, err := checkOwner(c.String("receiver"), m.config)
	if nil != err {
		return err
	}

	caller, key, err := callerKey(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "receiver: %s\n", receiverName)
		fmt.Fprintf(m.e, "assets: %d\n", assets)
	}

	client, err := dialDaemon(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Deposit(&rpccalls.DepositData{
		Key:      key,
		Caller:   caller,
		Receiver: receiver,
		Assets:   assets,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	shares, err := checkAmount(c.String("shares"))
	if nil != err {
		return err
	}

	receiverName, receiver, err := checkOwner(c.String("receiver"), m.config)
	if nil != err {
		return err
	}

	caller, key, err := callerKey(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "receiver: %s\n", receiverName)
		fmt.Fprintf(m.e, "shares: %d\n", shares)
	}

	client, err := dialDaemon(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(&rpccalls.MintData{
		Key:      key,
		Caller:   caller,
		Receiver: receiver,
		Shares:   shares,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
