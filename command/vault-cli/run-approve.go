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

func runApprove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	shares, err := checkAmount(c.String("shares"))
	if nil != err {
		return err
	}

	spenderName, spender, err := checkRecipient(c.String("spender"), m.config)
	if nil != err {
		return err
	}

	caller, key, err := callerKey(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "spender: %s\n", spenderName)
		fmt.Fprintf(m.e, "shares: %d\n", shares)
	}

	client, err := dialDaemon(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Approve(&rpccalls.ApproveData{
		Key:     key,
		Caller:  caller,
		Spender: spender,
		Shares:  shares,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runAllowance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ownerName, owner, err := checkOwner(c.String("owner"), m.config)
	if nil != err {
		return err
	}

	spenderName, spender, err := checkRecipient(c.String("spender"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", ownerName)
		fmt.Fprintf(m.e, "spender: %s\n", spenderName)
	}

	client, err := dialDaemon(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAllowance(owner, spender)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
