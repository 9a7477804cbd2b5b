// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ownerName, owner, err := checkOwner(c.String("owner"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", ownerName)
	}

	client, err := dialDaemon(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBalance(owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runPreview(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	operation := c.String("operation")
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "operation: %s\n", operation)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	client, err := dialDaemon(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Convert(operation, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runMax(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	operation := c.String("operation")

	ownerName, owner, err := checkOwner(c.String("owner"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "operation: %s\n", operation)
		fmt.Fprintf(m.e, "owner: %s\n", ownerName)
	}

	client, err := dialDaemon(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Max(operation, owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := dialDaemon(m)
	if nil != err {
		return err
	}
	defer client.Close()

	pool, err := client.GetVaultInfo()
	if nil != err {
		return err
	}

	node, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		Pool interface{} `json:"pool"`
		Node interface{} `json:"node"`
	}{
		Pool: pool,
		Node: node,
	})

	return nil
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		name = m.config.DefaultIdentity
	}

	id, err := m.config.Identity(name)
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Account     string `json:"account"`
	}{
		Name:        name,
		Description: id.Description,
		Account:     id.Account,
	})

	return nil
}
