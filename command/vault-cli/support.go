// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/command/vault-cli/configuration"
	"github.com/tokenvault/vaultd/command/vault-cli/rpccalls"
)

// resolve the signing identity: the --identity global or the default,
// unlocked with the --password global or a prompt
func callerKey(c *cli.Context, m *metadata) (*account.Account, *account.PrivateKey, error) {

	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword()
		if nil != err {
			return nil, nil, err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return nil, nil, err
	}

	return private.PrivateKey.Account(), private.PrivateKey, nil
}

// the caller's account without unlocking the private key
func callerAccount(c *cli.Context, m *metadata) (*account.Account, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return m.config.Account(name)
}

// open the RPC connection to the first configured vaultd
func dialDaemon(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.testnet, m.config.Connections[0], m.verbose, m.e)
}

// store a new identity in the configuration, used by setup and add
func addIdentity(config *configuration.Configuration, name string, description string, seed string, password string) error {
	err := config.AddIdentity(name, description, seed, password)
	if nil != err {
		return err
	}
	config.DefaultIdentity = name
	return nil
}
