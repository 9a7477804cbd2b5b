// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword()
		if nil != err {
			return err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return err
	}

	newPassword, err := promptNewPassword()
	if nil != err {
		return err
	}

	// re-encrypt under the new password keeping the same description
	description := private.Description
	delete(m.config.Identities, name)
	err = m.config.AddIdentity(name, description, private.Seed, newPassword)
	if nil != err {
		return err
	}

	m.save = true

	return nil
}
