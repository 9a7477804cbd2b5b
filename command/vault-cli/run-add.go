// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if err != nil {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// a receive-only identity stores just the account
	if acc := c.String("account"); "" != acc {
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
		if err != nil {
			return err
		}
		m.save = true
		return nil
	}

	seed, err := checkSeed(c.String("seed"))
	if err != nil {
		return err
	}

	password := c.GlobalString("password")
	if password == "" {
		password, err = promptNewPassword()
		if err != nil {
			return err
		}
	}

	err = addIdentity(m.config, name, description, seed, password)
	if err != nil {
		return err
	}

	m.save = true

	return nil
}
