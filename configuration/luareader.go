// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/tokenvault/vaultd/fault"
)

// ParseConfigurationFile - execute a Lua script and map the table it
// returns onto a configuration structure
//
// a vaultd configuration is a Lua program whose last statement
// returns a table, e.g.:
//
//	local M = {}
//	M.data_directory = arg[0]:match("^(.*/)") or "."
//	M.vault = { custody = "...", minimum_deposit = 100 }
//	return M
//
// the full Lua base library is open so a file can read key material
// from disk or pull settings from the environment; the global arg[0]
// holds the path of the file itself so relative paths can be anchored
// next to it
//
// field mapping uses the "gluamapper" struct tag
func ParseConfigurationFile(fileName string, config interface{}) error {
	state := lua.NewState()
	defer state.Close()

	state.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	state.SetGlobal("arg", arg)

	err := state.DoFile(fileName)
	if nil != err {
		return err
	}

	table, ok := state.Get(state.GetTop()).(*lua.LTable)
	if !ok {
		return fault.InvalidConfigurationFile
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: "gluamapper",
		},
	}
	return mapper.Map(table, config)
}
