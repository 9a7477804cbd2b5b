// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tokenvault/vaultd/configuration"
	"github.com/tokenvault/vaultd/fault"
)

type testConfiguration struct {
	Network string
	Minimum int
	Nodes   []string
}

const luaScript = `
local M = {}
M.network = "test"
M.minimum = 25
M.nodes = { "alpha", "beta" }
return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.NoError(t, err, "temp directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(luaScript), 0600)
	assert.NoError(t, err, "write script")

	config := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.NoError(t, err, "parse")
	assert.Equal(t, "test", config.Network, "network")
	assert.Equal(t, 25, config.Minimum, "minimum")
	assert.Equal(t, []string{"alpha", "beta"}, config.Nodes, "nodes")
}

func TestParseNonTableResult(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.NoError(t, err, "temp directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "bad.conf")
	err = ioutil.WriteFile(fileName, []byte(`return "not a table"`), 0600)
	assert.NoError(t, err, "write script")

	config := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.InvalidConfigurationFile, err, "non table result")
}

func TestParseMissingFile(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile("/nonexistent/test.conf", &config)
	assert.Error(t, err, "missing file")
}
