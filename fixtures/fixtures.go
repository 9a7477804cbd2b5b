// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test scaffolding
//
// a throwaway logging directory and database so that package tests can
// exercise the real storage stack
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/tokenvault/vaultd/storage"
)

const (
	logCategory = "testing"
)

var testDir string

// SetupTestLogger - create the test logging directory
func SetupTestLogger() {
	removeFiles()
	dir, err := ioutil.TempDir("", "vaultd-test")
	if nil != err {
		panic(fmt.Sprintf("fixtures: cannot create test directory: %s", err))
	}
	testDir = dir

	logging := logger.Configuration{
		Directory: testDir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

// TeardownTestLogger - remove everything created by SetupTestLogger
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestStorage - open a throwaway database
//
// requires SetupTestLogger to have been called first
func SetupTestStorage() {
	err := storage.Initialise(filepath.Join(testDir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		panic(fmt.Sprintf("fixtures: cannot open test database: %s", err))
	}
}

// TeardownTestStorage - close the throwaway database
func TeardownTestStorage() {
	storage.Finalise()
}

func removeFiles() {
	if "" != testDir {
		_ = os.RemoveAll(testDir)
		testDir = ""
	}
}
