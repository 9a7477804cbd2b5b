// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"

	"golang.org/x/crypto/ed25519"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/command/vault-cli/configuration"
	"github.com/tokenvault/vaultd/fault"
)

var (
	ErrRequiredAmount      = fault.InvalidError("amount is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredRecipient   = fault.InvalidError("recipient is required")
)

// identity is required, but not checked against the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// amount is required and must be a decimal uint64
func checkAmount(amount string) (uint64, error) {
	if "" == amount {
		return 0, ErrRequiredAmount
	}

	return strconv.ParseUint(amount, 10, 64)
}

// seed is optional, blank generates a new one;
// if present it must be a 32 byte hex string
func checkSeed(seed string) (string, error) {
	if "" == seed {
		b := make([]byte, ed25519.SeedSize)
		if _, err := rand.Read(b); nil != err {
			return "", err
		}
		return hex.EncodeToString(b), nil
	}

	b, err := hex.DecodeString(seed)
	if nil != err {
		return "", err
	}
	if ed25519.SeedSize != len(b) {
		return "", fault.InvalidKeyLength
	}
	return seed, nil
}

// a recipient is either an identity name from the configuration or a
// base58 account literal
func checkRecipient(name string, config *configuration.Configuration) (string, *account.Account, error) {
	if "" == name {
		return "", nil, ErrRequiredRecipient
	}

	if acc, err := config.Account(name); nil == err {
		return name, acc, nil
	}

	acc, err := account.FromBase58(name)
	if nil != err {
		return "", nil, err
	}
	return name, acc, nil
}

// like checkRecipient except blank selects the default identity
func checkOwner(name string, config *configuration.Configuration) (string, *account.Account, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	return checkRecipient(name, config)
}

// returns true if file exists and is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
