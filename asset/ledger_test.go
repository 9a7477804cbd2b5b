// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/asset"
	"github.com/tokenvault/vaultd/fault"
	"github.com/tokenvault/vaultd/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	fixtures.SetupTestStorage()
	rc := m.Run()
	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func makeAccounts(t *testing.T) (*account.Account, *account.Account) {
	t.Helper()
	alice, _, err := account.NewKeypair(true)
	assert.NoError(t, err, "generate account")
	vault, _, err := account.NewKeypair(true)
	assert.NoError(t, err, "generate account")
	return alice, vault
}

func TestMemoryTransfer(t *testing.T) {
	alice, vault := makeAccounts(t)

	ledger := asset.NewMemory(18)
	ledger.SetBalance(alice, 1000)

	err := ledger.Debit(alice, vault, 400)
	assert.NoError(t, err, "debit")
	assert.Equal(t, uint64(600), ledger.BalanceOf(alice), "payer balance")
	assert.Equal(t, uint64(400), ledger.BalanceOf(vault), "vault balance")

	err = ledger.Credit(vault, alice, 150)
	assert.NoError(t, err, "credit")
	assert.Equal(t, uint64(750), ledger.BalanceOf(alice), "payer balance")
	assert.Equal(t, uint64(250), ledger.BalanceOf(vault), "vault balance")
}

func TestMemoryInsufficientFunds(t *testing.T) {
	alice, vault := makeAccounts(t)

	ledger := asset.NewMemory(18)
	ledger.SetBalance(alice, 10)

	err := ledger.Debit(alice, vault, 11)
	assert.Equal(t, fault.InsufficientFunds, err, "over debit")
	assert.Equal(t, uint64(10), ledger.BalanceOf(alice), "balance unchanged")
	assert.Equal(t, uint64(0), ledger.BalanceOf(vault), "balance unchanged")
}

func TestMemoryOverflow(t *testing.T) {
	alice, vault := makeAccounts(t)

	ledger := asset.NewMemory(18)
	ledger.SetBalance(alice, 100)
	ledger.SetBalance(vault, math.MaxUint64-10)

	err := ledger.Debit(alice, vault, 50)
	assert.Equal(t, fault.BalanceOverflow, err, "overflowing credit")
	assert.Equal(t, uint64(100), ledger.BalanceOf(alice), "balance unchanged")
}

func TestMemoryDecimals(t *testing.T) {
	ledger := asset.NewMemory(6)
	d, err := ledger.Decimals()
	assert.NoError(t, err, "decimals")
	assert.Equal(t, uint64(6), d, "decimals")
}

func TestStoreTransfer(t *testing.T) {
	alice, vault := makeAccounts(t)

	ledger := asset.NewStore(18)
	ledger.SetBalance(alice, 5000)

	err := ledger.Debit(alice, vault, 1200)
	assert.NoError(t, err, "debit")
	assert.Equal(t, uint64(3800), ledger.BalanceOf(alice), "payer balance")
	assert.Equal(t, uint64(1200), ledger.BalanceOf(vault), "vault balance")

	err = ledger.Credit(vault, alice, 1200)
	assert.NoError(t, err, "credit")
	assert.Equal(t, uint64(5000), ledger.BalanceOf(alice), "payer balance")
	assert.Equal(t, uint64(0), ledger.BalanceOf(vault), "vault balance")
}

func TestStoreSelfTransfer(t *testing.T) {
	alice, _ := makeAccounts(t)

	ledger := asset.NewStore(18)
	ledger.SetBalance(alice, 1000)

	err := ledger.Debit(alice, alice, 400)
	assert.NoError(t, err, "self debit")
	assert.Equal(t, uint64(1000), ledger.BalanceOf(alice), "balance unchanged")

	err = ledger.Credit(alice, alice, 400)
	assert.NoError(t, err, "self credit")
	assert.Equal(t, uint64(1000), ledger.BalanceOf(alice), "balance unchanged")

	err = ledger.Debit(alice, alice, 1001)
	assert.Equal(t, fault.InsufficientFunds, err, "self over debit")
	assert.Equal(t, uint64(1000), ledger.BalanceOf(alice), "balance unchanged")
}

func TestMemorySelfTransfer(t *testing.T) {
	alice, _ := makeAccounts(t)

	ledger := asset.NewMemory(18)
	ledger.SetBalance(alice, 1000)

	err := ledger.Debit(alice, alice, 400)
	assert.NoError(t, err, "self debit")
	assert.Equal(t, uint64(1000), ledger.BalanceOf(alice), "balance unchanged")
}

func TestStoreInsufficientFunds(t *testing.T) {
	alice, vault := makeAccounts(t)

	ledger := asset.NewStore(18)

	err := ledger.Debit(alice, vault, 1)
	assert.Equal(t, fault.InsufficientFunds, err, "debit from empty account")
}
