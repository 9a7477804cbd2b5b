// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/asset"
	"github.com/tokenvault/vaultd/fault"
	"github.com/tokenvault/vaultd/fixtures"
	"github.com/tokenvault/vaultd/ratio"
	"github.com/tokenvault/vaultd/vault"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	fixtures.SetupTestStorage()
	rc := m.Run()
	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newAccount(t *testing.T) *account.Account {
	t.Helper()
	acc, _, err := account.NewKeypair(true)
	assert.NoError(t, err, "generate account")
	return acc
}

// a fresh vault over an in-process asset ledger with alice holding
// an initial asset balance
func setupVault(t *testing.T, policy ratio.Policy) (*vault.Vault, *asset.Memory, *account.Account) {
	t.Helper()

	ledger := asset.NewMemory(18)
	custody := newAccount(t)
	alice := newAccount(t)
	ledger.SetBalance(alice, 1000000)

	return vault.New(ledger, custody, policy), ledger, alice
}

func TestEmptyPoolBootstrap(t *testing.T) {
	v, _, alice := setupVault(t, ratio.Policy{})

	for _, x := range []uint64{0, 1, 7, 999, 1000000} {
		shares, err := v.ConvertToShares(x)
		assert.NoError(t, err, "convert to shares")
		assert.Equal(t, x, shares, "bootstrap is one to one")

		assets, err := v.ConvertToAssets(x)
		assert.NoError(t, err, "convert to assets")
		assert.Equal(t, x, assets, "bootstrap is one to one")
	}

	shares, err := v.Deposit(alice, alice, 1234)
	assert.NoError(t, err, "bootstrap deposit")
	assert.Equal(t, uint64(1234), shares, "bootstrap deposit shares")
}

func TestMaxWithdrawConsistency(t *testing.T) {
	v, _, alice := setupVault(t, ratio.Policy{})

	_, err := v.Deposit(alice, alice, 5000)
	assert.NoError(t, err, "deposit")
	assert.Equal(t, uint64(5000), v.MaxWithdraw(alice), "max withdraw equals deposit")
	assert.Equal(t, uint64(5000), v.MaxRedeem(alice), "max redeem equals shares")
}

func TestWorkedExample(t *testing.T) {
	v, ledger, alice := setupVault(t, ratio.Policy{})

	// build a pool of 1000 assets backing 500 shares: deposit 500
	// then double the custody holding outside the deposit path
	_, err := v.Deposit(alice, alice, 500)
	assert.NoError(t, err, "deposit")
	ledger.SetBalance(v.Custody(), 1000)

	assert.Equal(t, uint64(1000), v.TotalAssets(), "pool assets")
	assert.Equal(t, uint64(500), v.TotalShares(), "pool shares")

	shares, err := v.ConvertToShares(100)
	assert.NoError(t, err, "convert to shares")
	assert.Equal(t, uint64(50), shares, "100 assets are worth 50 shares")

	assets, err := v.ConvertToAssets(50)
	assert.NoError(t, err, "convert to assets")
	assert.Equal(t, uint64(100), assets, "50 shares are worth 100 assets")
}

func TestRoundTripLossBound(t *testing.T) {
	for _, amount := range []uint64{1, 3, 7, 99, 1000, 31337} {
		v, ledger, alice := setupVault(t, ratio.Policy{})

		// an uneven rate so rounding actually bites
		_, err := v.Deposit(alice, alice, 333)
		assert.NoError(t, err, "seed deposit")
		ledger.SetBalance(v.Custody(), 1000)

		before := ledger.BalanceOf(alice)
		shares, err := v.Deposit(alice, alice, amount)
		assert.NoError(t, err, "deposit")

		assets, err := v.Redeem(alice, alice, alice, shares)
		assert.NoError(t, err, "redeem")
		assert.True(t, assets <= amount, "round trip must not profit: in %d out %d", amount, assets)
		assert.True(t, ledger.BalanceOf(alice) <= before, "balance must not grow")
	}
}

func TestZeroDeposit(t *testing.T) {
	v, _, alice := setupVault(t, ratio.Policy{})

	shares, err := v.Deposit(alice, alice, 0)
	assert.NoError(t, err, "zero deposit")
	assert.Equal(t, uint64(0), shares, "zero deposit mints nothing")
	assert.Equal(t, uint64(0), v.TotalShares(), "pool unchanged")
}

func TestDecollateralizedGuard(t *testing.T) {
	v, ledger, alice := setupVault(t, ratio.Policy{})

	_, err := v.Deposit(alice, alice, 100)
	assert.NoError(t, err, "deposit")

	// the custody holding vanishes outside the vault
	ledger.SetBalance(v.Custody(), 0)

	assert.Equal(t, uint64(0), v.MaxDeposit(alice), "decollateralized pool accepts nothing")

	_, err = v.Deposit(alice, alice, 1)
	assert.Equal(t, fault.DepositLimitExceeded, err, "deposit on broken rate")
	assert.True(t, fault.IsErrLimitExceeded(err), "limit class")

	_, err = v.ConvertToShares(1)
	assert.Equal(t, fault.NoBackingAssets, err, "conversion on broken rate")
	assert.True(t, fault.IsErrArithmetic(err), "arithmetic class")

	// minting stays defined: shares issue without a price
	assert.Equal(t, vault.Unlimited, v.MaxMint(alice), "mint limit")
}

func TestMintRoundsUp(t *testing.T) {
	v, ledger, alice := setupVault(t, ratio.Policy{})

	_, err := v.Deposit(alice, alice, 500)
	assert.NoError(t, err, "deposit")
	ledger.SetBalance(v.Custody(), 1000)

	// 3 shares cost 3*1000/500 = 6 exactly, 7 shares cost 14
	cost, err := v.PreviewMint(7)
	assert.NoError(t, err, "preview mint")
	assert.Equal(t, uint64(14), cost, "exact cost")

	ledger.SetBalance(v.Custody(), 999) // 7*999/500 = 13.986
	cost, err = v.PreviewMint(7)
	assert.NoError(t, err, "preview mint")
	assert.Equal(t, uint64(14), cost, "inexact cost rounds up")

	assets, err := v.Mint(alice, alice, 7)
	assert.NoError(t, err, "mint")
	assert.Equal(t, uint64(14), assets, "mint charges the rounded cost")
}

func TestWithdrawRoundsUp(t *testing.T) {
	v, ledger, alice := setupVault(t, ratio.Policy{})

	_, err := v.Deposit(alice, alice, 500)
	assert.NoError(t, err, "deposit")
	ledger.SetBalance(v.Custody(), 999)

	// 7 assets cost ceil(7*500/999) = ceil(3.50...) = 4 shares
	shares, err := v.PreviewWithdraw(7)
	assert.NoError(t, err, "preview withdraw")
	assert.Equal(t, uint64(4), shares, "inexact share cost rounds up")

	burned, err := v.Withdraw(alice, alice, alice, 7)
	assert.NoError(t, err, "withdraw")
	assert.Equal(t, uint64(4), burned, "withdraw burns the rounded cost")
	assert.Equal(t, uint64(496), v.BalanceOf(alice), "remaining shares")
}

func TestWithdrawLimit(t *testing.T) {
	v, _, alice := setupVault(t, ratio.Policy{})

	_, err := v.Deposit(alice, alice, 100)
	assert.NoError(t, err, "deposit")

	_, err = v.Withdraw(alice, alice, alice, 101)
	assert.Equal(t, fault.WithdrawLimitExceeded, err, "over withdraw")

	_, err = v.Redeem(alice, alice, alice, 101)
	assert.Equal(t, fault.RedeemLimitExceeded, err, "over redeem")
}

func TestAllowanceSpending(t *testing.T) {
	v, ledger, alice := setupVault(t, ratio.Policy{})
	bob := newAccount(t)

	_, err := v.Deposit(alice, alice, 100)
	assert.NoError(t, err, "deposit")

	_, err = v.Redeem(bob, bob, alice, 50)
	assert.Equal(t, fault.InsufficientAllowance, err, "redeem without allowance")
	assert.Equal(t, uint64(100), v.BalanceOf(alice), "nothing burned")

	v.Approve(alice, bob, 60)

	assets, err := v.Redeem(bob, bob, alice, 50)
	assert.NoError(t, err, "redeem within allowance")
	assert.Equal(t, uint64(50), assets, "redeemed assets")
	assert.Equal(t, uint64(50), ledger.BalanceOf(bob), "assets paid to the caller's receiver")
	assert.Equal(t, uint64(10), v.Allowance(alice, bob), "allowance drawn down")

	_, err = v.Redeem(bob, bob, alice, 11)
	assert.Equal(t, fault.InsufficientAllowance, err, "allowance exhausted")
}

func TestMinimumDeposit(t *testing.T) {
	v, _, alice := setupVault(t, ratio.Policy{MinimumDeposit: 10})

	_, err := v.Deposit(alice, alice, 9)
	assert.Equal(t, fault.DepositBelowMinimum, err, "deposit below minimum")

	shares, err := v.Deposit(alice, alice, 10)
	assert.NoError(t, err, "deposit at minimum")
	assert.Equal(t, uint64(10), shares, "minted shares")

	// a zero deposit is no longer legal once a minimum applies
	_, err = v.Deposit(alice, alice, 0)
	assert.Equal(t, fault.DepositBelowMinimum, err, "zero deposit below minimum")
}

func TestVirtualOffsets(t *testing.T) {
	policy := ratio.Policy{
		VirtualShares: 1,
		VirtualAssets: 1,
	}
	v, _, alice := setupVault(t, policy)

	// with offsets the first depositor cannot capture value by
	// donating assets before anyone else enters
	shares, err := v.Deposit(alice, alice, 1000)
	assert.NoError(t, err, "deposit")
	assert.Equal(t, uint64(1000), shares, "offset pool still prices near one to one")
}

func TestDecimalsProbe(t *testing.T) {
	custody := newAccount(t)

	v := vault.New(asset.NewMemory(6), custody, ratio.Policy{})
	assert.Equal(t, uint64(6), v.Decimals(), "declared precision")

	// an implausible answer falls back to the default
	v = vault.New(asset.NewMemory(1000), custody, ratio.Policy{})
	assert.Equal(t, uint64(vault.DefaultDecimals), v.Decimals(), "implausible precision rejected")
}

func TestDepositMovesAssetsBeforeShares(t *testing.T) {
	v, ledger, alice := setupVault(t, ratio.Policy{})

	before := ledger.BalanceOf(alice)
	shares, err := v.Deposit(alice, alice, 250)
	assert.NoError(t, err, "deposit")
	assert.Equal(t, uint64(250), shares, "shares")
	assert.Equal(t, before-250, ledger.BalanceOf(alice), "payer debited")
	assert.Equal(t, uint64(250), ledger.BalanceOf(v.Custody()), "custody credited")
}

func TestDepositByCustodyAccount(t *testing.T) {
	ledger := asset.NewStore(18)
	custody := newAccount(t)
	ledger.SetBalance(custody, 1000)

	v := vault.New(ledger, custody, ratio.Policy{})

	// custody deposits into itself: the debit must not inflate the pool
	shares, err := v.Deposit(custody, custody, 400)
	assert.NoError(t, err, "deposit")
	assert.Equal(t, uint64(400), shares, "shares")
	assert.Equal(t, uint64(1000), v.TotalAssets(), "pool assets")
	assert.Equal(t, uint64(400), v.TotalShares(), "pool shares")
}

func TestDepositInsufficientFunds(t *testing.T) {
	v, _, alice := setupVault(t, ratio.Policy{})

	_, err := v.Deposit(alice, alice, 1000001)
	assert.Equal(t, fault.InsufficientFunds, err, "over deposit")
	assert.True(t, fault.IsErrTransfer(err), "transfer class")
	assert.Equal(t, uint64(0), v.TotalShares(), "nothing minted")
}
