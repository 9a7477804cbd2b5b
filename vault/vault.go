// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/asset"
	"github.com/tokenvault/vaultd/ratio"
	"github.com/tokenvault/vaultd/share"
)

// DefaultDecimals - precision assumed when the asset declares none
const DefaultDecimals = 18

// largest precision the probe will accept
const maxDecimals = 255

// Vault - one pool of a single external asset
type Vault struct {
	log            *logger.L
	assets         asset.Ledger
	custody        *account.Account
	shares         *share.Ledger
	policy         ratio.Policy
	decimals       uint64
	minimumDeposit uint64 // accessed atomically, reloadable at runtime
}

// New - bind a vault to an asset ledger and a custody account
//
// the asset's decimal precision is probed exactly once here: if the
// ledger answers and the value is plausible it is fixed for the life
// of the vault, otherwise DefaultDecimals is fixed instead
func New(assets asset.Ledger, custody *account.Account, policy ratio.Policy) *Vault {

	decimals := uint64(DefaultDecimals)
	if querier, ok := assets.(asset.DecimalsQuerier); ok {
		d, err := querier.Decimals()
		if nil == err && d <= maxDecimals {
			decimals = d
		}
	}

	return &Vault{
		log:            logger.New("vault"),
		assets:         assets,
		custody:        custody,
		shares:         share.NewLedger(custody),
		policy:         policy,
		decimals:       decimals,
		minimumDeposit: policy.MinimumDeposit,
	}
}

// Custody - the account holding the pooled assets
func (v *Vault) Custody() *account.Account {
	return v.custody
}

// Decimals - the precision fixed at construction
func (v *Vault) Decimals() uint64 {
	return v.decimals
}

// MinimumDeposit - smallest deposit currently accepted, zero disables
func (v *Vault) MinimumDeposit() uint64 {
	return atomic.LoadUint64(&v.minimumDeposit)
}

// SetMinimumDeposit - adjust the deposit floor on a running vault
func (v *Vault) SetMinimumDeposit(amount uint64) {
	atomic.StoreUint64(&v.minimumDeposit, amount)
}

// TotalAssets - assets currently held by the custody account
//
// read fresh from the asset ledger on every call
func (v *Vault) TotalAssets() uint64 {
	return v.assets.BalanceOf(v.custody)
}

// TotalShares - shares currently in circulation
func (v *Vault) TotalShares() uint64 {
	return v.shares.TotalIssued()
}

// BalanceOf - shares held by an account
func (v *Vault) BalanceOf(owner *account.Account) uint64 {
	return v.shares.BalanceOf(owner)
}

// Allowance - shares a spender may redeem on behalf of an owner
func (v *Vault) Allowance(owner *account.Account, spender *account.Account) uint64 {
	return v.shares.Allowance(owner, spender)
}

// Approve - let a spender withdraw or redeem against an owner's shares
func (v *Vault) Approve(owner *account.Account, spender *account.Account, amount uint64) {
	v.shares.Approve(owner, spender, amount)
}

// ConvertToShares - asset amount valued in shares at the current rate
func (v *Vault) ConvertToShares(assets uint64) (uint64, error) {
	return v.toShares(assets, ratio.Down)
}

// ConvertToAssets - share amount valued in assets at the current rate
func (v *Vault) ConvertToAssets(shares uint64) (uint64, error) {
	return v.toAssets(shares, ratio.Down)
}

// PreviewDeposit - shares a deposit of this size would mint
func (v *Vault) PreviewDeposit(assets uint64) (uint64, error) {
	return v.toShares(assets, ratio.Down)
}

// PreviewMint - assets a mint of this size would cost
func (v *Vault) PreviewMint(shares uint64) (uint64, error) {
	return v.toAssets(shares, ratio.Up)
}

// PreviewWithdraw - shares a withdrawal of this size would burn
func (v *Vault) PreviewWithdraw(assets uint64) (uint64, error) {
	return v.toShares(assets, ratio.Up)
}

// PreviewRedeem - assets a redemption of this size would pay out
func (v *Vault) PreviewRedeem(shares uint64) (uint64, error) {
	return v.toAssets(shares, ratio.Down)
}

func (v *Vault) toShares(assets uint64, rounding ratio.Rounding) (uint64, error) {
	return v.policy.ToShares(assets, v.TotalAssets(), v.TotalShares(), rounding)
}

func (v *Vault) toAssets(shares uint64, rounding ratio.Rounding) (uint64, error) {
	return v.policy.ToAssets(shares, v.TotalAssets(), v.TotalShares(), rounding)
}

// ensure a compensating step succeeded, there is no further recovery
func (v *Vault) checkRollback(step string, err error) {
	if nil != err {
		v.log.Criticalf("rollback failed at %s: %s", step, err)
		logger.Panicf("vault: rollback failed at %s: %s", step, err)
	}
}
