// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/fault"
	"github.com/tokenvault/vaultd/ratio"
)

// Deposit - pay a fixed amount of assets in, mint whatever shares
// that buys at the current rate
//
// the caller's assets are moved into custody before any shares exist;
// a transfer hook re-entering the vault sees the pool already grown
// and no shares for it yet, which only undervalues the reentrant call
func (v *Vault) Deposit(caller *account.Account, receiver *account.Account, assets uint64) (uint64, error) {

	if assets > v.MaxDeposit(receiver) {
		return 0, fault.DepositLimitExceeded
	}
	if assets < v.MinimumDeposit() {
		return 0, fault.DepositBelowMinimum
	}

	shares, err := v.toShares(assets, ratio.Down)
	if nil != err {
		return 0, err
	}

	return v.settleDeposit(caller, receiver, assets, shares)
}

// Mint - receive a fixed amount of shares, pay whatever assets they
// cost at the current rate
//
// the cost is rounded up so the caller never pays less than the fair
// rate implies
func (v *Vault) Mint(caller *account.Account, receiver *account.Account, shares uint64) (uint64, error) {

	if shares > v.MaxMint(receiver) {
		return 0, fault.MintLimitExceeded
	}

	assets, err := v.toAssets(shares, ratio.Up)
	if nil != err {
		return 0, err
	}
	if assets < v.MinimumDeposit() {
		return 0, fault.DepositBelowMinimum
	}

	_, err = v.settleDeposit(caller, receiver, assets, shares)
	if nil != err {
		return 0, err
	}
	return assets, nil
}

// debit then mint, rolling the debit back if the mint cannot complete
func (v *Vault) settleDeposit(caller *account.Account, receiver *account.Account, assets uint64, shares uint64) (uint64, error) {

	err := v.assets.Debit(caller, v.custody, assets)
	if nil != err {
		return 0, fault.WrapTransfer(err)
	}

	err = v.shares.Mint(receiver, shares)
	if nil != err {
		v.checkRollback("deposit credit", v.assets.Credit(v.custody, caller, assets))
		return 0, err
	}

	v.log.Infof("deposit: %d assets from %s mint %d shares for %s", assets, caller, shares, receiver)
	v.notifyDeposit(caller, receiver, assets, shares)
	return shares, nil
}
