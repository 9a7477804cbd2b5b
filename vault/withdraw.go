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

// Withdraw - take a fixed amount of assets out, burn whatever shares
// that costs at the current rate
//
// shares are burned before the asset transfer is issued; a transfer
// hook re-entering the vault cannot spend shares that the in-flight
// withdrawal has already consumed
func (v *Vault) Withdraw(caller *account.Account, receiver *account.Account, owner *account.Account, assets uint64) (uint64, error) {

	if assets > v.MaxWithdraw(owner) {
		return 0, fault.WithdrawLimitExceeded
	}

	shares, err := v.toShares(assets, ratio.Up)
	if nil != err {
		return 0, err
	}

	err = v.settleWithdraw(caller, receiver, owner, assets, shares)
	if nil != err {
		return 0, err
	}
	return shares, nil
}

// Redeem - burn a fixed amount of shares, take whatever assets they
// are worth at the current rate
func (v *Vault) Redeem(caller *account.Account, receiver *account.Account, owner *account.Account, shares uint64) (uint64, error) {

	if shares > v.MaxRedeem(owner) {
		return 0, fault.RedeemLimitExceeded
	}

	assets, err := v.toAssets(shares, ratio.Down)
	if nil != err {
		return 0, err
	}

	err = v.settleWithdraw(caller, receiver, owner, assets, shares)
	if nil != err {
		return 0, err
	}
	return assets, nil
}

// allowance, burn, then credit; any later failure unwinds the earlier
// steps so the whole call is all-or-nothing
func (v *Vault) settleWithdraw(caller *account.Account, receiver *account.Account, owner *account.Account, assets uint64, shares uint64) error {

	err := v.shares.SpendAllowance(owner, caller, shares)
	if nil != err {
		return err
	}

	err = v.shares.Burn(owner, shares)
	if nil != err {
		v.shares.RestoreAllowance(owner, caller, shares)
		return err
	}

	err = v.assets.Credit(v.custody, receiver, assets)
	if nil != err {
		v.checkRollback("withdraw mint", v.shares.Mint(owner, shares))
		v.shares.RestoreAllowance(owner, caller, shares)
		return fault.WrapTransfer(err)
	}

	v.log.Infof("withdraw: %d shares from %s pay %d assets to %s", shares, owner, assets, receiver)
	v.notifyWithdraw(caller, receiver, owner, assets, shares)
	return nil
}
