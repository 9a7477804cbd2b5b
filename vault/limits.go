// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"math"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/ratio"
)

// Unlimited - operation bound meaning no limit applies
const Unlimited uint64 = math.MaxUint64

// MaxDeposit - largest deposit the vault accepts for a receiver
//
// zero once shares are outstanding against zero backing assets: the
// exchange rate is broken and a deposit would be unaccounted for
func (v *Vault) MaxDeposit(receiver *account.Account) uint64 {
	if v.TotalAssets() > 0 || 0 == v.TotalShares() {
		return Unlimited
	}
	return 0
}

// MaxMint - largest mint the vault accepts for a receiver
//
// minting stays defined even at a degenerate rate: shares are issued
// without requiring a defined price
func (v *Vault) MaxMint(receiver *account.Account) uint64 {
	return Unlimited
}

// MaxWithdraw - most assets an owner can take out right now
func (v *Vault) MaxWithdraw(owner *account.Account) uint64 {
	assets, err := v.toAssets(v.shares.BalanceOf(owner), ratio.Down)
	if nil != err {
		return 0
	}
	return assets
}

// MaxRedeem - most shares an owner can redeem right now
func (v *Vault) MaxRedeem(owner *account.Account) uint64 {
	return v.shares.BalanceOf(owner)
}
