// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/tokenvault/vaultd/account"
)

// Ledger - the balance/transfer authority for the underlying asset
//
// implementations may run arbitrary code inside Debit and Credit
// (hooks, callbacks, further vault calls); callers must order their
// own mutations so that any such reentrant call observes settled state
type Ledger interface {

	// Debit - move amount from the payer to the vault
	// must fail loudly, never succeed with no effect
	Debit(payer *account.Account, vault *account.Account, amount uint64) error

	// Credit - move amount from the vault to the receiver
	// must fail loudly, never succeed with no effect
	Credit(vault *account.Account, receiver *account.Account, amount uint64) error

	// BalanceOf - the amount held by an account
	BalanceOf(owner *account.Account) uint64
}

// DecimalsQuerier - optional declared decimal precision
//
// a ledger that knows its precision exposes it here; queried once at
// vault construction, never again
type DecimalsQuerier interface {
	Decimals() (uint64, error)
}
