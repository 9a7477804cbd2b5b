// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package share

import (
	"math"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/fault"
	"github.com/tokenvault/vaultd/storage"
)

// key suffix for the aggregate issued supply record
var issuedSuffix = []byte("issued")

// Unlimited - allowance sentinel that is never drawn down
const Unlimited uint64 = math.MaxUint64

// Ledger - share balances, allowances and the issued supply
//
// every record key is scoped by the owning vault's account so that
// several vaults can share the same database
type Ledger struct {
	scope []byte
}

// NewLedger - create a ledger scoped to one vault
func NewLedger(vault *account.Account) *Ledger {
	return &Ledger{
		scope: vault.Bytes(),
	}
}

// BalanceOf - shares held by an account
func (l *Ledger) BalanceOf(owner *account.Account) uint64 {
	n, _ := storage.Pool.ShareQuantity.GetN(l.scoped(owner.Bytes()))
	return n
}

// TotalIssued - aggregate shares in circulation
func (l *Ledger) TotalIssued() uint64 {
	n, _ := storage.Pool.VaultState.GetN(l.scoped(issuedSuffix))
	return n
}

// Allowance - shares a spender may redeem on behalf of an owner
func (l *Ledger) Allowance(owner *account.Account, spender *account.Account) uint64 {
	n, _ := storage.Pool.ShareAllowance.GetN(l.allowanceKey(owner, spender))
	return n
}

// Approve - set the allowance for a spender
//
// overwrites any previous value; Unlimited grants an allowance that
// SpendAllowance will not draw down
func (l *Ledger) Approve(owner *account.Account, spender *account.Account, amount uint64) {
	storage.Pool.ShareAllowance.PutN(l.allowanceKey(owner, spender), amount)
}

// SpendAllowance - draw down a spender's allowance
//
// a no-op when owner and spender are the same account or when the
// allowance is Unlimited
func (l *Ledger) SpendAllowance(owner *account.Account, spender *account.Account, amount uint64) error {
	if owner.Equal(spender) {
		return nil
	}

	allowed := l.Allowance(owner, spender)
	if Unlimited == allowed {
		return nil
	}
	if allowed < amount {
		return fault.InsufficientAllowance
	}

	storage.Pool.ShareAllowance.PutN(l.allowanceKey(owner, spender), allowed-amount)
	return nil
}

// RestoreAllowance - undo a prior SpendAllowance
//
// used when a later step of the same operation fails and the whole
// operation must roll back
func (l *Ledger) RestoreAllowance(owner *account.Account, spender *account.Account, amount uint64) {
	if owner.Equal(spender) {
		return
	}

	allowed := l.Allowance(owner, spender)
	if Unlimited == allowed {
		return
	}
	storage.Pool.ShareAllowance.PutN(l.allowanceKey(owner, spender), allowed+amount)
}

// Mint - create shares for a receiver
//
// balance and supply are updated in one database transaction
func (l *Ledger) Mint(receiver *account.Account, amount uint64) error {
	balance := l.BalanceOf(receiver)
	total := l.TotalIssued()

	if balance > math.MaxUint64-amount || total > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}

	trx := storage.Trx()
	err := trx.Begin()
	if nil != err {
		return err
	}
	trx.PutN(storage.Pool.ShareQuantity, l.scoped(receiver.Bytes()), balance+amount)
	trx.PutN(storage.Pool.VaultState, l.scoped(issuedSuffix), total+amount)
	return trx.Commit()
}

// Burn - destroy shares held by an owner
//
// balance and supply are updated in one database transaction
func (l *Ledger) Burn(owner *account.Account, amount uint64) error {
	balance := l.BalanceOf(owner)
	if balance < amount {
		return fault.InsufficientShares
	}

	total := l.TotalIssued()
	if total < amount {
		// supply can never be below any single balance
		return fault.InsufficientShares
	}

	trx := storage.Trx()
	err := trx.Begin()
	if nil != err {
		return err
	}
	trx.PutN(storage.Pool.ShareQuantity, l.scoped(owner.Bytes()), balance-amount)
	trx.PutN(storage.Pool.VaultState, l.scoped(issuedSuffix), total-amount)
	return trx.Commit()
}

func (l *Ledger) scoped(key []byte) []byte {
	scoped := make([]byte, 0, len(l.scope)+len(key))
	scoped = append(scoped, l.scope...)
	return append(scoped, key...)
}

func (l *Ledger) allowanceKey(owner *account.Account, spender *account.Account) []byte {
	return append(l.scoped(owner.Bytes()), spender.Bytes()...)
}
