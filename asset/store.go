// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"math"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/fault"
	"github.com/tokenvault/vaultd/storage"
)

// Store - asset ledger backed by the database
//
// one record per holder keyed by the binary account encoding; a
// transfer rewrites both balances in a single database transaction
type Store struct {
	decimals uint64
}

// NewStore - create a database backed ledger with a declared precision
func NewStore(decimals uint64) *Store {
	return &Store{
		decimals: decimals,
	}
}

// Debit - move amount from the payer to the vault
func (s *Store) Debit(payer *account.Account, vault *account.Account, amount uint64) error {
	return s.transfer(payer, vault, amount)
}

// Credit - move amount from the vault to the receiver
func (s *Store) Credit(vault *account.Account, receiver *account.Account, amount uint64) error {
	return s.transfer(vault, receiver, amount)
}

// BalanceOf - the amount held by an account
func (s *Store) BalanceOf(owner *account.Account) uint64 {
	n, _ := storage.Pool.AssetBalance.GetN(owner.Bytes())
	return n
}

// SetBalance - overwrite an account balance, used for seeding
func (s *Store) SetBalance(owner *account.Account, amount uint64) {
	storage.Pool.AssetBalance.PutN(owner.Bytes(), amount)
}

// Decimals - the declared precision
func (s *Store) Decimals() (uint64, error) {
	return s.decimals, nil
}

func (s *Store) transfer(from *account.Account, to *account.Account, amount uint64) error {
	fromKey := from.Bytes()
	toKey := to.Bytes()

	fromBalance, _ := storage.Pool.AssetBalance.GetN(fromKey)
	if fromBalance < amount {
		return fault.InsufficientFunds
	}

	// both keys are the same record, writing debit then credit would
	// leave only the credit
	if from.Equal(to) {
		return nil
	}

	toBalance, _ := storage.Pool.AssetBalance.GetN(toKey)
	if toBalance > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}

	trx := storage.Trx()
	err := trx.Begin()
	if nil != err {
		return err
	}
	trx.PutN(storage.Pool.AssetBalance, fromKey, fromBalance-amount)
	trx.PutN(storage.Pool.AssetBalance, toKey, toBalance+amount)
	return trx.Commit()
}
