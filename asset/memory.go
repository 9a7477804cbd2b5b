// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"math"
	"sync"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/fault"
)

// Memory - an in-process asset ledger
//
// used for tests and for locally seeded deployments; balances are
// keyed by the binary account encoding
type Memory struct {
	sync.Mutex
	balances map[string]uint64
	decimals uint64
}

// NewMemory - create an empty in-process ledger with a declared precision
func NewMemory(decimals uint64) *Memory {
	return &Memory{
		balances: make(map[string]uint64),
		decimals: decimals,
	}
}

// SetBalance - overwrite an account balance, used for seeding
func (m *Memory) SetBalance(owner *account.Account, amount uint64) {
	m.Lock()
	defer m.Unlock()
	m.balances[string(owner.Bytes())] = amount
}

// Debit - move amount from the payer to the vault
func (m *Memory) Debit(payer *account.Account, vault *account.Account, amount uint64) error {
	return m.transfer(payer, vault, amount)
}

// Credit - move amount from the vault to the receiver
func (m *Memory) Credit(vault *account.Account, receiver *account.Account, amount uint64) error {
	return m.transfer(vault, receiver, amount)
}

// BalanceOf - the amount held by an account
func (m *Memory) BalanceOf(owner *account.Account) uint64 {
	m.Lock()
	defer m.Unlock()
	return m.balances[string(owner.Bytes())]
}

// Decimals - the declared precision
func (m *Memory) Decimals() (uint64, error) {
	return m.decimals, nil
}

func (m *Memory) transfer(from *account.Account, to *account.Account, amount uint64) error {
	m.Lock()
	defer m.Unlock()

	fromKey := string(from.Bytes())
	toKey := string(to.Bytes())

	if m.balances[fromKey] < amount {
		return fault.InsufficientFunds
	}
	if m.balances[toKey] > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}

	m.balances[fromKey] -= amount
	m.balances[toKey] += amount
	return nil
}
