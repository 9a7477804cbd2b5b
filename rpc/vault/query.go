// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/fault"
	"github.com/tokenvault/vaultd/rpc/ratelimit"
)

// read only queries: conversions, previews, limits and balances

// AmountArguments - a plain amount for conversion and preview queries
type AmountArguments struct {
	Amount uint64 `json:"amount,string"`
}

// AmountReply - a plain converted amount
type AmountReply struct {
	Amount uint64 `json:"amount,string"`
}

// AccountArguments - an account for limit and balance queries
type AccountArguments struct {
	Account *account.Account `json:"account"` // base58
}

func (v *Vault) query(arguments *AccountArguments) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Account {
		return fault.MissingParameters
	}
	return nil
}

func (v *Vault) convert(arguments *AmountArguments, reply *AmountReply, conversion func(uint64) (uint64, error)) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	amount, err := conversion(arguments.Amount)
	if nil != err {
		return err
	}
	reply.Amount = amount
	return nil
}

// ConvertToShares - value an asset amount in shares
func (v *Vault) ConvertToShares(arguments *AmountArguments, reply *AmountReply) error {
	return v.convert(arguments, reply, v.Engine.ConvertToShares)
}

// ConvertToAssets - value a share amount in assets
func (v *Vault) ConvertToAssets(arguments *AmountArguments, reply *AmountReply) error {
	return v.convert(arguments, reply, v.Engine.ConvertToAssets)
}

// PreviewDeposit - shares a deposit would mint
func (v *Vault) PreviewDeposit(arguments *AmountArguments, reply *AmountReply) error {
	return v.convert(arguments, reply, v.Engine.PreviewDeposit)
}

// PreviewMint - assets a mint would cost
func (v *Vault) PreviewMint(arguments *AmountArguments, reply *AmountReply) error {
	return v.convert(arguments, reply, v.Engine.PreviewMint)
}

// PreviewWithdraw - shares a withdrawal would burn
func (v *Vault) PreviewWithdraw(arguments *AmountArguments, reply *AmountReply) error {
	return v.convert(arguments, reply, v.Engine.PreviewWithdraw)
}

// PreviewRedeem - assets a redemption would pay out
func (v *Vault) PreviewRedeem(arguments *AmountArguments, reply *AmountReply) error {
	return v.convert(arguments, reply, v.Engine.PreviewRedeem)
}

// MaxDeposit - largest acceptable deposit for an account
func (v *Vault) MaxDeposit(arguments *AccountArguments, reply *AmountReply) error {
	if err := v.query(arguments); nil != err {
		return err
	}
	reply.Amount = v.Engine.MaxDeposit(arguments.Account)
	return nil
}

// MaxMint - largest acceptable mint for an account
func (v *Vault) MaxMint(arguments *AccountArguments, reply *AmountReply) error {
	if err := v.query(arguments); nil != err {
		return err
	}
	reply.Amount = v.Engine.MaxMint(arguments.Account)
	return nil
}

// MaxWithdraw - most assets an account can withdraw right now
func (v *Vault) MaxWithdraw(arguments *AccountArguments, reply *AmountReply) error {
	if err := v.query(arguments); nil != err {
		return err
	}
	reply.Amount = v.Engine.MaxWithdraw(arguments.Account)
	return nil
}

// MaxRedeem - most shares an account can redeem right now
func (v *Vault) MaxRedeem(arguments *AccountArguments, reply *AmountReply) error {
	if err := v.query(arguments); nil != err {
		return err
	}
	reply.Amount = v.Engine.MaxRedeem(arguments.Account)
	return nil
}

// BalanceReply - share balance and its current asset value
type BalanceReply struct {
	Shares uint64 `json:"shares,string"`
	Assets uint64 `json:"assets,string"`
}

// Balance - share holding of an account
func (v *Vault) Balance(arguments *AccountArguments, reply *BalanceReply) error {
	if err := v.query(arguments); nil != err {
		return err
	}
	shares := v.Engine.BalanceOf(arguments.Account)
	reply.Shares = shares
	assets, err := v.Engine.ConvertToAssets(shares)
	if nil != err {
		return err
	}
	reply.Assets = assets
	return nil
}

// AllowanceArguments - an owner and spender pair
type AllowanceArguments struct {
	Owner   *account.Account `json:"owner"`   // base58
	Spender *account.Account `json:"spender"` // base58
}

// AllowanceReply - the allowance in force for the pair
type AllowanceReply struct {
	Allowance uint64 `json:"allowance,string"`
}

// Allowance - query a share spending allowance
func (v *Vault) Allowance(arguments *AllowanceArguments, reply *AllowanceReply) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner || nil == arguments.Spender {
		return fault.MissingParameters
	}
	reply.Allowance = v.Engine.Allowance(arguments.Owner, arguments.Spender)
	return nil
}

// InfoArguments - empty arguments for the pool state query
type InfoArguments struct{}

// InfoReply - the pool state
type InfoReply struct {
	Custody     string `json:"custody"` // base58
	TotalAssets uint64 `json:"totalAssets,string"`
	TotalShares uint64 `json:"totalShares,string"`
	Decimals    uint64 `json:"decimals"`
}

// Info - pool totals and fixed parameters
func (v *Vault) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}
	reply.Custody = v.Engine.Custody().String()
	reply.TotalAssets = v.Engine.TotalAssets()
	reply.TotalShares = v.Engine.TotalShares()
	reply.Decimals = v.Engine.Decimals()
	return nil
}
