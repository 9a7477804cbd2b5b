// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/fault"
	"github.com/tokenvault/vaultd/mode"
	"github.com/tokenvault/vaultd/rpc/ratelimit"
	"github.com/tokenvault/vaultd/vault"
)

const (
	rateLimitVault = 200
	rateBurstVault = 100
)

// Vault - type for RPC calls
type Vault struct {
	Log               *logger.L
	Limiter           *rate.Limiter
	IsNormalMode      func(mode.Mode) bool
	Engine            *vault.Vault
	ReadOnly          bool
	RequireSignatures bool
}

// New - create the vault RPC service
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	engine *vault.Vault,
	readOnly bool,
	requireSignatures bool,
) *Vault {
	return &Vault{
		Log:               log,
		Limiter:           rate.NewLimiter(rateLimitVault, rateBurstVault),
		IsNormalMode:      isNormalMode,
		Engine:            engine,
		ReadOnly:          readOnly,
		RequireSignatures: requireSignatures,
	}
}

// gate common to all mutating operations
func (v *Vault) mutable() error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}
	if v.ReadOnly {
		return fault.NotAvailableInReadOnly
	}
	if !v.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}
	return nil
}

// verify the caller's signature over the canonical request when the
// daemon demands authenticated operations
func (v *Vault) authenticate(operation string, caller *account.Account, receiver *account.Account, owner *account.Account, amount uint64, nonce uint64, signature account.Signature) error {
	if !v.RequireSignatures {
		return nil
	}
	return vault.VerifyRequest(operation, caller, receiver, owner, amount, nonce, signature)
}

// Deposit
// -------

// DepositArguments - pay assets in for shares
type DepositArguments struct {
	Caller    *account.Account  `json:"caller"`   // base58
	Receiver  *account.Account  `json:"receiver"` // base58
	Assets    uint64            `json:"assets,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature,omitempty"` // hex
}

// DepositReply - shares minted for the deposit
type DepositReply struct {
	Shares uint64 `json:"shares,string"`
}

// Deposit - deposit a fixed asset amount
func (v *Vault) Deposit(arguments *DepositArguments, reply *DepositReply) error {

	if err := v.mutable(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller || nil == arguments.Receiver {
		return fault.MissingParameters
	}

	v.Log.Infof("Vault.Deposit: %+v", arguments)

	err := v.authenticate("deposit", arguments.Caller, arguments.Receiver, nil, arguments.Assets, arguments.Nonce, arguments.Signature)
	if nil != err {
		return err
	}

	shares, err := v.Engine.Deposit(arguments.Caller, arguments.Receiver, arguments.Assets)
	if nil != err {
		return err
	}

	reply.Shares = shares
	return nil
}

// Mint
// ----

// MintArguments - buy a fixed share amount
type MintArguments struct {
	Caller    *account.Account  `json:"caller"`   // base58
	Receiver  *account.Account  `json:"receiver"` // base58
	Shares    uint64            `json:"shares,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature,omitempty"` // hex
}

// MintReply - assets charged for the mint
type MintReply struct {
	Assets uint64 `json:"assets,string"`
}

// Mint - mint a fixed share amount
func (v *Vault) Mint(arguments *MintArguments, reply *MintReply) error {

	if err := v.mutable(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller || nil == arguments.Receiver {
		return fault.MissingParameters
	}

	v.Log.Infof("Vault.Mint: %+v", arguments)

	err := v.authenticate("mint", arguments.Caller, arguments.Receiver, nil, arguments.Shares, arguments.Nonce, arguments.Signature)
	if nil != err {
		return err
	}

	assets, err := v.Engine.Mint(arguments.Caller, arguments.Receiver, arguments.Shares)
	if nil != err {
		return err
	}

	reply.Assets = assets
	return nil
}

// Withdraw
// --------

// WithdrawArguments - take a fixed asset amount out
type WithdrawArguments struct {
	Caller    *account.Account  `json:"caller"`   // base58
	Receiver  *account.Account  `json:"receiver"` // base58
	Owner     *account.Account  `json:"owner"`    // base58
	Assets    uint64            `json:"assets,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature,omitempty"` // hex
}

// WithdrawReply - shares burned for the withdrawal
type WithdrawReply struct {
	Shares uint64 `json:"shares,string"`
}

// Withdraw - withdraw a fixed asset amount
func (v *Vault) Withdraw(arguments *WithdrawArguments, reply *WithdrawReply) error {

	if err := v.mutable(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller || nil == arguments.Receiver || nil == arguments.Owner {
		return fault.MissingParameters
	}

	v.Log.Infof("Vault.Withdraw: %+v", arguments)

	err := v.authenticate("withdraw", arguments.Caller, arguments.Receiver, arguments.Owner, arguments.Assets, arguments.Nonce, arguments.Signature)
	if nil != err {
		return err
	}

	shares, err := v.Engine.Withdraw(arguments.Caller, arguments.Receiver, arguments.Owner, arguments.Assets)
	if nil != err {
		return err
	}

	reply.Shares = shares
	return nil
}

// Redeem
// ------

// RedeemArguments - burn a fixed share amount for assets
type RedeemArguments struct {
	Caller    *account.Account  `json:"caller"`   // base58
	Receiver  *account.Account  `json:"receiver"` // base58
	Owner     *account.Account  `json:"owner"`    // base58
	Shares    uint64            `json:"shares,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature,omitempty"` // hex
}

// RedeemReply - assets paid out for the redemption
type RedeemReply struct {
	Assets uint64 `json:"assets,string"`
}

// Redeem - redeem a fixed share amount
func (v *Vault) Redeem(arguments *RedeemArguments, reply *RedeemReply) error {

	if err := v.mutable(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller || nil == arguments.Receiver || nil == arguments.Owner {
		return fault.MissingParameters
	}

	v.Log.Infof("Vault.Redeem: %+v", arguments)

	err := v.authenticate("redeem", arguments.Caller, arguments.Receiver, arguments.Owner, arguments.Shares, arguments.Nonce, arguments.Signature)
	if nil != err {
		return err
	}

	assets, err := v.Engine.Redeem(arguments.Caller, arguments.Receiver, arguments.Owner, arguments.Shares)
	if nil != err {
		return err
	}

	reply.Assets = assets
	return nil
}

// Approve
// -------

// ApproveArguments - grant a spender access to the caller's shares
type ApproveArguments struct {
	Caller    *account.Account  `json:"caller"`  // base58
	Spender   *account.Account  `json:"spender"` // base58
	Shares    uint64            `json:"shares,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature,omitempty"` // hex
}

// ApproveReply - the allowance now in force
type ApproveReply struct {
	Allowance uint64 `json:"allowance,string"`
}

// Approve - set a share spending allowance
func (v *Vault) Approve(arguments *ApproveArguments, reply *ApproveReply) error {

	if err := v.mutable(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller || nil == arguments.Spender {
		return fault.MissingParameters
	}

	v.Log.Infof("Vault.Approve: %+v", arguments)

	err := v.authenticate("approve", arguments.Caller, arguments.Spender, nil, arguments.Shares, arguments.Nonce, arguments.Signature)
	if nil != err {
		return err
	}

	v.Engine.Approve(arguments.Caller, arguments.Spender, arguments.Shares)
	reply.Allowance = v.Engine.Allowance(arguments.Caller, arguments.Spender)
	return nil
}
