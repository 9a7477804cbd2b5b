// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/tokenvault/vaultd/account"
	vaultrpc "github.com/tokenvault/vaultd/rpc/vault"
	"github.com/tokenvault/vaultd/vault"
)

// a nanosecond clock gives a strictly increasing nonce as long as the
// same identity is not used from two machines in the same instant
func makeNonce() uint64 {
	return uint64(time.Now().UnixNano())
}

// sign the canonical request form, a nil key leaves the signature
// empty for daemons that do not demand one
func signRequest(key *account.PrivateKey, operation string, caller *account.Account, receiver *account.Account, owner *account.Account, amount uint64, nonce uint64) account.Signature {
	if nil == key {
		return nil
	}
	packed := vault.PackRequest(operation, caller, receiver, owner, amount, nonce)
	return key.Sign(packed)
}

// DepositData - the parameters for a deposit request
type DepositData struct {
	Key      *account.PrivateKey
	Caller   *account.Account
	Receiver *account.Account
	Assets   uint64
}

// Deposit - pay assets in for shares
func (client *Client) Deposit(depositConfig *DepositData) (*vaultrpc.DepositReply, error) {

	nonce := makeNonce()
	depositArgs := vaultrpc.DepositArguments{
		Caller:    depositConfig.Caller,
		Receiver:  depositConfig.Receiver,
		Assets:    depositConfig.Assets,
		Nonce:     nonce,
		Signature: signRequest(depositConfig.Key, "deposit", depositConfig.Caller, depositConfig.Receiver, nil, depositConfig.Assets, nonce),
	}

	client.printJson("Deposit Request", depositArgs)

	reply := &vaultrpc.DepositReply{}
	err := client.client.Call("Vault.Deposit", depositArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Deposit Reply", reply)

	return reply, nil
}

// MintData - the parameters for a mint request
type MintData struct {
	Key      *account.PrivateKey
	Caller   *account.Account
	Receiver *account.Account
	Shares   uint64
}

// Mint - buy an exact number of shares
func (client *Client) Mint(mintConfig *MintData) (*vaultrpc.MintReply, error) {

	nonce := makeNonce()
	mintArgs := vaultrpc.MintArguments{
		Caller:    mintConfig.Caller,
		Receiver:  mintConfig.Receiver,
		Shares:    mintConfig.Shares,
		Nonce:     nonce,
		Signature: signRequest(mintConfig.Key, "mint", mintConfig.Caller, mintConfig.Receiver, nil, mintConfig.Shares, nonce),
	}

	client.printJson("Mint Request", mintArgs)

	reply := &vaultrpc.MintReply{}
	err := client.client.Call("Vault.Mint", mintArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Mint Reply", reply)

	return reply, nil
}

// WithdrawData - the parameters for a withdraw request
type WithdrawData struct {
	Key      *account.PrivateKey
	Caller   *account.Account
	Receiver *account.Account
	Owner    *account.Account
	Assets   uint64
}

// Withdraw - take an exact asset amount out
func (client *Client) Withdraw(withdrawConfig *WithdrawData) (*vaultrpc.WithdrawReply, error) {

	nonce := makeNonce()
	withdrawArgs := vaultrpc.WithdrawArguments{
		Caller:    withdrawConfig.Caller,
		Receiver:  withdrawConfig.Receiver,
		Owner:     withdrawConfig.Owner,
		Assets:    withdrawConfig.Assets,
		Nonce:     nonce,
		Signature: signRequest(withdrawConfig.Key, "withdraw", withdrawConfig.Caller, withdrawConfig.Receiver, withdrawConfig.Owner, withdrawConfig.Assets, nonce),
	}

	client.printJson("Withdraw Request", withdrawArgs)

	reply := &vaultrpc.WithdrawReply{}
	err := client.client.Call("Vault.Withdraw", withdrawArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Withdraw Reply", reply)

	return reply, nil
}

// RedeemData - the parameters for a redeem request
type RedeemData struct {
	Key      *account.PrivateKey
	Caller   *account.Account
	Receiver *account.Account
	Owner    *account.Account
	Shares   uint64
}

// Redeem - burn an exact number of shares for assets
func (client *Client) Redeem(redeemConfig *RedeemData) (*vaultrpc.RedeemReply, error) {

	nonce := makeNonce()
	redeemArgs := vaultrpc.RedeemArguments{
		Caller:    redeemConfig.Caller,
		Receiver:  redeemConfig.Receiver,
		Owner:     redeemConfig.Owner,
		Shares:    redeemConfig.Shares,
		Nonce:     nonce,
		Signature: signRequest(redeemConfig.Key, "redeem", redeemConfig.Caller, redeemConfig.Receiver, redeemConfig.Owner, redeemConfig.Shares, nonce),
	}

	client.printJson("Redeem Request", redeemArgs)

	reply := &vaultrpc.RedeemReply{}
	err := client.client.Call("Vault.Redeem", redeemArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Redeem Reply", reply)

	return reply, nil
}

// ApproveData - the parameters for an approve request
type ApproveData struct {
	Key     *account.PrivateKey
	Caller  *account.Account
	Spender *account.Account
	Shares  uint64
}

// Approve - set a share spending allowance
func (client *Client) Approve(approveConfig *ApproveData) (*vaultrpc.ApproveReply, error) {

	nonce := makeNonce()
	approveArgs := vaultrpc.ApproveArguments{
		Caller:    approveConfig.Caller,
		Spender:   approveConfig.Spender,
		Shares:    approveConfig.Shares,
		Nonce:     nonce,
		Signature: signRequest(approveConfig.Key, "approve", approveConfig.Caller, approveConfig.Spender, nil, approveConfig.Shares, nonce),
	}

	client.printJson("Approve Request", approveArgs)

	reply := &vaultrpc.ApproveReply{}
	err := client.client.Call("Vault.Approve", approveArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Approve Reply", reply)

	return reply, nil
}
