// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"fmt"

	"github.com/tokenvault/vaultd/account"
	rpcnode "github.com/tokenvault/vaultd/rpc/node"
	vaultrpc "github.com/tokenvault/vaultd/rpc/vault"
)

// GetBalance - share holding of an account and its asset value
func (client *Client) GetBalance(owner *account.Account) (*vaultrpc.BalanceReply, error) {

	balanceArgs := vaultrpc.AccountArguments{
		Account: owner,
	}

	client.printJson("Balance Request", balanceArgs)

	reply := &vaultrpc.BalanceReply{}
	err := client.client.Call("Vault.Balance", balanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}

// GetAllowance - the allowance in force for an owner and spender pair
func (client *Client) GetAllowance(owner *account.Account, spender *account.Account) (*vaultrpc.AllowanceReply, error) {

	allowanceArgs := vaultrpc.AllowanceArguments{
		Owner:   owner,
		Spender: spender,
	}

	client.printJson("Allowance Request", allowanceArgs)

	reply := &vaultrpc.AllowanceReply{}
	err := client.client.Call("Vault.Allowance", allowanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Allowance Reply", reply)

	return reply, nil
}

// GetVaultInfo - pool totals and fixed parameters
func (client *Client) GetVaultInfo() (*vaultrpc.InfoReply, error) {
	var reply vaultrpc.InfoReply
	if err := client.client.Call("Vault.Info", vaultrpc.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// GetNodeInfo - request status from vaultd
func (client *Client) GetNodeInfo() (*rpcnode.InfoReply, error) {
	var reply rpcnode.InfoReply
	if err := client.client.Call("Node.Info", rpcnode.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// conversion and preview query selector
var conversionCalls = map[string]string{
	"to-shares": "Vault.ConvertToShares",
	"to-assets": "Vault.ConvertToAssets",
	"deposit":   "Vault.PreviewDeposit",
	"mint":      "Vault.PreviewMint",
	"withdraw":  "Vault.PreviewWithdraw",
	"redeem":    "Vault.PreviewRedeem",
}

// Convert - run one of the conversion or preview queries
func (client *Client) Convert(operation string, amount uint64) (*vaultrpc.AmountReply, error) {

	call, ok := conversionCalls[operation]
	if !ok {
		return nil, fmt.Errorf("unknown conversion: %q", operation)
	}

	convertArgs := vaultrpc.AmountArguments{
		Amount: amount,
	}

	client.printJson("Convert Request", convertArgs)

	reply := &vaultrpc.AmountReply{}
	err := client.client.Call(call, convertArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Convert Reply", reply)

	return reply, nil
}

// limit query selector
var limitCalls = map[string]string{
	"deposit":  "Vault.MaxDeposit",
	"mint":     "Vault.MaxMint",
	"withdraw": "Vault.MaxWithdraw",
	"redeem":   "Vault.MaxRedeem",
}

// Max - run one of the operation limit queries for an account
func (client *Client) Max(operation string, owner *account.Account) (*vaultrpc.AmountReply, error) {

	call, ok := limitCalls[operation]
	if !ok {
		return nil, fmt.Errorf("unknown limit: %q", operation)
	}

	maxArgs := vaultrpc.AccountArguments{
		Account: owner,
	}

	client.printJson("Max Request", maxArgs)

	reply := &vaultrpc.AmountReply{}
	err := client.client.Call(call, maxArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Max Reply", reply)

	return reply, nil
}
