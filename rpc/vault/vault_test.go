// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/asset"
	"github.com/tokenvault/vaultd/fault"
	"github.com/tokenvault/vaultd/fixtures"
	"github.com/tokenvault/vaultd/mode"
	"github.com/tokenvault/vaultd/ratio"
	rpcvault "github.com/tokenvault/vaultd/rpc/vault"
	"github.com/tokenvault/vaultd/vault"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	fixtures.SetupTestStorage()
	rc := m.Run()
	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func normal(m mode.Mode) bool { return mode.Normal == m }

type testRig struct {
	service *rpcvault.Vault
	ledger  *asset.Memory
	alice   *account.Account
	aliceK  *account.PrivateKey
}

func setupService(t *testing.T, readOnly bool, requireSignatures bool) *testRig {
	t.Helper()

	ledger := asset.NewMemory(18)
	custody, _, err := account.NewKeypair(true)
	assert.NoError(t, err, "generate account")
	alice, aliceKey, err := account.NewKeypair(true)
	assert.NoError(t, err, "generate account")
	ledger.SetBalance(alice, 100000)

	engine := vault.New(ledger, custody, ratio.Policy{})
	service := rpcvault.New(logger.New("test-rpc"), normal, engine, readOnly, requireSignatures)
	return &testRig{
		service: service,
		ledger:  ledger,
		alice:   alice,
		aliceK:  aliceKey,
	}
}

func TestDeposit(t *testing.T) {
	rig := setupService(t, false, false)

	var reply rpcvault.DepositReply
	err := rig.service.Deposit(&rpcvault.DepositArguments{
		Caller:   rig.alice,
		Receiver: rig.alice,
		Assets:   1000,
	}, &reply)
	assert.NoError(t, err, "deposit")
	assert.Equal(t, uint64(1000), reply.Shares, "minted shares")

	var balance rpcvault.BalanceReply
	err = rig.service.Balance(&rpcvault.AccountArguments{Account: rig.alice}, &balance)
	assert.NoError(t, err, "balance")
	assert.Equal(t, uint64(1000), balance.Shares, "share balance")
	assert.Equal(t, uint64(1000), balance.Assets, "asset value")
}

func TestDepositMissingParameters(t *testing.T) {
	rig := setupService(t, false, false)

	var reply rpcvault.DepositReply
	err := rig.service.Deposit(&rpcvault.DepositArguments{Assets: 10}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "no accounts")
}

func TestReadOnlyRejectsMutation(t *testing.T) {
	rig := setupService(t, true, false)

	var reply rpcvault.DepositReply
	err := rig.service.Deposit(&rpcvault.DepositArguments{
		Caller:   rig.alice,
		Receiver: rig.alice,
		Assets:   10,
	}, &reply)
	assert.Equal(t, fault.NotAvailableInReadOnly, err, "read only")

	// queries still answer
	var info rpcvault.InfoReply
	err = rig.service.Info(&rpcvault.InfoArguments{}, &info)
	assert.NoError(t, err, "info in read only")
	assert.Equal(t, uint64(18), info.Decimals, "decimals")
}

func TestSignatureRequired(t *testing.T) {
	rig := setupService(t, false, true)

	// unsigned request is rejected
	var reply rpcvault.DepositReply
	err := rig.service.Deposit(&rpcvault.DepositArguments{
		Caller:   rig.alice,
		Receiver: rig.alice,
		Assets:   500,
		Nonce:    1,
	}, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "unsigned request")

	// properly signed request is accepted
	nonce := vault.LastNonce(rig.alice) + 1
	message := vault.PackRequest("deposit", rig.alice, rig.alice, nil, 500, nonce)
	err = rig.service.Deposit(&rpcvault.DepositArguments{
		Caller:    rig.alice,
		Receiver:  rig.alice,
		Assets:    500,
		Nonce:     nonce,
		Signature: rig.aliceK.Sign(message),
	}, &reply)
	assert.NoError(t, err, "signed request")
	assert.Equal(t, uint64(500), reply.Shares, "minted shares")
}

func TestRedeemOnBehalf(t *testing.T) {
	rig := setupService(t, false, false)
	bob, _, err := account.NewKeypair(true)
	assert.NoError(t, err, "generate account")

	var deposit rpcvault.DepositReply
	err = rig.service.Deposit(&rpcvault.DepositArguments{
		Caller:   rig.alice,
		Receiver: rig.alice,
		Assets:   1000,
	}, &deposit)
	assert.NoError(t, err, "deposit")

	var redeem rpcvault.RedeemReply
	err = rig.service.Redeem(&rpcvault.RedeemArguments{
		Caller:   bob,
		Receiver: bob,
		Owner:    rig.alice,
		Shares:   400,
	}, &redeem)
	assert.Equal(t, fault.InsufficientAllowance, err, "no allowance")

	var approve rpcvault.ApproveReply
	err = rig.service.Approve(&rpcvault.ApproveArguments{
		Caller:  rig.alice,
		Spender: bob,
		Shares:  400,
	}, &approve)
	assert.NoError(t, err, "approve")
	assert.Equal(t, uint64(400), approve.Allowance, "allowance set")

	err = rig.service.Redeem(&rpcvault.RedeemArguments{
		Caller:   bob,
		Receiver: bob,
		Owner:    rig.alice,
		Shares:   400,
	}, &redeem)
	assert.NoError(t, err, "redeem with allowance")
	assert.Equal(t, uint64(400), redeem.Assets, "paid assets")
	assert.Equal(t, uint64(400), rig.ledger.BalanceOf(bob), "assets delivered")
}

func TestPreviewAndMax(t *testing.T) {
	rig := setupService(t, false, false)

	var deposit rpcvault.DepositReply
	err := rig.service.Deposit(&rpcvault.DepositArguments{
		Caller:   rig.alice,
		Receiver: rig.alice,
		Assets:   2500,
	}, &deposit)
	assert.NoError(t, err, "deposit")

	var preview rpcvault.AmountReply
	err = rig.service.PreviewRedeem(&rpcvault.AmountArguments{Amount: 100}, &preview)
	assert.NoError(t, err, "preview redeem")
	assert.Equal(t, uint64(100), preview.Amount, "preview at par")

	var max rpcvault.AmountReply
	err = rig.service.MaxWithdraw(&rpcvault.AccountArguments{Account: rig.alice}, &max)
	assert.NoError(t, err, "max withdraw")
	assert.Equal(t, uint64(2500), max.Amount, "full holding withdrawable")
}
