// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"encoding/json"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/messagebus"
)

// event bus commands
const (
	EventDeposit  = "deposit"
	EventWithdraw = "withdraw"
)

// DepositEvent - notification payload after a successful deposit or mint
type DepositEvent struct {
	Caller   string `json:"caller"`
	Receiver string `json:"receiver"`
	Assets   uint64 `json:"assets"`
	Shares   uint64 `json:"shares"`
}

// WithdrawEvent - notification payload after a successful withdraw or redeem
type WithdrawEvent struct {
	Caller   string `json:"caller"`
	Receiver string `json:"receiver"`
	Owner    string `json:"owner"`
	Assets   uint64 `json:"assets"`
	Shares   uint64 `json:"shares"`
}

func (v *Vault) notifyDeposit(caller *account.Account, receiver *account.Account, assets uint64, shares uint64) {
	payload, err := json.Marshal(DepositEvent{
		Caller:   caller.String(),
		Receiver: receiver.String(),
		Assets:   assets,
		Shares:   shares,
	})
	if nil != err {
		v.log.Errorf("deposit event marshal error: %s", err)
		return
	}
	messagebus.Bus.Events.Send(EventDeposit, payload)
}

func (v *Vault) notifyWithdraw(caller *account.Account, receiver *account.Account, owner *account.Account, assets uint64, shares uint64) {
	payload, err := json.Marshal(WithdrawEvent{
		Caller:   caller.String(),
		Receiver: receiver.String(),
		Owner:    owner.String(),
		Assets:   assets,
		Shares:   shares,
	})
	if nil != err {
		v.log.Errorf("withdraw event marshal error: %s", err)
		return
	}
	messagebus.Bus.Events.Send(EventWithdraw, payload)
}
