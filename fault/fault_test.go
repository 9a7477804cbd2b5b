// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/tokenvault/vaultd/fault"
)

// test that an error class is detected correctly
func TestClassification(t *testing.T) {

	if !fault.IsErrLimitExceeded(fault.DepositLimitExceeded) {
		t.Errorf("deposit limit is not a limit exceeded error")
	}
	if !fault.IsErrArithmetic(fault.NoBackingAssets) {
		t.Errorf("no backing assets is not an arithmetic error")
	}
	if !fault.IsErrAllowance(fault.InsufficientAllowance) {
		t.Errorf("insufficient allowance is not an allowance error")
	}
	if !fault.IsErrTransfer(fault.InsufficientFunds) {
		t.Errorf("insufficient funds is not a transfer error")
	}
	if fault.IsErrInvalid(fault.NotInitialised) {
		t.Errorf("process error misclassified as invalid")
	}
}

// test that errors compare equal by instance
func TestComparison(t *testing.T) {

	err := func() error {
		return fault.RedeemLimitExceeded
	}()

	if fault.RedeemLimitExceeded != err {
		t.Errorf("error instance lost identity")
	}
}

// test wrapping of foreign errors into the transfer class
func TestWrapTransfer(t *testing.T) {

	if nil != fault.WrapTransfer(nil) {
		t.Errorf("wrapping nil is not nil")
	}

	wrapped := fault.WrapTransfer(errors.New("socket closed"))
	if !fault.IsErrTransfer(wrapped) {
		t.Errorf("foreign error not wrapped into transfer class")
	}

	passed := fault.WrapTransfer(fault.InsufficientFunds)
	if fault.InsufficientFunds != passed {
		t.Errorf("typed error did not pass through unchanged")
	}
}
