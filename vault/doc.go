// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - pooled asset custody paying out proportional shares
//
// a Vault binds one external asset ledger and one custody account for
// its whole lifetime; accounts deposit assets and receive shares that
// represent a pro-rata claim on the pool
//
// the four mutating operations follow a strict effect order: deposit
// and mint complete the asset transfer before any shares are minted,
// withdraw and redeem burn shares before the asset transfer is issued;
// a transfer hook that calls back into the vault therefore always
// observes settled state
//
// every inexact conversion is rounded against the initiating party so
// that rounding can never extract value from the pool
package vault
