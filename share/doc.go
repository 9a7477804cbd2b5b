// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package share - the vault's own unit of account
//
// tracks per-holder share balances, the aggregate issued supply and
// delegated spending allowances; every multi-record mutation is staged
// through a single database transaction so that the supply and the
// balances can never disagree
package share
