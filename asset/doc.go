// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - the underlying asset ledger contract
//
// the vault never owns asset balances itself; it talks to an asset
// ledger through the Ledger interface and trusts nothing about the
// implementation beyond the loud-failure contract: a transfer either
// takes full effect or returns an error, silent no-ops are forbidden
//
// a ledger may additionally implement DecimalsQuerier; the vault
// probes for it exactly once at construction
package asset
