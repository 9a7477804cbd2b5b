// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratio - asset to share exchange arithmetic
//
// all conversions are a multiply-then-divide computed with a 128 bit
// intermediate so the multiply can never overflow silently; the caller
// states the rounding direction explicitly on every conversion
//
// a Policy carries the degenerate-pool behaviour: the empty pool
// bootstrap strategy and the optional virtual offsets that harden the
// exchange rate against donation style manipulation
package ratio
