// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database containing a number of pools,
// one pool per record family, distinguished by a one byte prefix on
// every key
//
// vault balances are spread over several pools, so all mutations of a
// single logical operation are staged in one batch transaction and
// either committed together or discarded together
package storage
