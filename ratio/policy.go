// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratio

import (
	"github.com/tokenvault/vaultd/fault"
)

// Bootstrap - exchange strategy for a pool with no shares outstanding
//
// injected into a Policy so the empty pool behaviour is composition,
// not a subclass override
type Bootstrap interface {
	ToShares(assets uint64) uint64
	ToAssets(shares uint64) uint64
}

// OneToOne - the default bootstrap: amounts pass through unchanged
type OneToOne struct{}

func (OneToOne) ToShares(assets uint64) uint64 { return assets }
func (OneToOne) ToAssets(shares uint64) uint64 { return shares }

// Policy - conversion behaviour for degenerate pool states
//
// the zero value reproduces the plain pro-rata exchange: 1:1
// bootstrap, no offsets, no minimum
type Policy struct {
	VirtualShares  uint64    // added to total shares in every conversion
	VirtualAssets  uint64    // added to total assets in every conversion
	MinimumDeposit uint64    // deposits below this fail, zero disables
	Bootstrap      Bootstrap // nil means OneToOne
}

// ToShares - convert an asset amount to shares at the pool's rate
//
// rate is totalShares/totalAssets with the policy offsets applied;
// when no shares are outstanding the bootstrap strategy prices the
// conversion instead
//
// fails with an arithmetic error when shares are outstanding against
// zero backing assets: the rate would be infinite
func (p Policy) ToShares(assets uint64, totalAssets uint64, totalShares uint64, rounding Rounding) (uint64, error) {

	totalShares, err := offset(totalShares, p.VirtualShares)
	if nil != err {
		return 0, err
	}

	if 0 == totalShares {
		return p.bootstrap().ToShares(assets), nil
	}

	if 0 == assets {
		return 0, nil
	}

	totalAssets, err = offset(totalAssets, p.VirtualAssets)
	if nil != err {
		return 0, err
	}
	if 0 == totalAssets {
		return 0, fault.NoBackingAssets
	}

	return MulDiv(assets, totalShares, totalAssets, rounding)
}

// ToAssets - convert a share amount to assets at the pool's rate
//
// rate is totalAssets/totalShares with the policy offsets applied;
// when no shares are outstanding the bootstrap strategy prices the
// conversion instead
func (p Policy) ToAssets(shares uint64, totalAssets uint64, totalShares uint64, rounding Rounding) (uint64, error) {

	totalShares, err := offset(totalShares, p.VirtualShares)
	if nil != err {
		return 0, err
	}

	if 0 == totalShares {
		return p.bootstrap().ToAssets(shares), nil
	}

	if 0 == shares {
		return 0, nil
	}

	totalAssets, err = offset(totalAssets, p.VirtualAssets)
	if nil != err {
		return 0, err
	}

	return MulDiv(shares, totalAssets, totalShares, rounding)
}

func (p Policy) bootstrap() Bootstrap {
	if nil == p.Bootstrap {
		return OneToOne{}
	}
	return p.Bootstrap
}

// add a virtual offset, refusing to wrap
func offset(total uint64, virtual uint64) (uint64, error) {
	sum := total + virtual
	if sum < total {
		return 0, fault.BalanceOverflow
	}
	return sum, nil
}
