// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratio_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tokenvault/vaultd/fault"
	"github.com/tokenvault/vaultd/ratio"
)

// test the wide multiply-then-divide
func TestMulDiv(t *testing.T) {

	testData := []struct {
		x, y, d  uint64
		rounding ratio.Rounding
		expected uint64
		err      error
	}{
		{100, 500, 1000, ratio.Down, 50, nil},
		{50, 1000, 500, ratio.Down, 100, nil},
		{10, 3, 9, ratio.Down, 3, nil},
		{10, 3, 9, ratio.Up, 4, nil},
		{10, 3, 10, ratio.Up, 3, nil}, // exact: no rounding adjustment
		{0, 5, 7, ratio.Up, 0, nil},
		// the multiply exceeds 64 bits but the quotient does not
		{math.MaxUint64, 1000, 2000, ratio.Down, math.MaxUint64 / 2, nil},
		{math.MaxUint64, 2, 2, ratio.Down, math.MaxUint64, nil},
		// quotient too large for 64 bits
		{math.MaxUint64, 3, 2, ratio.Down, 0, fault.QuotientOverflow},
		{1, 1, 0, ratio.Down, 0, fault.DivisionByZero},
	}

	for i, item := range testData {
		q, err := ratio.MulDiv(item.x, item.y, item.d, item.rounding)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, q, "%d: %d*%d/%d %s", i, item.x, item.y, item.d, item.rounding)
	}
}

// worked example: pool of 1000 assets backing 500 shares
func TestWorkedExample(t *testing.T) {

	var p ratio.Policy

	shares, err := p.ToShares(100, 1000, 500, ratio.Down)
	assert.Nil(t, err, "conversion failed")
	assert.Equal(t, uint64(50), shares, "wrong shares")

	assets, err := p.ToAssets(50, 1000, 500, ratio.Down)
	assert.Nil(t, err, "conversion failed")
	assert.Equal(t, uint64(100), assets, "wrong assets")
}

// empty pool: both conversions are the identity
func TestBootstrap(t *testing.T) {

	var p ratio.Policy

	for _, x := range []uint64{0, 1, 999, math.MaxUint64} {
		shares, err := p.ToShares(x, 0, 0, ratio.Down)
		assert.Nil(t, err, "conversion failed")
		assert.Equal(t, x, shares, "bootstrap shares not identity")

		assets, err := p.ToAssets(x, 0, 0, ratio.Down)
		assert.Nil(t, err, "conversion failed")
		assert.Equal(t, x, assets, "bootstrap assets not identity")
	}

	// donated assets with no shares outstanding still bootstrap 1:1
	shares, err := p.ToShares(77, 12345, 0, ratio.Down)
	assert.Nil(t, err, "conversion failed")
	assert.Equal(t, uint64(77), shares, "donation broke bootstrap")
}

// an alternative bootstrap strategy is injectable
type scaledBootstrap struct {
	scale uint64
}

func (b scaledBootstrap) ToShares(assets uint64) uint64 { return assets * b.scale }
func (b scaledBootstrap) ToAssets(shares uint64) uint64 { return shares / b.scale }

func TestBootstrapInjection(t *testing.T) {

	p := ratio.Policy{Bootstrap: scaledBootstrap{scale: 100}}

	shares, err := p.ToShares(7, 0, 0, ratio.Down)
	assert.Nil(t, err, "conversion failed")
	assert.Equal(t, uint64(700), shares, "injected bootstrap ignored")
}

// shares outstanding against zero assets: assets to shares must fail
func TestNoBackingAssets(t *testing.T) {

	var p ratio.Policy

	_, err := p.ToShares(1, 0, 100, ratio.Down)
	assert.Equal(t, fault.NoBackingAssets, err, "infinite rate not detected")

	// zero amount short-circuits before the rate is formed
	shares, err := p.ToShares(0, 0, 100, ratio.Down)
	assert.Nil(t, err, "zero conversion failed")
	assert.Equal(t, uint64(0), shares, "zero conversion not zero")

	// the reverse direction has a well defined rate of zero
	assets, err := p.ToAssets(50, 0, 100, ratio.Down)
	assert.Nil(t, err, "shares to assets failed")
	assert.Equal(t, uint64(0), assets, "worthless shares valued")
}

// no value creation: toAssets(toShares(a, Down), Down) never exceeds a
func TestNoValueCreation(t *testing.T) {

	var p ratio.Policy

	pools := []struct{ totalAssets, totalShares uint64 }{
		{1000, 500},
		{999, 1000},
		{1, 1000000},
		{3333333, 7},
		{math.MaxUint64 / 3, 12345},
	}

	amounts := []uint64{0, 1, 2, 99, 1000, 123456789}

	for _, pool := range pools {
		for _, a := range amounts {
			shares, err := p.ToShares(a, pool.totalAssets, pool.totalShares, ratio.Down)
			assert.Nil(t, err, "toShares failed")

			back, err := p.ToAssets(shares, pool.totalAssets, pool.totalShares, ratio.Down)
			assert.Nil(t, err, "toAssets failed")

			assert.True(t, back <= a,
				"pool %d/%d: %d assets round trip to %d",
				pool.totalAssets, pool.totalShares, a, back)
		}
	}
}

// rounding direction is honoured on inexact conversions
func TestRoundingDirection(t *testing.T) {

	var p ratio.Policy

	// 10 assets at rate 3 shares per 9 assets: exact 3.33…
	down, err := p.ToShares(10, 9, 3, ratio.Down)
	assert.Nil(t, err, "down conversion failed")
	up, err := p.ToShares(10, 9, 3, ratio.Up)
	assert.Nil(t, err, "up conversion failed")

	assert.Equal(t, uint64(3), down, "wrong down rounding")
	assert.Equal(t, uint64(4), up, "wrong up rounding")
}

// virtual offsets shift the rate and close the empty pool special case
func TestVirtualOffsets(t *testing.T) {

	p := ratio.Policy{VirtualShares: 1000000, VirtualAssets: 1}

	// empty pool: the offsets price the first deposit, not the bootstrap
	shares, err := p.ToShares(1, 0, 0, ratio.Down)
	assert.Nil(t, err, "conversion failed")
	assert.Equal(t, uint64(1000000), shares, "offset rate wrong")

	// with offsets the decollateralized pool keeps a finite rate
	shares, err = p.ToShares(10, 0, 100, ratio.Down)
	assert.Nil(t, err, "offset pool conversion failed")
	assert.True(t, shares > 0, "offset pool minted nothing")
}
