// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratio

import (
	"math"
	"math/bits"

	"github.com/tokenvault/vaultd/fault"
)

// Rounding - the direction truncation takes on an inexact division
type Rounding int

// possible rounding directions
const (
	Down Rounding = iota // truncate toward zero
	Up                   // round away from zero
)

// String - rounding direction as text
func (r Rounding) String() string {
	switch r {
	case Down:
		return "Down"
	case Up:
		return "Up"
	default:
		return "*Unknown*"
	}
}

// MulDiv - compute x*y/d with the multiply done at 128 bits
//
// an inexact division is rounded in the requested direction
// fails if d is zero or the quotient cannot fit in 64 bits
func MulDiv(x uint64, y uint64, d uint64, rounding Rounding) (uint64, error) {
	if 0 == d {
		return 0, fault.DivisionByZero
	}

	hi, lo := bits.Mul64(x, y)
	if hi >= d {
		return 0, fault.QuotientOverflow
	}

	q, remainder := bits.Div64(hi, lo, d)
	if Up == rounding && 0 != remainder {
		if math.MaxUint64 == q {
			return 0, fault.QuotientOverflow
		}
		q += 1
	}
	return q, nil
}
