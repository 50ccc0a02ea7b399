// Package arith implements the schoolbook carry-propagating adder and
// two's-complement subtracter over arbitrary-length big-endian byte
// strings, built on top of the fixed-width biglimb.BigLimb primitive.
package arith

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/bignum/bytesutil"
	"github.com/bantling/bignum/math/biglimb"
)

// Add returns the big-endian byte string whose value is the sum of a and
// b. The result's length is a multiple of
// biglimb.Width, or exactly one byte longer when the final carry does not
// fit.
func Add(a, b []byte) []byte {
	length := bytesutil.EnclosingMultiple(max(len(a), len(b)), biglimb.Width)
	pa, pb := bytesutil.Pad(a, length), bytesutil.Pad(b, length)

	n := length / biglimb.Width
	result := make([]byte, length)

	var carryIn uint64
	for i := n - 1; i >= 0; i-- {
		lo := i * biglimb.Width
		al := biglimb.FromBytes(pa[lo : lo+biglimb.Width])
		bl := biglimb.FromBytes(pb[lo : lo+biglimb.Width])

		sumCarry, sum := al.Add(bl)

		// Fold the caller-supplied carry-in as a second addition, exactly
		// limb sum first, then add the running
		// carry, combining the two carry bits produced.
		var carryLimb biglimb.BigLimb
		carryLimb[len(carryLimb)-1] = carryIn
		carryInCarry, withCarry := sum.Add(carryLimb)

		copy(result[lo:lo+biglimb.Width], withCarry.Bytes())
		carryIn = sumCarry + carryInCarry
	}

	if carryIn == 0 {
		return result
	}

	return append([]byte{byte(carryIn)}, result...)
}

// Subtract returns the big-endian byte string whose value is a - b.
// Requires a >= b; behavior is unspecified (not checked) when
// a < b, per the reference implementation this kernel replicates.
func Subtract(a, b []byte) []byte {
	if len(a) == 0 || bytesutil.IsZero(a) || len(b) == 0 || bytesutil.IsZero(b) {
		return a
	}

	length := bytesutil.EnclosingMultiple(max(len(a), len(b)), biglimb.Width)
	pa, pb := bytesutil.Pad(a, length), bytesutil.Pad(b, length)

	if bytesEqual(pa, pb) {
		return make([]byte, length)
	}

	onesComplement := make([]byte, length)
	for i, v := range pb {
		onesComplement[i] = ^v
	}

	one := make([]byte, length)
	one[length-1] = 1

	twosComplement := Add(onesComplement, one)
	aInvB := Add(pa, twosComplement)

	// Add's output may be one byte wider than length (the overflow bit of
	// the two's-complement trick); drop it.
	return aInvB[len(aInvB)-length:]
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
