// Package barrett implements Barrett reduction and modular exponentiation:
// precomputing the reciprocal factor mu, reducing a mod m, and computing
// base^exp mod m by square-and-multiply, reducing every intermediate
// product via Barrett's division-free trick.
package barrett

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
	"math/bits"

	"github.com/bantling/bignum/arith"
	"github.com/bantling/bignum/bytesutil"
	"github.com/bantling/bignum/cmp"
	"github.com/bantling/bignum/karatsuba"
	"github.com/bantling/bignum/knuth"
)

var (
	errZeroModulusMsg      = "barrett: modulus must be non-zero"
	errPowerOfTwoModulusMsg = "barrett: modulus must not be a power of two"
	errOperandTooWideMsg   = "barrett: reduce precondition violated, a must be < m^2"
)

// Factor computes mu = floor(2^(2*|m|*8) / m), the Barrett reciprocal for
// modulus m. Panics if m is zero or a power of two.
func Factor(m []byte) []byte {
	checkModulus(m)

	k := 2 * trimmedLen(m)
	numerator := append([]byte{1}, make([]byte, k)...)

	return knuth.Divide(numerator, m)
}

// Reduce computes a mod m using the precomputed Barrett factor mu.
// Requires 0 <= a < m^2 and mu == Factor(m).
func Reduce(a, m, mu []byte) []byte {
	checkModulus(m)

	m2 := karatsuba.Multiply(m, m)
	if !cmp.LessThan(a, m2) {
		panic(fmt.Errorf(errOperandTooWideMsg))
	}

	k := trimmedLen(m)
	shift := 2 * k

	t := karatsuba.Multiply(a, mu)
	q := dropLowBytes(t, shift)
	qm := karatsuba.Multiply(q, m)

	// The result is returned without leading zero bytes, so that ModExp's
	// repeated squaring works on operands no wider than m.
	r := arith.Subtract(a, qm)
	if !cmp.LessThan(r, m) {
		r = arith.Subtract(r, m)
	}

	return r[len(r)-trimmedLen(r):]
}

// ModExp computes base^exp mod m by big-endian bit-scanned
// square-and-multiply, reducing every intermediate product via Reduce.
// ModExp(base, 0, m, mu) == 1 mod m; ModExp(0, exp, m, mu) == 0 for exp > 0.
func ModExp(base, exp, m, mu []byte) []byte {
	checkModulus(m)

	if bytesutil.IsZero(exp) {
		return Reduce([]byte{1}, m, mu)
	}

	if bytesutil.IsZero(base) {
		return []byte{0}
	}

	// The leading (most significant) bit of exp is always 1; consuming it
	// is equivalent to seeding result with the reduced base directly, so
	// the loop below only scans the remaining bits.
	b := Reduce(base, m, mu)
	result := b

	for _, bit := range bitsMSBFirst(exp) {
		result = Reduce(karatsuba.Multiply(result, result), m, mu)
		if bit {
			result = Reduce(karatsuba.Multiply(result, b), m, mu)
		}
	}

	return result
}

func checkModulus(m []byte) {
	if bytesutil.IsZero(m) {
		panic(fmt.Errorf(errZeroModulusMsg))
	}

	if isPowerOfTwo(m) {
		panic(fmt.Errorf(errPowerOfTwoModulusMsg))
	}
}

// trimmedLen returns the byte length of m with leading zero bytes ignored
// (but never less than 1).
func trimmedLen(m []byte) int {
	i := 0
	for i < len(m)-1 && m[i] == 0 {
		i++
	}

	return len(m) - i
}

// dropLowBytes implements extract(t, 0, |t|-k): an integer right-shift of
// t by k bytes (8k bits).
func dropLowBytes(t []byte, k int) []byte {
	if len(t) <= k {
		return []byte{0}
	}

	return t[:len(t)-k]
}

// isPowerOfTwo reports whether the (possibly zero-leading) big-endian
// value in m has exactly one bit set.
func isPowerOfTwo(m []byte) bool {
	ones := 0
	for _, b := range m {
		ones += bits.OnesCount8(b)
		if ones > 1 {
			return false
		}
	}

	return ones == 1
}

// bitsMSBFirst returns the bits of exp, most significant first, skipping
// leading zero bits (the top bit scanned is always a 1).
func bitsMSBFirst(exp []byte) []bool {
	var out []bool

	started := false
	for _, b := range exp {
		for i := 7; i >= 0; i-- {
			bit := (b>>uint(i))&1 == 1
			if !started && !bit {
				continue
			}
			started = true
			out = append(out, bit)
		}
	}

	if len(out) == 0 {
		return nil
	}

	// The leading 1 bit is consumed by ModExp's seeding of result = base;
	// only the remaining bits need a square-and-maybe-multiply step.
	return out[1:]
}
