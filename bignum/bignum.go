// Package bignum is the public surface of the library: big-endian
// unsigned arbitrary-precision arithmetic over byte strings, composing
// the adder/subtracter (arith), comparators (cmp), Karatsuba multiplier
// (karatsuba), Knuth Algorithm D divider (knuth), and Barrett reducer
// (barrett) packages. Every operation takes and returns opaque
// big-endian byte strings; there is no environment, filesystem,
// network, or persistent state.
package bignum

// SPDX-License-Identifier: Apache-2.0

import (
	"io"

	"github.com/bantling/bignum/arith"
	"github.com/bantling/bignum/barrett"
	"github.com/bantling/bignum/cmp"
	"github.com/bantling/bignum/karatsuba"
	"github.com/bantling/bignum/knuth"
	"github.com/bantling/bignum/tuning"
)

// Add returns a + b.
func Add(a, b []byte) []byte {
	return arith.Add(a, b)
}

// Subtract returns a - b. Requires a >= b; the result is undefined
// (not panicking) when that precondition does not hold.
func Subtract(a, b []byte) []byte {
	return arith.Subtract(a, b)
}

// Equal reports whether a and b denote the same value.
func Equal(a, b []byte) bool {
	return cmp.Equal(a, b)
}

// LessThan reports whether a denotes a smaller value than b.
func LessThan(a, b []byte) bool {
	return cmp.LessThan(a, b)
}

// GreaterThan reports whether a denotes a larger value than b.
func GreaterThan(a, b []byte) bool {
	return cmp.GreaterThan(a, b)
}

// Multiply returns a * b via recursive Karatsuba multiplication.
func Multiply(a, b []byte) []byte {
	return karatsuba.Multiply(a, b)
}

// Divide returns floor(u/v) via Knuth's Algorithm D. Panics if v is
// zero.
func Divide(u, v []byte) []byte {
	return knuth.Divide(u, v)
}

// BarrettReducerFactor computes mu, the Barrett reciprocal for modulus
// m. Panics if m is zero or a power of two.
func BarrettReducerFactor(m []byte) []byte {
	return barrett.Factor(m)
}

// ModBarrettReduce returns a mod m using the precomputed factor mu.
// Requires 0 <= a < m^2 and mu == BarrettReducerFactor(m).
func ModBarrettReduce(a, m, mu []byte) []byte {
	return barrett.Reduce(a, m, mu)
}

// ModExpBarrettReduce returns base^exp mod m, reducing every
// intermediate product via ModBarrettReduce.
func ModExpBarrettReduce(base, exp, m, mu []byte) []byte {
	return barrett.ModExp(base, exp, m, mu)
}

// ApplyTuning overrides Multiply's Karatsuba base-case threshold with the
// value from a loaded Tuning.
func ApplyTuning(t tuning.Tuning) {
	karatsuba.BaseCaseThreshold = t.KaratsubaThreshold
}

// LoadTuning decodes a TOML tuning document from src and applies it to
// Multiply's Karatsuba base-case threshold.
func LoadTuning(src io.Reader) {
	ApplyTuning(tuning.Load(src))
}
