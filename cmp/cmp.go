// Package cmp implements the three-way comparison of big-endian byte
// strings: Equal, LessThan and GreaterThan. Exactly one is true for any
// pair of inputs.
package cmp

// SPDX-License-Identifier: Apache-2.0

import "github.com/bantling/bignum/bytesutil"

// Equal reports whether a and b denote the same non-negative integer,
// regardless of leading zero padding.
func Equal(a, b []byte) bool {
	width := max(len(a), len(b))
	pa, pb := bytesutil.Pad(a, width), bytesutil.Pad(b, width)

	for i := range pa {
		if pa[i] != pb[i] {
			return false
		}
	}

	return true
}

// LessThan reports whether a denotes a strictly smaller integer than b.
func LessThan(a, b []byte) bool {
	width := max(len(a), len(b))
	pa, pb := bytesutil.Pad(a, width), bytesutil.Pad(b, width)

	for i := range pa {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}

	return false
}

// GreaterThan reports whether a denotes a strictly larger integer than b.
func GreaterThan(a, b []byte) bool {
	return LessThan(b, a)
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
