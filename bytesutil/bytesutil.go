// Package bytesutil provides the small byte-slice helpers the rest of the
// kernel builds on: left-padding to a fixed width, rounding a length up to
// the next multiple of a limb width, and stripping a length-prefix some
// callers use to serialize dynamic byte arrays.
package bytesutil

// SPDX-License-Identifier: Apache-2.0

import "fmt"

var (
	errPadTooNarrowMsg = "bytesutil: cannot pad %d bytes to width %d, value is already wider"
	errDecodeTooShortMsg = "bytesutil: cannot decode dynamic bytes, value has length %d, need at least 2"
)

// Pad left-pads v with zero bytes until it is exactly width bytes long.
// Panics if v is already wider than width.
func Pad(v []byte, width int) []byte {
	if len(v) > width {
		panic(fmt.Errorf(errPadTooNarrowMsg, len(v), width))
	}

	if len(v) == width {
		return v
	}

	out := make([]byte, width)
	copy(out[width-len(v):], v)

	return out
}

// EnclosingMultiple returns the smallest multiple of m that is >= n.
// Returns n unchanged if n is already a multiple of m.
func EnclosingMultiple(n, m int) int {
	missing := m - n%m

	return n + missing%m
}

// PadAsMultiple left-pads v to the enclosing multiple of m.
func PadAsMultiple(v []byte, m int) []byte {
	return Pad(v, EnclosingMultiple(len(v), m))
}

// DecodeDynamic strips a 2-byte big-endian length prefix, as produced when
// serializing a dynamic byte array (e.g. an ABI-encoded dynamic array of
// digits). Callers whose byte strings never carry such a prefix (the
// common case inside this module) do not need this function.
func DecodeDynamic(v []byte) []byte {
	if len(v) < 2 {
		panic(fmt.Errorf(errDecodeTooShortMsg, len(v)))
	}

	return v[2:]
}

// IsZero reports whether v is empty or consists entirely of zero bytes.
func IsZero(v []byte) bool {
	for _, b := range v {
		if b != 0 {
			return false
		}
	}

	return true
}
