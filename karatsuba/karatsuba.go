// Package karatsuba implements the recursive Karatsuba multiplier,
// delegating to biglimb's fixed-width primitive once operands have been
// narrowed down to a single limb.
package karatsuba

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/bignum/arith"
	"github.com/bantling/bignum/bytesutil"
	"github.com/bantling/bignum/math/biglimb"
)

// BaseCaseThreshold is the operand width (in bytes) at or below which
// Multiply delegates directly to the host primitive instead of recursing.
// The host primitive takes a single BigLimb, so the base case is also
// bounded by biglimb.Width: a threshold above biglimb.Width behaves the
// same as biglimb.Width. It defaults to one BigLimb and may be overridden
// via bignum.ApplyTuning.
var BaseCaseThreshold = biglimb.Width

// Multiply returns the big-endian byte string whose value is x*y
// computed by recursive Karatsuba multiplication.
func Multiply(x, y []byte) []byte {
	length := bytesutil.EnclosingMultiple(maxInt(len(x), len(y)), biglimb.Width)
	px, py := bytesutil.Pad(x, length), bytesutil.Pad(y, length)

	if length <= BaseCaseThreshold && length <= biglimb.Width {
		xl := biglimb.FromBytes(bytesutil.Pad(px, biglimb.Width))
		yl := biglimb.FromBytes(bytesutil.Pad(py, biglimb.Width))

		return xl.MulBytes(yl)
	}

	firstHalf := length / 2
	secondHalf := length - firstHalf

	xLeft, xRight := px[:firstHalf], px[firstHalf:]
	yLeft, yRight := py[:firstHalf], py[firstHalf:]

	p1 := Multiply(xLeft, yLeft)
	p2 := Multiply(xRight, yRight)
	p3 := Multiply(arith.Add(xLeft, xRight), arith.Add(yLeft, yRight))
	p4 := arith.Subtract(arith.Subtract(p3, p1), p2)

	shiftedP1 := shiftLeft(p1, 2*secondHalf)
	shiftedP4 := shiftLeft(p4, secondHalf)

	return arith.Add(arith.Add(shiftedP1, shiftedP4), p2)
}

// shiftLeft multiplies v by 256^n by appending n zero bytes.
func shiftLeft(v []byte, n int) []byte {
	out := make([]byte, len(v)+n)
	copy(out, v)

	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
