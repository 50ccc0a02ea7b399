// Package biglimb implements the fixed-width arithmetic primitive the rest
// of the kernel is built on: add, subtract (via two's complement) and
// multiply of 64-byte (512-bit) big-endian chunks, called a BigLimb.
//
// The primitive is deliberately hand-rolled out of uint64 words using
// 32-bit-split addition and schoolbook word multiplication rather than
// math/bits.Add64/Mul64, mirroring how a host environment that only offers
// a bounded-width multiply/add (e.g. a 64x64->128 native op) would have to
// compose wider results: generalized here from a single 128-bit pair of
// words to an 8-word, 512-bit limb.
package biglimb

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
)

// Width is the byte width of a BigLimb (W in spec terms).
const Width = 64

const wordCount = Width / 8 // 8 uint64 words per limb

const (
	mask32 uint64 = 0xFF_FF_FF_FF
)

var errWrongWidthMsg = "biglimb: value must be exactly %d bytes, got %d"

// BigLimb is a 512-bit unsigned integer, stored as 8 big-endian uint64
// words (index 0 is most significant).
type BigLimb [wordCount]uint64

// FromBytes decodes a 64-byte big-endian buffer into a BigLimb.
func FromBytes(b []byte) BigLimb {
	if len(b) != Width {
		panic(fmt.Errorf(errWrongWidthMsg, Width, len(b)))
	}

	var l BigLimb
	for i := 0; i < wordCount; i++ {
		var w uint64
		for j := 0; j < 8; j++ {
			w = (w << 8) | uint64(b[i*8+j])
		}
		l[i] = w
	}

	return l
}

// Bytes encodes a BigLimb as a 64-byte big-endian buffer.
func (l BigLimb) Bytes() []byte {
	out := make([]byte, Width)
	for i := 0; i < wordCount; i++ {
		w := l[i]
		for j := 7; j >= 0; j-- {
			out[i*8+j] = byte(w)
			w >>= 8
		}
	}

	return out
}

// addWord adds a, b and a 0/1 carry-in, returning a 0/1 carry-out and the
// low 64 bits of the sum, via the usual 32-bit split technique extended
// with a carry-in term.
func addWord(a, b, carryIn uint64) (carryOut, sum uint64) {
	var (
		alo, ahi = a & mask32, a >> 32
		blo, bhi = b & mask32, b >> 32

		lo      = alo + blo + carryIn
		loCarry = lo >> 32
	)
	lo &= mask32

	hi := ahi + bhi + loCarry
	carryOut = hi >> 32
	hi &= mask32

	sum = (hi << 32) | lo

	return
}

// Add adds two BigLimbs, returning a 0/1 carry-out and the 512-bit sum.
func (a BigLimb) Add(b BigLimb) (carry uint64, sum BigLimb) {
	var carryIn uint64
	for i := wordCount - 1; i >= 0; i-- {
		carryIn, sum[i] = addWord(a[i], b[i], carryIn)
	}
	carry = carryIn

	return
}

// TwosComplement returns the two's complement (bitwise invert, add one) of
// a BigLimb, used by the subtracter to turn subtraction into addition.
func (a BigLimb) TwosComplement() BigLimb {
	var inverted BigLimb
	for i := range a {
		inverted[i] = a[i] ^ 0xFF_FF_FF_FF_FF_FF_FF_FF
	}

	var one BigLimb
	one[wordCount-1] = 1

	_, result := inverted.Add(one)

	return result
}

// mulWord multiplies two uint64 words, returning the 128-bit product as
// (hi, lo), via grid multiplication after splitting each operand into
// 32-bit halves.
func mulWord(mp, ma uint64) (hi, lo uint64) {
	add4 := func(v1, v2, v3, v4 uint64) (carry, result uint64) {
		res := v1 + v2 + v3 + v4
		carry = res >> 32
		result = res & mask32

		return
	}

	var (
		lmp, hmp = mp & mask32, mp >> 32
		lma, hma = ma & mask32, ma >> 32

		bd = lmp * lma
		bc = lmp * hma
		ad = hmp * lma
		ac = hmp * hma

		h         = bd & mask32
		gCarry, g = add4(0, bd>>32, bc&mask32, ad&mask32)
		fCarry, f = add4(gCarry, bc>>32, ad>>32, ac&mask32)
		e         = fCarry + (ac >> 32)
	)

	lo = (g << 32) | h
	hi = (e << 32) | f

	return
}

// addAt adds val into acc at word index idx, rippling any carry toward
// more-significant (lower-index) words.
func addAt(acc []uint64, idx int, val uint64) {
	for val != 0 && idx >= 0 {
		sum := acc[idx] + val

		var carry uint64
		if sum < acc[idx] {
			carry = 1
		}

		acc[idx] = sum
		val = carry
		idx--
	}
}

// Mul multiplies two BigLimbs, producing the up-to-1024-bit product as 16
// big-endian uint64 words (index 0 most significant). This is the base
// case the Karatsuba multiplier delegates to once operands have been
// narrowed to a single limb.
func (a BigLimb) Mul(b BigLimb) [2 * wordCount]uint64 {
	var acc [2 * wordCount]uint64

	for i := wordCount - 1; i >= 0; i-- {
		for j := wordCount - 1; j >= 0; j-- {
			hi, lo := mulWord(a[i], b[j])
			// a[i] has significance (wordCount-1-i), b[j] has significance
			// (wordCount-1-j); their product's low word lands at
			// acc index 1+i+j, high word at acc index i+j.
			addAt(acc[:], 1+i+j, lo)
			addAt(acc[:], i+j, hi)
		}
	}

	return acc
}

// MulBytes multiplies two BigLimbs and returns the product as a 128-byte
// big-endian buffer.
func (a BigLimb) MulBytes(b BigLimb) []byte {
	words := a.Mul(b)
	out := make([]byte, 2*Width)

	for i, w := range words {
		for j := 7; j >= 0; j-- {
			out[i*8+j] = byte(w)
			w >>= 8
		}
	}

	return out
}
