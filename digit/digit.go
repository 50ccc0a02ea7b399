// Package digit implements the digit-vector codec used by Knuth
// Algorithm D, plus the single-digit short multiply/divide helpers
// that operate on it.
//
// A digit is a base-B = 2^256 value. Digits are represented as *big.Int
// rather than a hand-rolled 256-bit word type: the reference
// implementation (original_source/puya_bignumber/bignumber.py) itself
// performs digit-level arithmetic through the host runtime's arbitrary
// precision BigUInt type, so math/big plays that same role here.
package digit

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
	"math/big"

	"github.com/bantling/bignum/bytesutil"
)

// Size is the byte width of one digit (32 bytes = 256 bits, base B).
const Size = 32

// Base is B = 2^256, the base Knuth Algorithm D operates in.
var Base = new(big.Int).Lsh(big.NewInt(1), 256)

var errNegativeDigitMsg = "digit: digit value must be non-negative, got %s"

// Vector is a big-endian digit vector with a leading sentinel zero digit
// at index 0. For an integer with k
// digits, len(vector) == k+1 and the most significant digit is at index 1.
type Vector []*big.Int

// ToDigits decodes a big-endian byte string into a Vector: left-pads v to
// a multiple of Size, splits it into Size-byte digits, and prefixes a zero
// sentinel digit.
func ToDigits(v []byte) Vector {
	padded := bytesutil.PadAsMultiple(v, Size)
	n := len(padded) / Size

	digits := make(Vector, n+1)
	digits[0] = big.NewInt(0)

	for i := 0; i < n; i++ {
		digits[i+1] = new(big.Int).SetBytes(padded[i*Size : (i+1)*Size])
	}

	return digits
}

// FromDigits serializes a Vector (including its sentinel) back to a
// big-endian byte string: the concatenation of each digit's 32-byte
// representation. Unlike the ABI-bound reference, which prepends a 2-byte
// dynamic-array length the caller must strip via bytesutil.DecodeDynamic,
// this kernel has no such calling convention, so the raw concatenation is
// returned directly.
func FromDigits(d Vector) []byte {
	out := make([]byte, Size*len(d))

	for i, dg := range d {
		if dg.Sign() < 0 {
			panic(fmt.Errorf(errNegativeDigitMsg, dg.String()))
		}

		b := dg.Bytes()
		copy(out[(i+1)*Size-len(b):(i+1)*Size], b)
	}

	return out
}

// MultiplyWord scales d[1..n] in place by a single-digit multiplier word,
// base B, writing the final carry into the
// sentinel slot d[0].
func MultiplyWord(d Vector, n int, word *big.Int) {
	carry := big.NewInt(0)

	for i := n; i >= 1; i-- {
		p := new(big.Int).Mul(word, d[i])
		p.Add(p, carry)

		mod := new(big.Int)
		div := new(big.Int)
		div.DivMod(p, Base, mod)

		d[i] = mod
		carry = div
	}

	d[0] = carry
}

// DivideWord performs single-digit long division of the whole vector d by
// a single-digit divisor v, base B. It returns
// the quotient digit vector (the mutated d, serialized) and the
// remainder.
func DivideWord(d Vector, v *big.Int) ([]byte, *big.Int) {
	remainder := big.NewInt(0)

	for i := 0; i < len(d); i++ {
		p := new(big.Int).Mul(remainder, Base)
		p.Add(p, d[i])

		q := new(big.Int)
		r := new(big.Int)
		q.DivMod(p, v, r)

		d[i] = q
		remainder = r
	}

	return FromDigits(d), remainder
}
