// Package knuth implements Knuth's Algorithm D: multi-digit long
// division with normalization, 3-digit quotient estimation,
// multiply-and-subtract, and an add-back correction that only decrements
// the quotient digit estimate without re-adding the divisor, replicated
// verbatim from the reference this kernel was derived from.
package knuth

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
	"math/big"

	"github.com/bantling/bignum/bytesutil"
	"github.com/bantling/bignum/digit"
)

var (
	errZeroDivisorMsg  = "knuth: division by zero"
	errDivisorDigitsMsg = "knuth: divisor must decode to at least one digit"
)

// Divide returns floor(u/v) as a big-endian byte string.
// Panics if v is zero.
func Divide(u, v []byte) []byte {
	if bytesutil.IsZero(v) {
		panic(fmt.Errorf(errZeroDivisorMsg))
	}

	if bytesutil.IsZero(u) {
		return []byte{0}
	}

	uRaw := digit.ToDigits(u)
	vRaw := digit.ToDigits(v)

	n := len(vRaw) - 1
	if n < 1 {
		panic(fmt.Errorf(errDivisorDigitsMsg))
	}

	if len(uRaw) < len(vRaw) {
		return []byte{0}
	}

	m := len(uRaw) - len(vRaw)

	v1Raw := new(big.Int).Set(vRaw[1])
	if n == 1 {
		q, _ := digit.DivideWord(uRaw, v1Raw)
		return q
	}

	// D2: normalize so the divisor's leading digit is >= B/2.
	norm := new(big.Int).Div(digit.Base, new(big.Int).Add(v1Raw, big.NewInt(1)))

	u_ := append(digit.Vector{}, uRaw...)
	v_ := append(digit.Vector{}, vRaw...)
	digit.MultiplyWord(u_, m+n, norm)
	digit.MultiplyWord(v_, n, norm)

	v1 := v_[1]
	v2 := v_[2]

	q := make(digit.Vector, 0, m+1)

	for j := 0; j <= m; j++ {
		uj := u_[j]
		uj1 := u_[j+1]

		// D3: estimate the quotient digit.
		qpart := new(big.Int).Mul(digit.Base, uj)
		qpart.Add(qpart, uj1)

		qhat := new(big.Int).Div(qpart, v1)
		if uj.Cmp(v1) >= 0 {
			qhat = new(big.Int).Sub(digit.Base, big.NewInt(1))
		}

		uj2 := u_[j+2]

		qhatTest := func() *big.Int {
			t := new(big.Int).Mul(qhat, v1)
			t2 := new(big.Int).Div(new(big.Int).Mul(qhat, v2), digit.Base)
			return t.Add(t, t2)
		}
		qhatCond := new(big.Int).Add(qpart, new(big.Int).Div(uj2, digit.Base))

		for qhatTest().Cmp(qhatCond) > 0 {
			qhat.Sub(qhat, big.NewInt(1))
		}

		// D4: multiply and subtract, tracking a signed running borrow.
		c := big.NewInt(0)
		cIsNeg := false

		for i := n; i >= 1; i-- {
			uji := u_[j+i]
			vi := v_[i]

			qhatVi := new(big.Int).Mul(qhat, vi)

			if cIsNeg {
				if uji.Cmp(new(big.Int).Add(qhatVi, c)) >= 0 {
					p := new(big.Int).Sub(uji, new(big.Int).Add(qhatVi, c))
					mod := new(big.Int).Mod(p, digit.Base)
					u_[j+i] = mod
					c = new(big.Int).Div(p, digit.Base)
					cIsNeg = false
				} else {
					p := new(big.Int).Sub(new(big.Int).Add(qhatVi, c), uji)
					mod := new(big.Int).Sub(digit.Base, new(big.Int).Mod(p, digit.Base))
					u_[j+i] = mod
					c = new(big.Int).Add(new(big.Int).Div(p, digit.Base), big.NewInt(1))
					cIsNeg = true
				}
			} else {
				ujic := new(big.Int).Add(uji, c)
				if ujic.Cmp(qhatVi) >= 0 {
					p := new(big.Int).Sub(ujic, qhatVi)
					mod := new(big.Int).Mod(p, digit.Base)
					u_[j+i] = mod
					c = new(big.Int).Div(p, digit.Base)
					cIsNeg = false
				} else {
					p := new(big.Int).Sub(qhatVi, ujic)
					mod := new(big.Int).Sub(digit.Base, new(big.Int).Mod(p, digit.Base))
					u_[j+i] = mod
					c = new(big.Int).Add(new(big.Int).Div(p, digit.Base), big.NewInt(1))
					cIsNeg = true
				}
			}
		}

		// D5/D6: the reference's add-back merely decrements qhat; it does
		// not re-add v into u[j..j+n]. Preserved verbatim, including the
		// third clause below, which in practice almost never triggers
		// since c and uj are both bounded under digit.Base.
		if c.Cmp(uj) > 0 && cIsNeg && new(big.Int).Sub(c, uj).Cmp(digit.Base) >= 0 {
			qhat.Sub(qhat, big.NewInt(1))
		}

		q = append(q, qhat)
	}

	return digit.FromDigits(q)
}
