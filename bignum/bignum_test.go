package bignum

// SPDX-License-Identifier: Apache-2.0

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/bantling/bignum/karatsuba"
	"github.com/bantling/bignum/tuning"
	"github.com/stretchr/testify/assert"
)

// --- Concrete end-to-end scenarios ---

func TestScenario_add(t *testing.T) {
	got := Add([]byte{0xFF, 0xFF, 0xFF, 0xFF}, []byte{0x00, 0x00, 0x00, 0x00})
	assert.Equal(t, valueOf([]byte{0xFF, 0xFF, 0xFF, 0xFF}), valueOf(got))
}

func TestScenario_subtractEqualOperands(t *testing.T) {
	x := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	got := Subtract(x, x)
	assert.Zero(t, valueOf(got).Sign())
	// The zero result has the padded operand length: one 64-byte limb.
	assert.Len(t, got, 64)
}

func TestScenario_multiply(t *testing.T) {
	got := Multiply([]byte{0x02}, []byte{0x03})
	assert.Equal(t, int64(6), valueOf(got).Int64())
}

func TestScenario_divide(t *testing.T) {
	assert.Equal(t, int64(0x10), valueOf(Divide([]byte{0x01, 0x00}, []byte{0x10})).Int64())
	assert.Zero(t, valueOf(Divide([]byte{0x05}, []byte{0x0A})).Sign())
}

func TestScenario_extremeDivision(t *testing.T) {
	r := rand.New(rand.NewSource(41))

	u := new(big.Int).Lsh(big.NewInt(1), 3600).Bytes()
	v := make([]byte, 256)
	r.Read(v)
	v[len(v)-1] |= 1

	got := valueOf(Divide(u, v))
	want := new(big.Int).Div(new(big.Int).SetBytes(u), new(big.Int).SetBytes(v))
	assert.Equal(t, want, got)
}

func TestScenario_barrettModExp(t *testing.T) {
	m := []byte{0x0B}
	mu := BarrettReducerFactor(m)

	got := ModExpBarrettReduce([]byte{0x02}, []byte{0x0A}, m, mu)
	assert.Equal(t, int64(1), valueOf(got).Int64())
}

// --- Property-based checks ---

func TestAdd_matchesBigIntSum(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		a, b := randomBytes(r), randomBytes(r)

		got := valueOf(Add(a, b))
		want := new(big.Int).Add(valueOf(a), valueOf(b))
		assert.Equal(t, want, got)
	}
}

func TestSubtract_matchesBigIntDifference(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 2000; i++ {
		bi := valueOf(randomBytes(r))
		extra := valueOf(randomBytes(r))
		ai := new(big.Int).Add(bi, extra)

		got := valueOf(Subtract(ai.Bytes(), bi.Bytes()))
		assert.Equal(t, extra, got)
	}
}

func TestSubtract_undoesAdd(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		a, b := randomBytes(r), randomBytes(r)

		got := valueOf(Subtract(Add(a, b), b))
		assert.Equal(t, valueOf(a), got)
	}
}

func TestMultiply_matchesBigIntProduct(t *testing.T) {
	r := rand.New(rand.NewSource(4))

	for i := 0; i < 1000; i++ {
		a, b := randomBytes(r), randomBytes(r)

		got := valueOf(Multiply(a, b))
		want := new(big.Int).Mul(valueOf(a), valueOf(b))
		assert.Equal(t, want, got)
	}
}

func TestMultiply_associativitySpotCheck(t *testing.T) {
	r := rand.New(rand.NewSource(5))

	for i := 0; i < 30; i++ {
		a, b, c := randomBytes(r), randomBytes(r), randomBytes(r)

		left := valueOf(Multiply(Multiply(a, b), c))
		right := valueOf(Multiply(a, Multiply(b, c)))
		assert.Equal(t, left, right)
	}
}

func TestDivide_satisfiesQuotientRemainderIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(6))

	for i := 0; i < 1000; i++ {
		a := randomBytes(r)
		c := nonZeroRandomBytes(r)

		q := valueOf(Divide(a, c))
		ai, ci := valueOf(a), valueOf(c)

		rem := new(big.Int).Sub(ai, new(big.Int).Mul(q, ci))
		assert.True(t, rem.Sign() >= 0 && rem.Cmp(ci) < 0, "a=%s c=%s rem=%s", ai, ci, rem)
	}
}

func TestDivide_dividendSmallerThanDivisorIsZero(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		c := nonZeroRandomBytes(r)
		smaller := new(big.Int).Mod(new(big.Int).Rand(r, valueOf(c)), valueOf(c))

		got := valueOf(Divide(smaller.Bytes(), c))
		assert.Zero(t, got.Sign())
	}
}

func TestComparators_exactlyOneHolds(t *testing.T) {
	r := rand.New(rand.NewSource(8))

	for i := 0; i < 2000; i++ {
		a, b := randomBytes(r), randomBytes(r)

		votes := 0
		if Equal(a, b) {
			votes++
		}
		if LessThan(a, b) {
			votes++
		}
		if GreaterThan(a, b) {
			votes++
		}
		assert.Equal(t, 1, votes)
	}
}

func TestModBarrettReduce_matchesBigIntMod(t *testing.T) {
	r := rand.New(rand.NewSource(9))

	for i := 0; i < 300; i++ {
		m := oddNonPowerOfTwo(r, 40)
		mu := BarrettReducerFactor(m)

		mi := valueOf(m)
		m2 := new(big.Int).Mul(mi, mi)
		a := new(big.Int).Rand(r, m2)

		got := valueOf(ModBarrettReduce(a.Bytes(), m, mu))
		want := new(big.Int).Mod(a, mi)
		assert.Equal(t, want, got)
	}
}

func TestModExpBarrettReduce_matchesBigIntExp(t *testing.T) {
	r := rand.New(rand.NewSource(10))

	for i := 0; i < 100; i++ {
		m := oddNonPowerOfTwo(r, 24)
		mu := BarrettReducerFactor(m)
		mi := valueOf(m)

		base := new(big.Int).Mod(new(big.Int).Rand(r, mi), mi)
		exp := new(big.Int).Rand(r, big.NewInt(1<<20))
		if exp.Sign() == 0 {
			exp = big.NewInt(1)
		}

		got := valueOf(ModExpBarrettReduce(base.Bytes(), exp.Bytes(), m, mu))
		want := new(big.Int).Exp(base, exp, mi)
		// Compared as decimal strings: a zero big.Int from Exp and one from
		// SetBytes have different internal forms.
		assert.Equal(t, want.String(), got.String())
	}
}

func TestOperations_invariantUnderLeftZeroPadding(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		a, b := randomBytes(r), randomBytes(r)

		padA := append(make([]byte, r.Intn(16)), a...)
		padB := append(make([]byte, r.Intn(16)), b...)

		assert.Equal(t, valueOf(Add(a, b)), valueOf(Add(padA, padB)))
		assert.Equal(t, valueOf(Multiply(a, b)), valueOf(Multiply(padA, padB)))
		assert.Equal(t, Equal(a, b), Equal(padA, padB))
		assert.Equal(t, LessThan(a, b), LessThan(padA, padB))
	}
}

func TestApplyTuning_overridesKaratsubaThreshold(t *testing.T) {
	original := karatsuba.BaseCaseThreshold
	defer func() { karatsuba.BaseCaseThreshold = original }()

	ApplyTuning(tuning.Tuning{KaratsubaThreshold: 128})
	assert.Equal(t, 128, karatsuba.BaseCaseThreshold)
}

func TestLoadTuning_decodesAndApplies(t *testing.T) {
	original := karatsuba.BaseCaseThreshold
	defer func() { karatsuba.BaseCaseThreshold = original }()

	LoadTuning(strings.NewReader("[tuning_]\nkaratsuba_threshold = 192\n"))
	assert.Equal(t, 192, karatsuba.BaseCaseThreshold)
}

func TestLoadTuning_multiplyStillCorrectUnderOverriddenThreshold(t *testing.T) {
	original := karatsuba.BaseCaseThreshold
	defer func() { karatsuba.BaseCaseThreshold = original }()

	LoadTuning(strings.NewReader("[tuning_]\nkaratsuba_threshold = 128\n"))

	r := rand.New(rand.NewSource(53))
	a, b := randomBytes(r), randomBytes(r)

	got := valueOf(Multiply(a, b))
	want := new(big.Int).Mul(valueOf(a), valueOf(b))
	assert.Equal(t, want, got)
}

// --- Helpers ---

func valueOf(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

func randomBytes(r *rand.Rand) []byte {
	n := r.Intn(1024) + 1
	b := make([]byte, n)
	r.Read(b)

	return b
}

func nonZeroRandomBytes(r *rand.Rand) []byte {
	for {
		b := randomBytes(r)
		if !isZeroBytes(b) {
			return b
		}
	}
}

func isZeroBytes(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}

	return true
}

func oddNonPowerOfTwo(r *rand.Rand, maxLen int) []byte {
	n := r.Intn(maxLen) + 1
	b := make([]byte, n)
	r.Read(b)
	b[len(b)-1] |= 1
	if valueOf(b).Cmp(big.NewInt(1)) == 0 {
		b[len(b)-1] = 3 // 1 is 2^0
	}

	return b
}
