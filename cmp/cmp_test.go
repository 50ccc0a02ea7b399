package cmp

// SPDX-License-Identifier: Apache-2.0

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrichotomy_(t *testing.T) {
	cases := [][2][]byte{
		{{0x00, 0x01}, {0x01}},
		{{0x01}, {0x00, 0x01}},
		{{0x00, 0x2A}, {0x2A}},
		{{}, {0x00}},
	}

	for _, c := range cases {
		eq, lt, gt := Equal(c[0], c[1]), LessThan(c[0], c[1]), GreaterThan(c[0], c[1])
		count := 0
		for _, b := range []bool{eq, lt, gt} {
			if b {
				count++
			}
		}
		assert.Equal(t, 1, count, "exactly one of equal/less/greater for %x vs %x", c[0], c[1])
	}
}

func TestTrichotomy_random(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		a := randomBytes(r, 64)
		b := randomBytes(r, 64)

		ai, bi := new(big.Int).SetBytes(a), new(big.Int).SetBytes(b)

		assert.Equal(t, ai.Cmp(bi) == 0, Equal(a, b))
		assert.Equal(t, ai.Cmp(bi) < 0, LessThan(a, b))
		assert.Equal(t, ai.Cmp(bi) > 0, GreaterThan(a, b))
	}
}

func randomBytes(r *rand.Rand, maxLen int) []byte {
	n := r.Intn(maxLen) + 1
	b := make([]byte, n)
	r.Read(b)

	return b
}
