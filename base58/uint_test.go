package base58

import (
	"bytes"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomBytes(rnd *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rnd.Read(b)
	return b
}

func TestFixedUintBytes(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, width := range []int{8, 16, 32, 64} {
		src := randomBytes(rnd, width)
		x := newFixedUint(width)
		x.setBytes(src)

		dst := make([]byte, width)
		x.fillBytes(dst)
		require.Equal(t, src, dst)

		// Word 0 holds the last eight bytes.
		require.Equal(t, new(big.Int).SetBytes(src[width-8:]).Uint64(), x.words[0])
	}
}

func TestFixedUintWidth(t *testing.T) {
	require.Panics(t, func() { newFixedUint(0) })
	require.Panics(t, func() { newFixedUint(12) })
	require.Panics(t, func() { newFixedUint(72) })

	x := newFixedUint(16)
	require.Panics(t, func() { x.setBytes(make([]byte, 32)) })
	require.Panics(t, func() { x.fillBytes(make([]byte, 8)) })
}

func TestFixedUintIsZero(t *testing.T) {
	x := newFixedUint(32)
	require.True(t, x.isZero())

	x.words[3] = 1
	require.False(t, x.isZero())

	x.words[3] = 0
	x.words[0] = 1
	require.False(t, x.isZero())
}

func TestFixedUintFMA(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for _, width := range []int{16, 32, 64} {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(8*width))
		for i := 0; i < 200; i++ {
			src := randomBytes(rnd, width)
			y, r := rnd.Uint64(), rnd.Uint64()
			if i%2 == 0 {
				y %= radix
				src[0], src[1] = 0, 0
			}

			x := newFixedUint(width)
			x.setBytes(src)
			overflowed := x.fma(y, r)

			want := new(big.Int).SetBytes(src)
			want.Mul(want, new(big.Int).SetUint64(y))
			want.Add(want, new(big.Int).SetUint64(r))
			require.Equal(t, want.Cmp(limit) >= 0, overflowed)

			got := make([]byte, width)
			x.fillBytes(got)
			want.Mod(want, limit)
			require.Equal(t, want.FillBytes(make([]byte, width)), got)
		}
	}
}

func TestFixedUintFMAOverflowEdge(t *testing.T) {
	x := newFixedUint(16)
	x.setBytes(bytes.Repeat([]byte{0xff}, 16))
	require.False(t, x.fma(1, 0))
	require.True(t, x.fma(1, 1))
	require.True(t, x.isZero())
}

func TestFixedUintDivRadix(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	bigRadix := new(big.Int).SetUint64(radix)
	for _, width := range []int{16, 32, 64} {
		for i := 0; i < 200; i++ {
			src := randomBytes(rnd, width)
			x := newFixedUint(width)
			x.setBytes(src)
			r := x.divRadix()

			q, m := new(big.Int).DivMod(new(big.Int).SetBytes(src), bigRadix, new(big.Int))
			require.Equal(t, m.Uint64(), r)

			got := make([]byte, width)
			x.fillBytes(got)
			require.Equal(t, q.FillBytes(make([]byte, width)), got)
		}
	}
}

func TestFixedUintCmp(t *testing.T) {
	a, b := newFixedUint(32), newFixedUint(32)
	require.Equal(t, 0, a.cmp(&b))

	a.words[0] = 5
	require.Equal(t, 1, a.cmp(&b))
	require.Equal(t, -1, b.cmp(&a))

	b.words[1] = 1
	require.Equal(t, -1, a.cmp(&b))

	a.words[3] = 1
	require.Equal(t, 1, a.cmp(&b))

	c := newFixedUint(16)
	require.Panics(t, func() { a.cmp(&c) })
}
