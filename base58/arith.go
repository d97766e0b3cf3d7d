package base58

import "math/bits"

const (
	// radix 58^10, the largest power of 58 that fits in a word.
	radix uint64 = 58 * 58 * 58 * 58 * 58 * 58 * 58 * 58 * 58 * 58
	// radixReciprocal is ⎣(2^128-1)/d⎦-2^64 where d is radix normalized
	// (shifted left until its top bit is set).
	radixReciprocal uint64 = 0x568df8b76cbf212c
	// radixDigits 一个字所能容纳的 base58 位数
	radixDigits = 10
)

// mulAddWord returns x*y+c as (hi, lo).
func mulAddWord(x, y, c uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	var cc uint64
	lo, cc = bits.Add64(lo, c, 0)
	return hi + cc, lo
}

// divWord returns the quotient and remainder of (x1<<64 | x0) / y, where
// m is the reciprocal of y after normalization. It requires x1 < y.
func divWord(x1, x0, y, m uint64) (q, r uint64) {
	s := uint(bits.LeadingZeros64(y))
	if s != 0 {
		x1 = x1<<s | x0>>(64-s)
		x0 <<= s
		y <<= s
	}

	t1, t0 := bits.Mul64(m, x1)
	_, c := bits.Add64(t0, x0, 0)
	t1, _ = bits.Add64(t1, x1, c)

	// The quotient is t1, t1+1 or t1+2.
	q = t1
	dq1, dq0 := bits.Mul64(y, q)
	r0, b := bits.Sub64(x0, dq0, 0)
	r1, _ := bits.Sub64(x1, dq1, b)
	if r1 != 0 {
		q++
		r0 -= y
	}
	if r0 >= y {
		q++
		r0 -= y
	}
	return q, r0 >> s
}

// reciprocal computes the value divWord expects as m for the divisor d.
func reciprocal(d uint64) uint64 {
	u := d << uint(bits.LeadingZeros64(d))
	rec, _ := bits.Div64(^u, ^uint64(0), u)
	return rec
}
