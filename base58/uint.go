package base58

import "encoding/binary"

// maxWords is the word count of the widest supported value (64 bytes).
const maxWords = 8

// fixedUint is an unsigned integer of n 64-bit words, little-endian by
// word: words[0] is the least significant. Words at or above n are
// always zero.
type fixedUint struct {
	words [maxWords]uint64
	n     int
}

// newFixedUint returns zero with room for size bytes. size must be a
// multiple of 8 no larger than 8*maxWords.
func newFixedUint(size int) fixedUint {
	if size%8 != 0 || size <= 0 || size > 8*maxWords {
		panic(bug("unsupported integer width"))
	}
	return fixedUint{n: size / 8}
}

// setBytes loads b as a big-endian integer. len(b) must equal 8*x.n.
func (x *fixedUint) setBytes(b []byte) {
	if len(b) != 8*x.n {
		panic(bug("byte count does not match word count"))
	}
	for i := 0; i < x.n; i++ {
		end := len(b) - 8*i
		x.words[i] = binary.BigEndian.Uint64(b[end-8 : end])
	}
}

// fillBytes stores x into b in big-endian order. len(b) must equal 8*x.n.
func (x *fixedUint) fillBytes(b []byte) {
	if len(b) != 8*x.n {
		panic(bug("byte count does not match word count"))
	}
	for i := 0; i < x.n; i++ {
		end := len(b) - 8*i
		binary.BigEndian.PutUint64(b[end-8:end], x.words[i])
	}
}

// isZero reports whether x == 0.
func (x *fixedUint) isZero() bool {
	for i := x.n - 1; i >= 0; i-- {
		if x.words[i] != 0 {
			return false
		}
	}
	return true
}

// fma sets x = x*y + r and reports whether the result overflowed the
// width of x. On overflow x holds the truncated value.
func (x *fixedUint) fma(y, r uint64) (overflowed bool) {
	c := r
	for i := 0; i < x.n; i++ {
		c, x.words[i] = mulAddWord(x.words[i], y, c)
	}
	return c != 0
}

// divRadix sets x = x / 58^10 and returns x mod 58^10.
func (x *fixedUint) divRadix() uint64 {
	var r uint64
	for i := x.n - 1; i >= 0; i-- {
		x.words[i], r = divWord(r, x.words[i], radix, radixReciprocal)
	}
	return r
}

// cmp compares x and y word by word, most significant first, and returns
// -1, 0 or +1. Both operands must have the same width.
func (x *fixedUint) cmp(y *fixedUint) int {
	if x.n != y.n {
		panic(bug("comparing integers of different widths"))
	}
	for i := x.n - 1; i >= 0; i-- {
		switch {
		case x.words[i] < y.words[i]:
			return -1
		case x.words[i] > y.words[i]:
			return 1
		}
	}
	return 0
}
