// Package base58 encodes fixed-size byte arrays (16, 32 and 64 bytes) as
// fixed-width Base58 text.
//
// The encoded text is always the same length for a given width: values are
// padded on the left with the zero digit '1'. The conversion works on
// fixed-width words ten digits at a time and never allocates, so the
// String16, String32 and String64 types can live entirely on the stack.
package base58

import "github.com/pkg/errors"

const (
	// base58 编码基数表
	alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	invalidDigit = 0xff
)

// decodeMap maps a byte to its digit value, or invalidDigit.
var decodeMap = func() (m [256]byte) {
	for i := range m {
		m[i] = invalidDigit
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = byte(i)
	}
	return m
}()

// radii[i] is 58^i. radii[0] is never used: chunks are never empty.
var radii = [radixDigits + 1]uint64{
	0,
	58,
	58 * 58,
	58 * 58 * 58,
	58 * 58 * 58 * 58,
	58 * 58 * 58 * 58 * 58,
	58 * 58 * 58 * 58 * 58 * 58,
	58 * 58 * 58 * 58 * 58 * 58 * 58,
	58 * 58 * 58 * 58 * 58 * 58 * 58 * 58,
	58 * 58 * 58 * 58 * 58 * 58 * 58 * 58 * 58,
	radix,
}

// Text is any byte string accepted by the decoders.
type Text interface {
	~string | ~[]byte
}

// ValidWidth reports whether width is a supported byte width.
func ValidWidth(width int) bool {
	switch width {
	case 16, 32, 64:
		return true
	}
	return false
}

// EncodedSize returns the length of the encoded text of a width-byte value.
func EncodedSize(width int) int {
	return width * 1375 / 1000
}

// EncodeToString encodes b, which must be 16, 32 or 64 bytes long.
func EncodeToString(b []byte) (string, error) {
	if !ValidWidth(len(b)) {
		return "", errors.Wrapf(ErrWidth, "%d bytes", len(b))
	}
	buf := make([]byte, EncodedSize(len(b))+1)
	encode(buf, b)
	return string(buf[:len(buf)-1]), nil
}

// DecodeString decodes s into a width-byte value.
func DecodeString(width int, s string) ([]byte, error) {
	if !ValidWidth(width) {
		return nil, errors.Wrapf(ErrWidth, "%d bytes", width)
	}
	b := make([]byte, width)
	if err := decodeBytes(b, s); err != nil {
		return nil, err
	}
	return b, nil
}

// ParseString validates s as a width-byte value and returns it padded the
// way the StringN types store it. The literal characters of s are kept.
func ParseString(width int, s string) (string, error) {
	if !ValidWidth(width) {
		return "", errors.Wrapf(ErrWidth, "%d bytes", width)
	}
	buf := make([]byte, EncodedSize(width)+1)
	if err := parse(buf, width, s); err != nil {
		return "", err
	}
	return string(buf[:len(buf)-1]), nil
}

// fill resets dst to the encoding of zero: every position but the last
// holds '1' and the last holds the terminator.
func fill(dst []byte) {
	for i := range dst {
		dst[i] = alphabet[0]
	}
	dst[len(dst)-1] = 0
}

// encode writes the Base58 text of the big-endian value src into dst,
// right aligned and NUL terminated.
func encode(dst, src []byte) {
	fill(dst)

	x := newFixedUint(len(src))
	x.setBytes(src)

	i := len(dst) - 1
	for !x.isZero() {
		r := x.divRadix()
		// Inner chunks keep their leading zero digits. The last one
		// doesn't need them: dst is already padded.
		digits := radixDigits
		if x.isZero() {
			digits = 0
			for v := r; v > 0; v /= 58 {
				digits++
			}
		}
		for ; digits > 0; digits-- {
			if i == 0 {
				panic(bug("encoded value overflows the output buffer"))
			}
			i--
			dst[i] = alphabet[r%58]
			r /= 58
		}
	}
}

// decode accumulates s into x, ten digits at a time.
func decode[T Text](x *fixedUint, s T) error {
	for i := 0; i < len(s); i += radixDigits {
		end := i + radixDigits
		if end > len(s) {
			end = len(s)
		}

		var total uint64
		for j := i; j < end; j++ {
			v := decodeMap[s[j]]
			if v == invalidDigit {
				return ErrBadInput
			}
			hi, lo := mulAddWord(total, 58, uint64(v))
			if hi != 0 {
				return bug("chunk accumulator wrapped")
			}
			total = lo
		}

		if x.fma(radii[end-i], total) {
			return ErrBadInput
		}
	}
	return nil
}

// decodeBytes decodes s into dst as a big-endian value of len(dst) bytes.
func decodeBytes[T Text](dst []byte, s T) error {
	x := newFixedUint(len(dst))
	if err := decode(&x, s); err != nil {
		return err
	}
	x.fillBytes(dst)
	return nil
}

// parse validates s as a width-byte value and copies its characters into
// dst right aligned, padding the rest with '1'.
func parse[T Text](dst []byte, width int, s T) error {
	x := newFixedUint(width)
	if err := decode(&x, s); err != nil {
		return err
	}

	size := len(dst) - 1
	start := size - len(s)
	if start < 0 {
		// Only possible with surplus leading '1's.
		return ErrBadInput
	}
	fill(dst)
	for i := 0; i < len(s); i++ {
		dst[start+i] = s[i]
	}
	return nil
}
