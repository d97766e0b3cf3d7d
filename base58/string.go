package base58

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

const (
	// String16Size is the length of the text of a String16.
	String16Size = 16 * 1375 / 1000
	// String16BufferSize is String16Size plus the NUL terminator.
	String16BufferSize = String16Size + 1

	String32Size       = 32 * 1375 / 1000
	String32BufferSize = String32Size + 1

	String64Size       = 64 * 1375 / 1000
	String64BufferSize = String64Size + 1
)

// String16 is the Base58 text of a 16-byte value: String16Size characters,
// left padded with '1', followed by a NUL byte.
//
// A String16 made by Parse16 keeps the characters it was parsed from, so
// equality, ordering and hashing work on the literal text rather than on
// the decoded value. The zero String16 holds no text; use Default16 for the
// encoding of zero.
type String16 struct {
	data [String16BufferSize]byte
}

// Default16 returns the encoding of the all-zero value.
func Default16() String16 {
	var s String16
	fill(s.data[:])
	return s
}

// Encode16 encodes b.
func Encode16(b [16]byte) String16 {
	var s String16
	encode(s.data[:], b[:])
	return s
}

// Decode16 decodes text into a 16-byte value. Leading '1's beyond the
// padding are accepted; characters outside the alphabet and values of
// 2^128 or more yield ErrBadInput.
func Decode16[T Text](text T) ([16]byte, error) {
	var b [16]byte
	err := decodeBytes(b[:], text)
	return b, err
}

// Parse16 validates text like Decode16 does and stores it right aligned.
func Parse16[T Text](text T) (String16, error) {
	var s String16
	if err := parse(s.data[:], 16, text); err != nil {
		return String16{}, err
	}
	return s, nil
}

// String returns the text.
func (s String16) String() string { return string(s.data[:String16Size]) }

// Bytes returns the text without copying it.
func (s *String16) Bytes() []byte { return s.data[:String16Size] }

// CString returns the text and its NUL terminator without copying them.
func (s *String16) CString() []byte { return s.data[:] }

// Decode returns the value s encodes.
func (s String16) Decode() ([16]byte, error) { return Decode16(s.data[:String16Size]) }

// Compare orders s and o by their text.
func (s String16) Compare(o String16) int {
	return bytes.Compare(s.data[:String16Size], o.data[:String16Size])
}

func (s String16) Less(o String16) bool { return s.Compare(o) < 0 }

// Hash64 hashes the text.
func (s String16) Hash64() uint64 { return xxhash.Sum64(s.data[:String16Size]) }

func (s String16) MarshalText() ([]byte, error) {
	return append([]byte(nil), s.data[:String16Size]...), nil
}

func (s *String16) UnmarshalText(text []byte) error {
	v, err := Parse16(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// String32 is the Base58 text of a 32-byte value. See String16.
type String32 struct {
	data [String32BufferSize]byte
}

func Default32() String32 {
	var s String32
	fill(s.data[:])
	return s
}

func Encode32(b [32]byte) String32 {
	var s String32
	encode(s.data[:], b[:])
	return s
}

func Decode32[T Text](text T) ([32]byte, error) {
	var b [32]byte
	err := decodeBytes(b[:], text)
	return b, err
}

func Parse32[T Text](text T) (String32, error) {
	var s String32
	if err := parse(s.data[:], 32, text); err != nil {
		return String32{}, err
	}
	return s, nil
}

func (s String32) String() string               { return string(s.data[:String32Size]) }
func (s *String32) Bytes() []byte               { return s.data[:String32Size] }
func (s *String32) CString() []byte             { return s.data[:] }
func (s String32) Decode() ([32]byte, error)    { return Decode32(s.data[:String32Size]) }
func (s String32) Less(o String32) bool         { return s.Compare(o) < 0 }
func (s String32) Hash64() uint64               { return xxhash.Sum64(s.data[:String32Size]) }
func (s String32) MarshalText() ([]byte, error) { return append([]byte(nil), s.data[:String32Size]...), nil }

func (s String32) Compare(o String32) int {
	return bytes.Compare(s.data[:String32Size], o.data[:String32Size])
}

func (s *String32) UnmarshalText(text []byte) error {
	v, err := Parse32(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// String64 is the Base58 text of a 64-byte value. See String16.
type String64 struct {
	data [String64BufferSize]byte
}

func Default64() String64 {
	var s String64
	fill(s.data[:])
	return s
}

func Encode64(b [64]byte) String64 {
	var s String64
	encode(s.data[:], b[:])
	return s
}

func Decode64[T Text](text T) ([64]byte, error) {
	var b [64]byte
	err := decodeBytes(b[:], text)
	return b, err
}

func Parse64[T Text](text T) (String64, error) {
	var s String64
	if err := parse(s.data[:], 64, text); err != nil {
		return String64{}, err
	}
	return s, nil
}

func (s String64) String() string               { return string(s.data[:String64Size]) }
func (s *String64) Bytes() []byte               { return s.data[:String64Size] }
func (s *String64) CString() []byte             { return s.data[:] }
func (s String64) Decode() ([64]byte, error)    { return Decode64(s.data[:String64Size]) }
func (s String64) Less(o String64) bool         { return s.Compare(o) < 0 }
func (s String64) Hash64() uint64               { return xxhash.Sum64(s.data[:String64Size]) }
func (s String64) MarshalText() ([]byte, error) { return append([]byte(nil), s.data[:String64Size]...), nil }

func (s String64) Compare(o String64) int {
	return bytes.Compare(s.data[:String64Size], o.data[:String64Size])
}

func (s *String64) UnmarshalText(text []byte) error {
	v, err := Parse64(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
