// Package base58check appends a four byte checksum to a payload before
// encoding it with package base58, so that mistyped text is detected.
//
// The checksum is the first four bytes of SHA-256(SHA-256(payload)). The
// payload fills the rest of the fixed width: 12, 28 or 60 bytes.
package base58check

import (
	"bytes"
	"crypto/sha256"

	"github.com/pkg/errors"
	"github.com/treeforest/easyb58/base58"
)

const checksumLen = 4

// ErrChecksum is returned when the text decodes but its checksum does not
// match the payload.
var ErrChecksum = errors.New("base58check: checksum error")

func checksum(payload []byte) [checksumLen]byte {
	// 执行两次 SHA-256
	hash := sha256.Sum256(payload)
	hash2 := sha256.Sum256(hash[:])

	var c [checksumLen]byte
	copy(c[:], hash2[:checksumLen])
	return c
}

func seal(dst, payload []byte) {
	n := copy(dst, payload)
	c := checksum(payload)
	copy(dst[n:], c[:])
}

func open(b []byte) error {
	n := len(b) - checksumLen
	c := checksum(b[:n])
	if !bytes.Equal(c[:], b[n:]) {
		return ErrChecksum
	}
	return nil
}

func Encode16(payload [12]byte) base58.String16 {
	var b [16]byte
	seal(b[:], payload[:])
	return base58.Encode16(b)
}

func Encode32(payload [28]byte) base58.String32 {
	var b [32]byte
	seal(b[:], payload[:])
	return base58.Encode32(b)
}

func Encode64(payload [60]byte) base58.String64 {
	var b [64]byte
	seal(b[:], payload[:])
	return base58.Encode64(b)
}

// Decode16 decodes text and verifies its checksum.
func Decode16[T base58.Text](text T) (payload [12]byte, err error) {
	b, err := base58.Decode16(text)
	if err != nil {
		return payload, err
	}
	if err = open(b[:]); err != nil {
		return payload, err
	}
	copy(payload[:], b[:])
	return payload, nil
}

func Decode32[T base58.Text](text T) (payload [28]byte, err error) {
	b, err := base58.Decode32(text)
	if err != nil {
		return payload, err
	}
	if err = open(b[:]); err != nil {
		return payload, err
	}
	copy(payload[:], b[:])
	return payload, nil
}

func Decode64[T base58.Text](text T) (payload [60]byte, err error) {
	b, err := base58.Decode64(text)
	if err != nil {
		return payload, err
	}
	if err = open(b[:]); err != nil {
		return payload, err
	}
	copy(payload[:], b[:])
	return payload, nil
}

// Valid reports whether text is a checked value of width bytes.
func Valid(width int, text string) bool {
	b, err := base58.DecodeString(width, text)
	return err == nil && open(b) == nil
}
