// Package digest renders BLAKE2b digests as fixed-width Base58.
package digest

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/treeforest/easyb58/base58"
	"golang.org/x/crypto/blake2b"
)

// Sum32 returns the BLAKE2b-256 digest of data.
func Sum32(data []byte) base58.String32 {
	return base58.Encode32(blake2b.Sum256(data))
}

// Sum64 returns the BLAKE2b-512 digest of data.
func Sum64(data []byte) base58.String64 {
	return base58.Encode64(blake2b.Sum512(data))
}

// Reader hashes r with a width-byte BLAKE2b digest and returns its text.
// width must be 32 or 64.
func Reader(r io.Reader, width int) (string, error) {
	if width != 32 && width != 64 {
		return "", errors.Wrapf(base58.ErrWidth, "digest of %d bytes", width)
	}
	h, err := blake2b.New(width, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if _, err = io.Copy(h, r); err != nil {
		return "", errors.WithStack(err)
	}
	return base58.EncodeToString(h.Sum(nil))
}

// File hashes the file at path. See Reader.
func File(path string, width int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer f.Close()
	return Reader(f, width)
}
