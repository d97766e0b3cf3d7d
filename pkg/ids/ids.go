// Package ids renders random 16-byte identifiers as fixed-width Base58.
package ids

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/treeforest/easyb58/base58"
)

// New returns a random (version 4) UUID and its Base58 text.
func New() (uuid.UUID, base58.String16) {
	id := uuid.New()
	return id, base58.Encode16(id)
}

// Encode returns the Base58 text of id.
func Encode(id uuid.UUID) base58.String16 {
	return base58.Encode16(id)
}

// Parse accepts either Base58 text or any form uuid.Parse understands.
func Parse(s string) (uuid.UUID, error) {
	if len(s) <= base58.String16Size {
		b, err := base58.Decode16(s)
		if err == nil {
			return uuid.UUID(b), nil
		}
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Wrapf(base58.ErrBadInput, "id %q", s)
	}
	return id, nil
}
