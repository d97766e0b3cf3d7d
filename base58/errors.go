package base58

import "github.com/pkg/errors"

var (
	// ErrBadInput is returned for text that holds a character outside the
	// alphabet or whose value does not fit in the target width.
	ErrBadInput = errors.New("base58: bad input")

	// ErrBug reports a broken internal invariant. It is never caused by
	// the input alone.
	ErrBug = errors.New("base58: internal bug")

	// ErrWidth is returned by the width-dynamic helpers for widths other
	// than 16, 32 and 64 bytes.
	ErrWidth = errors.New("base58: unsupported width")
)

func bug(msg string) error {
	return errors.Wrap(ErrBug, msg)
}
