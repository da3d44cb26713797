package h256

import "github.com/pkg/errors"

var (
	// ErrInvalidHexLength describes an error where a hex string decodes
	// to a payload that is not exactly HashSize bytes long.
	ErrInvalidHexLength = errors.New("invalid hex length")

	// ErrInvalidHexEncoding describes an error where a hex string contains
	// characters outside [0-9a-fA-F] or has an odd number of characters.
	ErrInvalidHexEncoding = errors.New("invalid hex encoding")

	// ErrInvalidSliceLength describes an error where a byte slice is too
	// short (or of the wrong multiple) to be turned into hashes.
	ErrInvalidSliceLength = errors.New("invalid byte slice length")
)
