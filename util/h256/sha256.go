package h256

import (
	"crypto/sha256"
	"hash"
	"io"

	"github.com/pkg/errors"
)

// Sha256 returns the SHA-256 digest of data.
func Sha256(data []byte) H256 {
	return H256{hashArray: sha256.Sum256(data)}
}

// HashWriter is used to incrementally hash data without concatenating all of the data to a single buffer
// it exposes an io.Writer api and a Finalize function to get the resulting hash.
// HashWriter.Write(slice).Finalize == Sha256(slice)
type HashWriter struct {
	inner hash.Hash
}

// NewHashWriter returns a new Hash Writer
func NewHashWriter() *HashWriter {
	return &HashWriter{sha256.New()}
}

// Write will always return (len(p), nil)
func (h *HashWriter) Write(p []byte) (n int, err error) {
	return h.inner.Write(p)
}

// InfallibleWrite is just like write but doesn't return anything
func (h *HashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error, this is part of the hash.Hash interface contract.
	_, err := h.inner.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the resulting hash
func (h *HashWriter) Finalize() H256 {
	var sum H256
	copy(sum.hashArray[:], h.inner.Sum(nil))
	return sum
}

// Sha256Reader returns the SHA-256 digest of everything read from r.
func Sha256Reader(r io.Reader) (H256, error) {
	writer := NewHashWriter()
	_, err := io.Copy(writer, r)
	if err != nil {
		return H256{}, errors.WithStack(err)
	}
	return writer.Finalize(), nil
}
