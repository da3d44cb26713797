// Package h256 provides H256, a fixed-size 256-bit hash value, together
// with SHA-256 hashing that produces it.
package h256

import (
	"bytes"
	"encoding/hex"

	"github.com/pkg/errors"
)

// HashSize of array used to store hashes.
const HashSize = 32

// MaxHashStringSize is the length of the hex encoding of a hash.
const MaxHashStringSize = HashSize * 2

// H256 is a 256-bit hash value. The zero value is the all-zero hash.
// H256 is comparable, so it can be used directly as a map key.
type H256 struct {
	hashArray [HashSize]byte
}

// Zero is the all-zero hash.
var Zero = H256{}

// FromByteArray returns an H256 holding a copy of the given bytes.
func FromByteArray(hashBytes *[HashSize]byte) H256 {
	return H256{hashArray: *hashBytes}
}

// FromByteSlice creates an H256 from a slice that must be exactly
// HashSize bytes long.
func FromByteSlice(hashBytes []byte) (H256, error) {
	if len(hashBytes) != HashSize {
		return H256{}, errors.Wrapf(ErrInvalidSliceLength, "want %d bytes, got %d",
			HashSize, len(hashBytes))
	}
	var hash H256
	copy(hash.hashArray[:], hashBytes)
	return hash, nil
}

// FromBytePrefix creates an H256 from the first HashSize bytes of the
// given slice. Any trailing bytes are ignored.
func FromBytePrefix(hashBytes []byte) (H256, error) {
	if len(hashBytes) < HashSize {
		return H256{}, errors.Wrapf(ErrInvalidSliceLength, "want at least %d bytes, got %d",
			HashSize, len(hashBytes))
	}
	return FromByteSlice(hashBytes[:HashSize])
}

// FromString parses a hex encoded hash. Upper and lower case digits are
// both accepted. It fails with ErrInvalidHexEncoding if the string is not
// valid hex, and with ErrInvalidHexLength if it does not decode to exactly
// HashSize bytes.
func FromString(hashString string) (H256, error) {
	hashBytes, err := hex.DecodeString(hashString)
	if err != nil {
		return H256{}, errors.Wrapf(ErrInvalidHexEncoding, "%q: %s", hashString, err)
	}
	if len(hashBytes) != HashSize {
		return H256{}, errors.Wrapf(ErrInvalidHexLength, "hash string length is %d, while it should be %d",
			len(hashString), MaxHashStringSize)
	}
	var hash H256
	copy(hash.hashArray[:], hashBytes)
	return hash, nil
}

// String returns the hash as a lowercase hexadecimal string of
// MaxHashStringSize characters.
func (hash H256) String() string {
	return hex.EncodeToString(hash.hashArray[:])
}

// ByteArray returns the bytes of the hash by value.
func (hash H256) ByteArray() [HashSize]byte {
	return hash.hashArray
}

// BytesSlice returns the bytes of the hash as a slice.
// The bytes are cloned, therefore it is safe to modify the resulting slice.
func (hash H256) BytesSlice() []byte {
	arrayClone := hash.hashArray
	return arrayClone[:]
}

// MutableBytes gives direct access to the underlying array. Writes through
// the returned pointer modify the hash in place.
func (hash *H256) MutableBytes() *[HashSize]byte {
	return &hash.hashArray
}

// Equal returns whether hash equals to other
func (hash H256) Equal(other H256) bool {
	return hash.hashArray == other.hashArray
}

// IsZero returns whether all bytes of the hash are zero.
func (hash H256) IsZero() bool {
	return hash.hashArray == Zero.hashArray
}

// Cmp compares hash and other byte by byte and returns:
//
//   -1 if hash <  other
//    0 if hash == other
//   +1 if hash >  other
//
func (hash H256) Cmp(other H256) int {
	return bytes.Compare(hash.hashArray[:], other.hashArray[:])
}

// Less returns true iff hash a is less than hash b
func Less(a, b H256) bool {
	return a.Cmp(b) < 0
}

// MarshalText implements encoding.TextMarshaler.
func (hash H256) MarshalText() ([]byte, error) {
	return []byte(hash.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the same rules as
// FromString.
func (hash *H256) UnmarshalText(text []byte) error {
	parsed, err := FromString(string(text))
	if err != nil {
		return err
	}
	*hash = parsed
	return nil
}
