package h256

import (
	"bytes"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Strings returns the string representation of each hash in the given slice
func Strings(hashes []H256) []string {
	strs := make([]string, len(hashes))
	for i, hash := range hashes {
		strs[i] = hash.String()
	}
	return strs
}

// JoinStrings joins the string representations of the given hashes with
// separator in between.
func JoinStrings(hashes []H256, separator string) string {
	return strings.Join(Strings(hashes), separator)
}

// AreEqual returns whether the given hash slices are equal.
func AreEqual(first []H256, second []H256) bool {
	if len(first) != len(second) {
		return false
	}

	for i := range first {
		if !first[i].Equal(second[i]) {
			return false
		}
	}

	return true
}

// Sort sorts a slice of hashes in ascending order
func Sort(hashes []H256) {
	sort.Slice(hashes, func(i, j int) bool {
		return Less(hashes[i], hashes[j])
	})
}

// Clone returns a copy of the given hashes slice.
func Clone(hashes []H256) []H256 {
	clone := make([]H256, len(hashes))
	copy(clone, hashes)
	return clone
}

// SerializeSlice concatenates the bytes of the given hashes.
func SerializeSlice(hashes []H256) []byte {
	hashesBytes := make([][]byte, 0, len(hashes))

	for _, hash := range hashes {
		hashesBytes = append(hashesBytes, hash.BytesSlice())
	}

	return bytes.Join(hashesBytes, []byte{})
}

// DeserializeSlice splits hashesBytes into consecutive HashSize chunks.
func DeserializeSlice(hashesBytes []byte) ([]H256, error) {
	if len(hashesBytes)%HashSize != 0 {
		return nil, errors.Wrapf(ErrInvalidSliceLength,
			"serialized hashes length is %d bytes, while it should be a multiple of %d",
			len(hashesBytes), HashSize)
	}

	hashes := make([]H256, 0, len(hashesBytes)/HashSize)

	for i := 0; i < len(hashesBytes); i += HashSize {
		hash, err := FromByteSlice(hashesBytes[i : i+HashSize])
		if err != nil {
			return nil, err
		}

		hashes = append(hashes, hash)
	}

	return hashes, nil
}
