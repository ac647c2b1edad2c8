// Package digest computes the 20-byte content digest the benchmarks use to
// fingerprint buffers. The hashing itself is delegated to crypto/sha1.
package digest

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Size is the length of a digest in bytes.
const Size = sha1.Size

// Sum is a SHA-1 digest.
type Sum [Size]byte

func (s Sum) String() string {
	return hex.EncodeToString(s[:])
}

// SHA1 returns the digest of data.
func SHA1(data []byte) Sum {
	return sha1.Sum(data)
}

// Of returns the digest of the first length bytes of data.
//
// panic if length is negative or exceeds len(data).
func Of(data []byte, length int) Sum {
	if length < 0 || length > len(data) {
		panic(fmt.Sprintf("digest: length %d out of range [0, %d]", length, len(data)))
	}
	return sha1.Sum(data[:length])
}
