package utils

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// DigestSize is the length of a [Digest] in bytes.
const DigestSize = 32

// Digest returns the BLAKE3-256 hash of data. It identifies entry contents
// in listings; it is not stored in containers.
func Digest(data []byte) [DigestSize]byte {
	return blake3.Sum256(data)
}

// DigestString returns the hex form of [Digest].
func DigestString(data []byte) string {
	sum := Digest(data)
	return hex.EncodeToString(sum[:])
}

// ShortDigest returns the first n hex characters of [DigestString].
func ShortDigest(data []byte, n int) string {
	s := DigestString(data)
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[:n]
}
