package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SHA256 implements Hash using unsalted SHA-256 with hex output.
type SHA256 struct{}

// NewSHA256 creates a SHA-256 hasher.
func NewSHA256() *SHA256 {
	return &SHA256{}
}

// Hash returns the hex-encoded SHA-256 digest of the input string.
func (s *SHA256) Hash(plaintext string) ([]byte, error) {
	return s.gen(plaintext), nil
}

// Verify checks whether the plaintext matches the given hash in constant time.
func (s *SHA256) Verify(hashed, plaintext string) bool {
	expected := s.gen(plaintext)
	return subtle.ConstantTimeCompare([]byte(hashed), expected) == 1
}

func (s *SHA256) gen(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	result := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(result, sum[:])
	return result
}
