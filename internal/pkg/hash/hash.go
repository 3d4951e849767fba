package hash

// Hash is the contract implemented by every hashing driver.
type Hash interface {
	// Hash returns the one-way hash of plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
