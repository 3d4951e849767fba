package uid

import "github.com/google/uuid"

// UUID generates RFC 4122 UUID strings.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString() // fallback: uuidV4
	}
	return id.String()
}

// UUID4 generates random (version 4) UUID strings.
//
// Bearer tokens use v4 rather than v7 so the value carries no timestamp
// ordering an attacker could exploit.
type UUID4 struct{}

// NewUUID4 returns a random UUID generator.
func NewUUID4() *UUID4 {
	return &UUID4{}
}

// Generate returns a new random UUID string.
func (u *UUID4) Generate() string {
	return uuid.NewString()
}
