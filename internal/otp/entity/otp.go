package entity

import "time"

// Status is the lifecycle state of a code. The only legal transitions are
// ACTIVE to USED and ACTIVE to EXPIRED; terminal rows never change again.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusUsed    Status = "USED"
	StatusExpired Status = "EXPIRED"
)

// Otp is one issued code. CreatedAt is immutable after insert.
type Otp struct {
	ID          int64
	UserID      int64
	OperationID *string
	Code        string
	Status      Status
	CreatedAt   time.Time
}

// Config is the single shared row controlling generation and validation.
// Validation reads the TTL in force at validation time, not at creation.
type Config struct {
	Length     int
	TTLSeconds int
}

// TTL returns the configured lifetime as a duration.
func (c Config) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}
