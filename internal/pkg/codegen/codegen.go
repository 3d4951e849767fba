package codegen

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// ErrInvalidLength is returned when the requested code length is below one.
var ErrInvalidLength = errors.New("codegen: length must be at least 1")

// Generator produces one-time codes.
type Generator interface {
	// Digits returns a code of length decimal digits.
	Digits(length int) (string, error)
}

// CryptoRand implements Generator with crypto/rand.
//
// Each digit is sampled independently and uniformly over 0-9, so every code
// of a given length is equally likely. Codes are not checked for collision
// with previously issued ones.
type CryptoRand struct{}

// New returns a CryptoRand generator.
func New() *CryptoRand {
	return &CryptoRand{}
}

var ten = big.NewInt(10)

// Digits returns a random decimal code of the given length.
func (*CryptoRand) Digits(length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}

	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		out[i] = byte('0' + n.Int64())
	}

	return string(out), nil
}
