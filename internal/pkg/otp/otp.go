package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeMin  = 100000
	codeSpan = 900000
)

// Generator produces one-time codes.
type Generator interface {
	// Generate returns a new one-time code.
	Generate() (string, error)
}

// Numeric generates 6-digit numeric codes drawn uniformly from
// [100000, 999999].
//
// The code itself is a short-lived shared secret delivered out-of-band; it is
// stored only as a one-way hash and expires quickly, so the generator only
// needs uniformity, which crypto/rand.Int provides without modulo bias.
type Numeric struct{}

// NewNumeric returns a 6-digit numeric code generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a new 6-digit code.
func (*Numeric) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}
