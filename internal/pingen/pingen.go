// Package pingen produces the 6-digit numeric PINs handed to an account
// holder exactly once, at account creation.
package pingen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const PINLength = 6

type Generator struct{}

func New() Generator {
	return Generator{}
}

// Generate returns a PIN of PINLength uniformly random ASCII digits.
func (Generator) Generate() (string, error) {
	digits := make([]byte, PINLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate pin digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
