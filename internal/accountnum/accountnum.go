// Package accountnum generates card-style account numbers with a trailing
// Luhn check digit. The ledger core treats the output as an opaque unique
// string; only this package knows the format.
package accountnum

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Issuer prefix for every number we mint. The remaining digits before the
// check digit are random.
const issuerPrefix = "400000"
const numberLength = 16

type Generator struct{}

func New() Generator {
	return Generator{}
}

// Generate returns a fresh account number: issuer prefix, random body and a
// Luhn check digit. Uniqueness is probabilistic here and enforced by the
// store's unique constraint.
func (Generator) Generate() (string, error) {
	body := make([]byte, 0, numberLength)
	body = append(body, issuerPrefix...)

	for len(body) < numberLength-1 {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate account number digit: %w", err)
		}
		body = append(body, byte('0'+n.Int64()))
	}

	return string(append(body, checkDigit(string(body)))), nil
}

// Valid reports whether number is a well-formed account number, including
// its Luhn check digit.
func Valid(number string) bool {
	if len(number) != numberLength {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}
	return checkDigit(number[:numberLength-1]) == number[numberLength-1]
}

func checkDigit(body string) byte {
	sum := 0
	// Walk right to left; the check digit position makes every digit of the
	// body an "odd" position, so those double.
	double := true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte('0' + (10-sum%10)%10)
}
