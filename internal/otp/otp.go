package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Length is the number of digits in a generated code
const Length = 6

var codeSpace = big.NewInt(1000000)

// Generate produces a 6-digit one-time code. Codes are drawn uniformly
// from crypto/rand and carry no relation to account state.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
