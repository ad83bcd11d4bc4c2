package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost used for all stored credentials
const hashCost = 10

// MinLength is the minimum accepted password length
const MinLength = 8

// Hash derives a one-way hash from a plaintext password
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the plaintext password matches the stored hash.
// A mismatch is not an error; errors indicate a malformed hash.
func Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
