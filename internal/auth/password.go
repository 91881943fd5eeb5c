package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is fixed so stored hashes stay verifiable across
// releases.
const passwordHashCost = 10

// HashPassword hashes one plaintext password for persistent storage.
// The plaintext must never be stored or logged.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword verifies a plaintext candidate against a bcrypt hash.
func VerifyPassword(passwordHash, candidate string) bool {
	if strings.TrimSpace(passwordHash) == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(candidate)) == nil
}
