// Package auth holds the two cryptographic building blocks of the service:
// bcrypt password hashing and HS256 bearer tokens.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/bizhub/business-backend/internal/core/domain"
)

// bcryptCost balances brute-force resistance against login latency.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest of plaintext. An empty
// plaintext is rejected; a bcrypt failure is surfaced, never swallowed.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", domain.ErrMissingFields
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the stored digest.
// bcrypt's comparison is constant time.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
