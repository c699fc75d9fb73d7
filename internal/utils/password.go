package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// IsBcryptHash reports whether stored looks like a bcrypt hash rather than a
// legacy plain-text password.
func IsBcryptHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$")
}

// CheckPasswordHash compares a plaintext password with a stored password.
// Rows imported before hashing was introduced hold the password itself.
func CheckPasswordHash(password, stored string) bool {
	if !IsBcryptHash(stored) {
		return stored != "" && password == stored
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
