// Package hasher wraps bcrypt for credential hashing and comparison.
package hasher

import (
	"github.com/code19m/errx"
	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of the given secret.
func Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", errx.Wrap(err)
	}
	return string(hash), nil
}

// Compare reports whether the secret matches the given bcrypt hash.
func Compare(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}
