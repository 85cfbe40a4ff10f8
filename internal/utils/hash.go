package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt digest from the given plaintext password.
//
// bcrypt embeds a random per-call salt and the cost parameter into the
// digest itself, so hashing the same password twice yields two different
// outputs, and VerifyPassword needs no external salt storage.
//
// cost controls the work factor; pass 0 to use the library default.
// bcrypt rejects passwords longer than 72 bytes.
//
// Parameters:
//
//	password - plaintext password to hash; never stored or logged
//	cost     - bcrypt cost parameter (0 = bcrypt.DefaultCost)
//
// Returns:
//
//	string - the encoded bcrypt digest ("$2a$..."), safe to persist
//	error  - non-nil if the cost is out of range or the password too long
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password reproduces the
// given bcrypt digest using the salt and cost embedded in it.
//
// Any failure (wrong password, malformed digest, empty input) yields
// false; the distinction is deliberately not exposed so callers cannot
// leak why a credential check failed.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
