package auth

import (
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// Hasher wraps bcrypt so the service never touches digests directly.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash returns a salted digest; two calls with the same password yield
// different digests.
func (h *Hasher) Hash(password string) (string, error) {
	if !utf8.ValidString(password) {
		return "", ErrInvalidInput
	}
	// bcrypt ignores everything past 72 bytes; reject instead of truncating.
	if len(password) > 72 {
		return "", ErrInvalidInput
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *Hasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
