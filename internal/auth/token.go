package auth

import "github.com/google/uuid"

// NewToken returns an unguessable opaque identifier. Session ids and reset
// tokens share the same generator; nothing downstream distinguishes them.
func NewToken() string {
	return uuid.NewString()
}
