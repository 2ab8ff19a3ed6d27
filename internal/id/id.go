package id

import "github.com/google/uuid"

// GenerateID returns a fresh random (v4) UUID string.
func GenerateID() string {
	return uuid.NewString()
}

// Valid reports whether s parses as a UUID.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
