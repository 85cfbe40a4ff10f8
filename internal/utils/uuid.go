package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique string identifiers, used for request
// trace IDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string. In the unlikely event
// the v7 source fails it falls back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
