package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered (version 7) UUID strings, so channel
// ids sort by creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7. If the clock-based generator fails it falls
// back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
