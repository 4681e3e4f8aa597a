package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered item identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 when the v7
// clock source fails.
func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
