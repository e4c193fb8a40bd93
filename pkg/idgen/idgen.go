// Package idgen provides identifiers for accounts and transactions.
package idgen

import "github.com/google/uuid"

// Generator supplies unique identifiers.
type Generator interface {
	Generate() uuid.UUID
}

// Random generates version 4 UUIDs.
type Random struct{}

// Generate returns a new random UUID.
func (Random) Generate() uuid.UUID {
	return uuid.New()
}

var _ Generator = Random{}
