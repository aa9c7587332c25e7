// Package uuid generates identifiers for conditions and characters behind a
// mockable interface.
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator hands out unique string IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator generates random (v4) UUIDs
type GoogleUUIDGenerator struct{}

// New returns a new random UUID
func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator returns deterministic IDs of the form prefix-1, prefix-2, ...
// Useful for fixtures and CLI demos where stable IDs matter.
type SequenceGenerator struct {
	Prefix string

	mu   sync.Mutex
	next int
}

// New returns the next ID in the sequence
func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++
	return g.Prefix + "-" + strconv.Itoa(g.next)
}
