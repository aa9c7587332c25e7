package characters

import (
	"context"

	"github.com/KirkDiggler/regen-engine/internal/domain/health"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*health.Character, error)

	// Put creates or replaces a character
	Put(ctx context.Context, char *health.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error

	// List returns every stored character ordered by ID
	List(ctx context.Context) ([]*health.Character, error)
}
