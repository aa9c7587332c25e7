package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/regen-engine/internal/domain/health"
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character repository.
// Characters are stored by pointer, so callers share live health state.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*health.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters: make(map[string]*health.Character),
	}
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*health.Character, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, apperrors.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	return char, nil
}

// Put creates or replaces a character
func (r *InMemoryRepository) Put(_ context.Context, char *health.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.characters[char.ID] = char
	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return apperrors.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	delete(r.characters, id)
	return nil
}

// List returns every stored character ordered by ID
func (r *InMemoryRepository) List(_ context.Context) ([]*health.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*health.Character, 0, len(r.characters))
	for _, char := range r.characters {
		result = append(result, char)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func validate(char *health.Character) error {
	if char == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperrors.InvalidArgument("character ID is required")
	}
	if char.Body == nil || char.Health == nil {
		return apperrors.InvalidArgumentf("character %s has no body or health", char.ID)
	}
	return nil
}
