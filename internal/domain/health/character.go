package health

import "github.com/KirkDiggler/regen-engine/internal/uuid"

// Character owns a body tree and the conditions on it
type Character struct {
	ID               string
	Name             string
	PlayerControlled bool
	Body             *BodyRegion
	Health           Set
}

// NewCharacter creates a character with an empty Tracker
func NewCharacter(id, name string, body *BodyRegion, ids uuid.Generator) *Character {
	return &Character{
		ID:     id,
		Name:   name,
		Body:   body,
		Health: NewTracker(ids),
	}
}

// Label returns the short display name
func (c *Character) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// FindCondition returns the condition with the given ID in s
func FindCondition(s Set, id string) *Condition {
	for _, c := range s.Conditions() {
		if c.ID == id {
			return c
		}
	}
	return nil
}
