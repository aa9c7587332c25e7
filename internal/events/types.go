package events

import "github.com/KirkDiggler/regen-engine/internal/domain/health"

// EventType names something that happened to a character's health
type EventType string

const (
	// OnConditionEffect fires when a condition's periodic effect runs
	OnConditionEffect EventType = "on_condition_effect"

	// OnConditionHealed fires after a condition was cured by regeneration
	OnConditionHealed EventType = "on_condition_healed"

	// OnSideEffectApplied fires for every side effect attached after a heal
	OnSideEffectApplied EventType = "on_side_effect_applied"
)

// Context keys
const (
	ContextCause   = "cause"
	ContextTick    = "tick"
	ContextProfile = "profile"
)

// Event carries a character and the condition the event is about
type Event struct {
	Type      EventType
	Character *health.Character
	Condition *health.Condition
	Context   map[string]any
}

// NewEvent creates a new event
func NewEvent(eventType EventType, char *health.Character, cond *health.Condition) *Event {
	return &Event{
		Type:      eventType,
		Character: char,
		Condition: cond,
		Context:   make(map[string]any),
	}
}

// WithContext adds context data to the event
func (e *Event) WithContext(key string, value any) *Event {
	e.Context[key] = value
	return e
}

// GetContext retrieves a value from the context
func (e *Event) GetContext(key string) (any, bool) {
	val, exists := e.Context[key]
	return val, exists
}

// GetIntContext retrieves an int value from the context
func (e *Event) GetIntContext(key string) (int, bool) {
	val, ok := e.Context[key].(int)
	return val, ok
}

// GetStringContext retrieves a string value from the context
func (e *Event) GetStringContext(key string) (string, bool) {
	val, ok := e.Context[key].(string)
	return val, ok
}

// GetConditionContext retrieves a condition from the context
func (e *Event) GetConditionContext(key string) (*health.Condition, bool) {
	val, ok := e.Context[key].(*health.Condition)
	return val, ok
}

// Listener processes events
type Listener interface {
	HandleEvent(event *Event) error
	Priority() int
	ID() string
}
