package regen

import (
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
	"github.com/KirkDiggler/regen-engine/internal/events"
)

// ProfileSource resolves regeneration profiles by name
type ProfileSource interface {
	Profile(name string) (*Profile, bool)
}

// Trigger runs the regeneration profile of a condition whenever that
// condition's effect fires
type Trigger struct {
	service  *Service
	profiles ProfileSource
}

// NewTrigger creates a trigger listener. Subscribe it to events.OnConditionEffect.
func NewTrigger(service *Service, profiles ProfileSource) *Trigger {
	return &Trigger{
		service:  service,
		profiles: profiles,
	}
}

// HandleEvent implements events.Listener. The profile named in the event
// context wins over the one on the cause's definition.
func (t *Trigger) HandleEvent(event *events.Event) error {
	cause := event.Condition
	if event.Type != events.OnConditionEffect || cause == nil {
		return nil
	}

	name, _ := event.GetStringContext(events.ContextProfile)
	if name == "" {
		name = cause.Def.RegenProfile
	}
	if name == "" {
		return nil
	}

	profile, ok := t.profiles.Profile(name)
	if !ok {
		return apperrors.NotFoundf("regen profile %s not found", name).
			WithMeta("condition_kind", string(cause.Kind()))
	}

	_, err := t.service.TryHealRandomPermanentCondition(event.Character, cause, profile)
	return err
}

// Priority implements events.Listener
func (t *Trigger) Priority() int {
	return 100
}

// ID implements events.Listener
func (t *Trigger) ID() string {
	return "regen_trigger"
}
