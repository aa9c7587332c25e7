package regen

//go:generate mockgen -destination=mock/mock_notifier.go -package=mockregen -source=service.go

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/regen-engine/internal/dice"
	"github.com/KirkDiggler/regen-engine/internal/domain/health"
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
	"github.com/KirkDiggler/regen-engine/internal/events"
)

// Notification tells the player that cause healed a condition on a character
type Notification struct {
	Cause     *health.Condition
	Character *health.Character
	Healed    *health.Condition
}

// Notifier decides whether a character's heals are worth reporting and reports them
type Notifier interface {
	ShouldNotifyAbout(ch *health.Character) bool
	Notify(n Notification) error
}

// Result describes what one invocation changed
type Result struct {
	Healed      *health.Condition
	SideEffects []*health.Condition
}

// ServiceConfig holds the dependencies of a Service
type ServiceConfig struct {
	Roller   dice.Roller
	Notifier Notifier    // optional
	Bus      *events.Bus // optional
	Logger   *zap.Logger // optional
}

// Service heals conditions according to regeneration profiles
type Service struct {
	roller   dice.Roller
	notifier Notifier
	bus      *events.Bus
	logger   *zap.Logger
}

// NewService creates a new regeneration service
func NewService(cfg *ServiceConfig) (*Service, error) {
	if cfg == nil || cfg.Roller == nil {
		return nil, apperrors.InvalidArgument("regen: a dice roller is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		roller:   cfg.Roller,
		notifier: cfg.Notifier,
		bus:      cfg.Bus,
		logger:   logger.Named("regen"),
	}, nil
}

// TryHealRandomPermanentCondition cures one random permanent condition on ch
// that profile allows, then attaches the profile's side effects.
//
// A nil result with a nil error means nothing was eligible.
func (s *Service) TryHealRandomPermanentCondition(ch *health.Character, cause *health.Condition, profile *Profile) (*Result, error) {
	if ch == nil || ch.Health == nil {
		return nil, apperrors.InvalidArgument("regen: character with health is required")
	}
	if profile == nil {
		profile = &Profile{}
	}

	selected := PickRandom(ch, cause, profile.Selection, s.roller)
	if selected == nil {
		return nil, nil
	}

	sideEffects := ApplySideEffects(selected, profile.SideEffects, s.roller)

	if selected.IsMissingRegion() {
		if err := s.RestoreRegion(ch, selected.Region); err != nil {
			return nil, apperrors.Wrapf(err, "failed to restore region for %s", selected.ID)
		}
	} else {
		if _, err := s.cureOneSafely(ch, selected, false); err != nil {
			return nil, apperrors.Wrapf(err, "failed to cure %s", selected.ID)
		}
	}

	for _, added := range sideEffects {
		if err := ch.Health.Add(added); err != nil {
			return nil, apperrors.Wrapf(err, "failed to attach side effect %s", added.Def.Kind)
		}
	}

	s.logger.Info("healed condition",
		zap.String("character", ch.ID),
		zap.String("condition", selected.ID),
		zap.String("kind", string(selected.Kind())),
		zap.String("profile", profile.Name),
		zap.Int("side_effects", len(sideEffects)))

	if err := s.emit(ch, cause, selected, sideEffects); err != nil {
		return nil, err
	}

	if s.notifier != nil && s.notifier.ShouldNotifyAbout(ch) {
		if err := s.notifier.Notify(Notification{Cause: cause, Character: ch, Healed: selected}); err != nil {
			return nil, apperrors.Wrap(err, "failed to send heal notification")
		}
	}

	return &Result{Healed: selected, SideEffects: sideEffects}, nil
}

// RestoreRegion removes every condition on region and its descendants except
// those that survive restoration, then invalidates the health cache once.
// A nil region is logged and ignored.
func (s *Service) RestoreRegion(ch *health.Character, region *health.BodyRegion) error {
	if region == nil {
		s.logger.Error("tried to restore nil region", zap.String("character", ch.ID))
		return nil
	}

	warned := false
	if err := s.restoreRecursive(ch, region, &warned); err != nil {
		return err
	}

	ch.Health.DirtyCache()
	return nil
}

func (s *Service) restoreRecursive(ch *health.Character, region *health.BodyRegion, warned *bool) error {
	// Curing mutates the live list, so walk a snapshot
	for _, c := range ch.Health.Conditions() {
		if c.Region != region || c.Def.KeepOnRegionRestore {
			continue
		}
		forced, err := s.cureOneSafely(ch, c, *warned)
		if err != nil {
			return err
		}
		*warned = *warned || forced
	}

	for _, child := range region.Children {
		if err := s.restoreRecursive(ch, child, warned); err != nil {
			return err
		}
	}
	return nil
}

// cureOneSafely defers removal of c to the next sweep when it supports
// extensions, otherwise cures it on the spot. It returns true when it had to
// cure immediately, warning about it unless alreadyWarned.
func (s *Service) cureOneSafely(ch *health.Character, c *health.Condition, alreadyWarned bool) (bool, error) {
	if c.SupportsDeferredRemoval() {
		return false, c.AddExtension(health.RemovalMarker{})
	}

	if !alreadyWarned {
		s.logger.Warn("curing condition immediately during health processing, this may cause a harmless error",
			zap.String("character", ch.ID),
			zap.String("condition", c.ID),
			zap.String("kind", string(c.Kind())))
	}
	if err := ch.Health.Cure(c); err != nil {
		return true, err
	}
	return true, nil
}

func (s *Service) emit(ch *health.Character, cause, healed *health.Condition, sideEffects []*health.Condition) error {
	if s.bus == nil {
		return nil
	}

	healedEvent := events.NewEvent(events.OnConditionHealed, ch, healed).
		WithContext(events.ContextCause, cause)
	if err := s.bus.Emit(healedEvent); err != nil {
		return apperrors.Wrap(err, "failed to emit healed event")
	}

	for _, added := range sideEffects {
		addedEvent := events.NewEvent(events.OnSideEffectApplied, ch, added).
			WithContext(events.ContextCause, cause)
		if err := s.bus.Emit(addedEvent); err != nil {
			return apperrors.Wrap(err, "failed to emit side effect event")
		}
	}
	return nil
}
