package regen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/regen-engine/internal/domain/health"
)

// InjuryMode controls how injury-like conditions are listed by default
type InjuryMode string

const (
	// InjuryModeNone treats injuries like any other condition
	InjuryModeNone InjuryMode = "none"

	// InjuryModeAutoAllow allows injuries as if they were on the allow list
	InjuryModeAutoAllow InjuryMode = "auto_allow"

	// InjuryModeAutoDeny rejects injuries unless they are on the allow list
	InjuryModeAutoDeny InjuryMode = "auto_deny"
)

// ParseInjuryMode accepts the canonical names plus the whitelist/blacklist
// spelling used by older profile files. Empty means InjuryModeNone.
func ParseInjuryMode(s string) (InjuryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return InjuryModeNone, nil
	case "auto_allow", "whitelist":
		return InjuryModeAutoAllow, nil
	case "auto_deny", "blacklist":
		return InjuryModeAutoDeny, nil
	}
	return "", fmt.Errorf("unknown injury mode %q", s)
}

// KindSet is a set of condition kinds. A nil KindSet means "no list", which is
// different from an empty list.
type KindSet map[health.Kind]struct{}

// NewKindSet creates a non-nil set holding kinds
func NewKindSet(kinds ...health.Kind) KindSet {
	set := make(KindSet, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return set
}

// Contains reports whether kind is in the set. Safe on a nil set.
func (s KindSet) Contains(kind health.Kind) bool {
	_, ok := s[kind]
	return ok
}

// SelectionConfig decides which conditions may be cured. It is read-only for
// the duration of one invocation.
type SelectionConfig struct {
	Deny             KindSet
	Allow            KindSet
	CanHealDestroyed bool
	InjuryMode       InjuryMode
}

// FloatRange is a closed-open severity range [Min, Max)
type FloatRange struct {
	Min float64
	Max float64
}

// ParseFloatRange parses "min~max" or a single value
func ParseFloatRange(s string) (FloatRange, error) {
	parts := strings.Split(strings.TrimSpace(s), "~")
	if len(parts) > 2 {
		return FloatRange{}, fmt.Errorf("invalid range %q", s)
	}

	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return FloatRange{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if len(parts) == 1 {
		return FloatRange{Min: lo, Max: lo}, nil
	}

	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return FloatRange{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if hi < lo {
		return FloatRange{}, fmt.Errorf("invalid range %q: max below min", s)
	}
	return FloatRange{Min: lo, Max: hi}, nil
}

// String formats the range the way ParseFloatRange reads it
func (r FloatRange) String() string {
	return strconv.FormatFloat(r.Min, 'g', -1, 64) + "~" + strconv.FormatFloat(r.Max, 'g', -1, 64)
}

// SideEffectRule describes a condition that may be grafted on after a heal.
//
// Every rule draws one float for its chance. An applied rule draws a second
// float for its severity, unless Severity is a single value (Min == Max), in
// which case no severity roll is taken.
type SideEffectRule struct {
	Def      *health.Definition
	Severity FloatRange

	// ScaleBySource multiplies the rolled severity by the cured condition's severity
	ScaleBySource bool

	// Global side effects attach to the whole body instead of the cured region
	Global bool

	// Chance is the application probability in [0, 1]
	Chance float64
}

// Profile bundles everything one regeneration invocation is configured with
type Profile struct {
	Name        string
	Selection   SelectionConfig
	SideEffects []SideEffectRule
}

// Profiles is a ProfileSource over a map keyed by profile name
type Profiles map[string]*Profile

// Profile implements ProfileSource
func (p Profiles) Profile(name string) (*Profile, bool) {
	profile, ok := p[name]
	return profile, ok
}
