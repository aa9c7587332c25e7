package health

import (
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
	"github.com/KirkDiggler/regen-engine/internal/uuid"
)

// Set is the condition store of a single character
type Set interface {
	// Conditions returns a snapshot of the conditions in their native order.
	// Mutating the store does not affect a snapshot already taken.
	Conditions() []*Condition

	// Contains reports whether c is still attached
	Contains(c *Condition) bool

	// IsMissing reports whether region, or one of its ancestors, is missing
	IsMissing(region *BodyRegion) bool

	// Add attaches c
	Add(c *Condition) error

	// Cure removes c immediately
	Cure(c *Condition) error

	// DirtyCache invalidates cached health state such as missing regions
	DirtyCache()

	// Sweep removes every condition pending removal and returns them
	Sweep() []*Condition
}

// Tracker is the in-memory Set used by the simulation and repositories
type Tracker struct {
	conditions []*Condition
	ids        uuid.Generator

	missing    map[*BodyRegion]struct{}
	cacheValid bool
}

// NewTracker creates an empty tracker. IDs are assigned to conditions added
// without one.
func NewTracker(ids uuid.Generator) *Tracker {
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	return &Tracker{ids: ids}
}

// Conditions implements Set
func (t *Tracker) Conditions() []*Condition {
	out := make([]*Condition, len(t.conditions))
	copy(out, t.conditions)
	return out
}

// Contains implements Set
func (t *Tracker) Contains(c *Condition) bool {
	for _, existing := range t.conditions {
		if existing == c {
			return true
		}
	}
	return false
}

// IsMissing implements Set. Conditions already marked for removal no longer
// count, but only once the cache has been invalidated.
func (t *Tracker) IsMissing(region *BodyRegion) bool {
	if region == nil {
		return false
	}
	if !t.cacheValid {
		t.rebuildCache()
	}
	for r := region; r != nil; r = r.Parent {
		if _, ok := t.missing[r]; ok {
			return true
		}
	}
	return false
}

// Add implements Set
func (t *Tracker) Add(c *Condition) error {
	if c == nil || c.Def == nil {
		return apperrors.InvalidArgument("condition and its definition are required")
	}
	if c.IsMissingRegion() && c.Region == nil {
		return apperrors.InvalidArgumentf("missing region condition %s needs a region", c.Def.Kind)
	}
	for _, existing := range t.conditions {
		if existing == c || (c.ID != "" && existing.ID == c.ID) {
			return apperrors.AlreadyExistsf("condition %s already attached", c.ID)
		}
	}
	if !c.IsMissingRegion() && t.IsMissing(c.Region) {
		return apperrors.FailedPreconditionf("cannot attach %s to missing region %s", c.Def.Kind, c.Region.ID).
			WithMeta("region_id", c.Region.ID)
	}

	if c.ID == "" {
		c.ID = t.ids.New()
	}
	t.conditions = append(t.conditions, c)
	t.DirtyCache()
	return nil
}

// Cure implements Set
func (t *Tracker) Cure(c *Condition) error {
	for i, existing := range t.conditions {
		if existing != c {
			continue
		}
		t.conditions = append(t.conditions[:i], t.conditions[i+1:]...)
		t.DirtyCache()
		return nil
	}
	id := ""
	if c != nil {
		id = c.ID
	}
	return apperrors.NotFoundf("condition %s not found", id).WithMeta("condition_id", id)
}

// DirtyCache implements Set
func (t *Tracker) DirtyCache() {
	t.cacheValid = false
}

// Sweep implements Set
func (t *Tracker) Sweep() []*Condition {
	var removed []*Condition
	kept := t.conditions[:0]
	for _, c := range t.conditions {
		if c.PendingRemoval() {
			removed = append(removed, c)
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(t.conditions); i++ {
		t.conditions[i] = nil
	}
	t.conditions = kept

	if len(removed) > 0 {
		t.DirtyCache()
	}
	return removed
}

func (t *Tracker) rebuildCache() {
	t.missing = make(map[*BodyRegion]struct{})
	for _, c := range t.conditions {
		if c.IsMissingRegion() && c.Region != nil && !c.PendingRemoval() {
			t.missing[c.Region] = struct{}{}
		}
	}
	t.cacheValid = true
}
