package regen

import "github.com/KirkDiggler/regen-engine/internal/domain/health"

// Curable returns every condition on ch that cfg allows to be cured, in the
// character's native order. Conditions already waiting for the sweep are
// cured and never returned.
func Curable(ch *health.Character, cfg SelectionConfig) []*health.Condition {
	var out []*health.Condition
	for _, c := range ch.Health.Conditions() {
		if c.PendingRemoval() {
			continue
		}
		if !IsAllowed(c, cfg.Allow, cfg.Deny, cfg.InjuryMode) {
			continue
		}
		if c.IsMissingRegion() {
			if !cfg.CanHealDestroyed {
				continue
			}
			// Restoring a hand while the arm is still gone would leave it floating
			if c.Region == nil || ch.Health.IsMissing(c.Region.Parent) {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// CurablePermanent is Curable restricted to conditions that will not go away
// on their own: chronic, permanent, or missing regions.
func CurablePermanent(ch *health.Character, cfg SelectionConfig) []*health.Condition {
	var out []*health.Condition
	for _, c := range Curable(ch, cfg) {
		if c.Permanent || c.Def.Chronic || c.IsMissingRegion() {
			out = append(out, c)
		}
	}
	return out
}
