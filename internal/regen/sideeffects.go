package regen

import (
	"github.com/KirkDiggler/regen-engine/internal/dice"
	"github.com/KirkDiggler/regen-engine/internal/domain/health"
)

// ApplySideEffects rolls every rule against cured and returns the conditions
// that should be attached once the cure is done. Nothing is attached here: a
// side effect on the character during a region restore would be swept up by it.
//
// Each rule rolls its chance independently. An applied rule rolls a severity in
// [Min, Max) and, with ScaleBySource, multiplies it by the cured severity;
// injuries scale by the fraction of the region's hit points they took. Cured
// missing regions never scale.
func ApplySideEffects(cured *health.Condition, rules []SideEffectRule, roller dice.Roller) []*health.Condition {
	var out []*health.Condition
	for _, rule := range rules {
		if !dice.Chance(roller, rule.Chance) {
			continue
		}

		var region *health.BodyRegion
		if !rule.Global {
			region = cured.Region
		}

		severity := dice.Between(roller, rule.Severity.Min, rule.Severity.Max)
		if rule.ScaleBySource && !cured.IsMissingRegion() {
			severity *= sourceScale(cured)
		}

		out = append(out, health.NewCondition(rule.Def, region, severity))
	}
	return out
}

func sourceScale(cured *health.Condition) float64 {
	if cured.IsInjury() && cured.Region != nil && cured.Region.HitPoints > 0 {
		return cured.Severity / cured.Region.HitPoints
	}
	return cured.Severity
}
