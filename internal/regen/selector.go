package regen

import (
	"github.com/KirkDiggler/regen-engine/internal/dice"
	"github.com/KirkDiggler/regen-engine/internal/domain/health"
)

// PickRandom draws one curable permanent condition uniformly at random.
// cause is never a candidate. It returns nil when nothing qualifies.
func PickRandom(ch *health.Character, cause *health.Condition, cfg SelectionConfig, roller dice.Roller) *health.Condition {
	candidates := CurablePermanent(ch, cfg)

	pool := candidates[:0]
	for _, c := range candidates {
		if c != cause {
			pool = append(pool, c)
		}
	}

	if len(pool) == 0 {
		return nil
	}
	return pool[roller.Intn(len(pool))]
}
