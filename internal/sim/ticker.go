package sim

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/regen-engine/internal/domain/health"
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
	"github.com/KirkDiggler/regen-engine/internal/events"
)

// DefaultInterval is how many ticks pass between two effects of a condition
const DefaultInterval = 1

// Config holds the configuration for a Ticker
type Config struct {
	Bus *events.Bus

	// Interval is the number of ticks between condition effects. Zero means DefaultInterval.
	Interval int

	// Workers caps how many characters TickAll processes at once. Zero means no limit.
	Workers int

	Logger *zap.Logger
}

// Ticker advances simulated time. Each tick fires the periodic effects of
// regenerating conditions and then removes conditions marked for removal.
type Ticker struct {
	bus      *events.Bus
	interval int
	workers  int
	logger   *zap.Logger

	tick atomic.Int64
}

// NewTicker creates a new ticker
func NewTicker(cfg *Config) (*Ticker, error) {
	if cfg == nil || cfg.Bus == nil {
		return nil, apperrors.InvalidArgument("sim: event bus is required")
	}
	if cfg.Interval < 0 {
		return nil, apperrors.InvalidArgumentf("sim: interval must not be negative, got %d", cfg.Interval)
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = DefaultInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Ticker{
		bus:      cfg.Bus,
		interval: interval,
		workers:  cfg.Workers,
		logger:   logger.Named("sim"),
	}, nil
}

// Current returns the number of ticks advanced so far
func (t *Ticker) Current() int {
	return int(t.tick.Load())
}

// TickAll advances time by one tick and processes every character, one
// goroutine per character. The first error cancels the remaining work.
func (t *Ticker) TickAll(ctx context.Context, chars []*health.Character) error {
	tick := int(t.tick.Add(1))

	g, ctx := errgroup.WithContext(ctx)
	if t.workers > 0 {
		g.SetLimit(t.workers)
	}

	for _, ch := range chars {
		g.Go(func() error {
			return t.process(ctx, ch, tick)
		})
	}

	return g.Wait()
}

// Tick advances time by one tick for a single character
func (t *Ticker) Tick(ctx context.Context, ch *health.Character) error {
	return t.process(ctx, ch, int(t.tick.Add(1)))
}

func (t *Ticker) process(ctx context.Context, ch *health.Character, tick int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ch == nil || ch.Health == nil {
		return apperrors.InvalidArgument("sim: character with health is required")
	}

	if tick%t.interval == 0 {
		for _, c := range ch.Health.Conditions() {
			if c.Def.RegenProfile == "" || c.PendingRemoval() {
				continue
			}
			// An earlier effect this tick may have cured c outright
			if !ch.Health.Contains(c) {
				continue
			}

			event := events.NewEvent(events.OnConditionEffect, ch, c).
				WithContext(events.ContextTick, tick).
				WithContext(events.ContextProfile, c.Def.RegenProfile)
			if err := t.bus.Emit(event); err != nil {
				return apperrors.Wrapf(err, "effect of %s on %s failed", c.ID, ch.ID)
			}
		}
	}

	if removed := ch.Health.Sweep(); len(removed) > 0 {
		t.logger.Debug("removed conditions",
			zap.String("character", ch.ID),
			zap.Int("tick", tick),
			zap.Int("count", len(removed)))
	}
	return nil
}
