package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/regen-engine/internal/events"
	"github.com/KirkDiggler/regen-engine/internal/testutils"
)

type testListener struct {
	id       string
	priority int
	handler  func(e *events.Event) error
}

func (l *testListener) HandleEvent(e *events.Event) error { return l.handler(e) }
func (l *testListener) Priority() int                     { return l.priority }
func (l *testListener) ID() string                        { return l.id }

func TestBus_Priority(t *testing.T) {
	bus := events.NewBus(nil)

	var executionOrder []string
	record := func(name string) func(*events.Event) error {
		return func(*events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	// Subscribe out of order
	bus.Subscribe(events.OnConditionHealed, &testListener{id: "low", priority: 300, handler: record("low")})
	bus.Subscribe(events.OnConditionHealed, &testListener{id: "high", priority: 100, handler: record("high")})
	bus.Subscribe(events.OnConditionHealed, &testListener{id: "medium", priority: 200, handler: record("medium")})

	char := testutils.CreateTestCharacter("char", "Tess")
	require.NoError(t, bus.Emit(events.NewEvent(events.OnConditionHealed, char, nil)))

	assert.Equal(t, []string{"high", "medium", "low"}, executionOrder)
}

func TestBus_ListenerError(t *testing.T) {
	bus := events.NewBus(nil)
	boom := errors.New("boom")
	bus.Subscribe(events.OnConditionEffect, &testListener{id: "broken", handler: func(*events.Event) error { return boom }})

	var laterExecuted bool
	bus.Subscribe(events.OnConditionEffect, &testListener{id: "later", priority: 10, handler: func(*events.Event) error {
		laterExecuted = true
		return nil
	}})

	err := bus.Emit(events.NewEvent(events.OnConditionEffect, nil, nil))

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, laterExecuted)
}

func TestBus_OnlyMatchingType(t *testing.T) {
	bus := events.NewBus(nil)
	calls := 0
	bus.Subscribe(events.OnConditionHealed, &testListener{id: "a", handler: func(*events.Event) error {
		calls++
		return nil
	}})

	require.NoError(t, bus.Emit(events.NewEvent(events.OnSideEffectApplied, nil, nil)))
	assert.Zero(t, calls)

	require.NoError(t, bus.Emit(events.NewEvent(events.OnConditionHealed, nil, nil)))
	assert.Equal(t, 1, calls)

	assert.Error(t, bus.Emit(nil))
}

func TestEvent_Context(t *testing.T) {
	defs := testutils.TestDefinitions()
	char := testutils.CreateTestCharacter("char", "Tess")
	cause := testutils.Afflict(char, defs, testutils.KindHealingFactor, "", 1)

	event := events.NewEvent(events.OnConditionHealed, char, nil).
		WithContext(events.ContextCause, cause).
		WithContext(events.ContextTick, 60).
		WithContext(events.ContextProfile, "healing_factor")

	got, ok := event.GetConditionContext(events.ContextCause)
	require.True(t, ok)
	assert.Same(t, cause, got)

	tick, ok := event.GetIntContext(events.ContextTick)
	require.True(t, ok)
	assert.Equal(t, 60, tick)

	profile, ok := event.GetStringContext(events.ContextProfile)
	require.True(t, ok)
	assert.Equal(t, "healing_factor", profile)

	_, ok = event.GetIntContext(events.ContextCause)
	assert.False(t, ok)
	_, ok = event.GetStringContext(events.ContextTick)
	assert.False(t, ok)
}
