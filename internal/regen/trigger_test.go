package regen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/KirkDiggler/regen-engine/internal/dice/mock"
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
	"github.com/KirkDiggler/regen-engine/internal/events"
	"github.com/KirkDiggler/regen-engine/internal/regen"
	"github.com/KirkDiggler/regen-engine/internal/testutils"
)

func newTrigger(t *testing.T, roller *mockdice.ManualMockRoller, profiles regen.Profiles) (*regen.Trigger, *events.Bus) {
	t.Helper()

	service, err := regen.NewService(&regen.ServiceConfig{Roller: roller})
	require.NoError(t, err)

	trigger := regen.NewTrigger(service, profiles)
	bus := events.NewBus(nil)
	bus.Subscribe(events.OnConditionEffect, trigger)
	return trigger, bus
}

func TestTrigger_RunsConditionProfile(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetInts(0)
	_, bus := newTrigger(t, roller, regen.Profiles{
		"healing_factor": {Name: "healing_factor"},
	})

	defs := testutils.TestDefinitions()
	char := testutils.CreateTestCharacter("char", "Tess")
	backPain := testutils.Afflict(char, defs, testutils.KindBadBack, "", 0.4)
	cause := testutils.Afflict(char, defs, testutils.KindHealingFactor, "", 1)

	err := bus.Emit(events.NewEvent(events.OnConditionEffect, char, cause))

	require.NoError(t, err)
	assert.True(t, backPain.PendingRemoval())
}

func TestTrigger_ProfileFromEventContext(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetInts(0)
	_, bus := newTrigger(t, roller, regen.Profiles{
		"healing_factor": {Name: "healing_factor"},
		"scar_remover": {
			Name: "scar_remover",
			Selection: regen.SelectionConfig{
				Allow:      regen.NewKindSet(testutils.KindScar),
				InjuryMode: regen.InjuryModeAutoDeny,
			},
		},
	})

	defs := testutils.TestDefinitions()
	char := testutils.CreateTestCharacter("char", "Tess")
	backPain := testutils.Afflict(char, defs, testutils.KindBadBack, "", 0.4)
	scar := testutils.AfflictPermanent(char, defs, testutils.KindScar, "left-arm", 5)
	cause := testutils.Afflict(char, defs, testutils.KindHealingFactor, "", 1)

	event := events.NewEvent(events.OnConditionEffect, char, cause).
		WithContext(events.ContextProfile, "scar_remover")
	require.NoError(t, bus.Emit(event))

	assert.True(t, scar.PendingRemoval())
	assert.False(t, backPain.PendingRemoval())
}

func TestTrigger_UnknownProfile(t *testing.T) {
	_, bus := newTrigger(t, mockdice.NewManualMockRoller(), regen.Profiles{})

	defs := testutils.TestDefinitions()
	char := testutils.CreateTestCharacter("char", "Tess")
	cause := testutils.Afflict(char, defs, testutils.KindHealingFactor, "", 1)

	err := bus.Emit(events.NewEvent(events.OnConditionEffect, char, cause))

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTrigger_IgnoresOtherEvents(t *testing.T) {
	// An empty roller panics if anything is selected
	trigger, _ := newTrigger(t, mockdice.NewManualMockRoller(), regen.Profiles{})

	defs := testutils.TestDefinitions()
	char := testutils.CreateTestCharacter("char", "Tess")
	testutils.Afflict(char, defs, testutils.KindBadBack, "", 0.4)
	plain := testutils.Afflict(char, defs, testutils.KindFatigue, "", 1)
	cause := testutils.Afflict(char, defs, testutils.KindHealingFactor, "", 1)

	assert.NoError(t, trigger.HandleEvent(events.NewEvent(events.OnConditionEffect, char, plain)))
	assert.NoError(t, trigger.HandleEvent(events.NewEvent(events.OnConditionHealed, char, cause)))
	assert.NoError(t, trigger.HandleEvent(events.NewEvent(events.OnConditionEffect, char, nil)))
	assert.Equal(t, "regen_trigger", trigger.ID())
}
