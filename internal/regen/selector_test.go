package regen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/regen-engine/internal/dice"
	mockdice "github.com/KirkDiggler/regen-engine/internal/dice/mock"
	"github.com/KirkDiggler/regen-engine/internal/regen"
	"github.com/KirkDiggler/regen-engine/internal/testutils"
)

func TestPickRandom_UsesRollerIndex(t *testing.T) {
	defs := testutils.TestDefinitions()
	char := testutils.CreateTestCharacter("char", "Tess")
	back := testutils.Afflict(char, defs, testutils.KindBadBack, "", 0.4)
	cataract := testutils.Afflict(char, defs, testutils.KindCataract, "left-eye", 0.5)

	roller := mockdice.NewManualMockRoller()
	roller.SetInts(1, 0)

	assert.Same(t, cataract, regen.PickRandom(char, nil, regen.SelectionConfig{}, roller))
	assert.Same(t, back, regen.PickRandom(char, nil, regen.SelectionConfig{}, roller))
}

func TestPickRandom_ExcludesCause(t *testing.T) {
	defs := testutils.TestDefinitions()
	char := testutils.CreateTestCharacter("char", "Tess")
	cause := testutils.Afflict(char, defs, testutils.KindBadBack, "", 0.4)
	cataract := testutils.Afflict(char, defs, testutils.KindCataract, "left-eye", 0.5)

	roller := mockdice.NewManualMockRoller()
	roller.SetInts(0)
	assert.Same(t, cataract, regen.PickRandom(char, cause, regen.SelectionConfig{}, roller))

	seeded := dice.NewSeededRoller(42)
	for i := 0; i < 200; i++ {
		assert.NotSame(t, cause, regen.PickRandom(char, cause, regen.SelectionConfig{}, seeded))
	}
}

func TestPickRandom_EmptyPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: an empty pool must not consume a roll
	roller := mockdice.NewMockRoller(ctrl)

	defs := testutils.TestDefinitions()
	char := testutils.CreateTestCharacter("char", "Tess")

	t.Run("nothing permanent", func(t *testing.T) {
		testutils.Afflict(char, defs, testutils.KindCut, "head", 2)
		assert.Nil(t, regen.PickRandom(char, nil, regen.SelectionConfig{}, roller))
	})

	t.Run("only the cause qualifies", func(t *testing.T) {
		cause := testutils.Afflict(char, defs, testutils.KindBadBack, "", 0.4)
		assert.Nil(t, regen.PickRandom(char, cause, regen.SelectionConfig{}, roller))
	})

	t.Run("everything denied", func(t *testing.T) {
		testutils.Afflict(char, defs, testutils.KindCataract, "left-eye", 0.5)
		cfg := regen.SelectionConfig{Allow: regen.NewKindSet()}
		assert.Nil(t, regen.PickRandom(char, nil, cfg, roller))
	})
}

func TestPickRandom_OnlyReturnsEligible(t *testing.T) {
	char, _ := mixedCharacter()
	roller := dice.NewSeededRoller(7)

	for _, cfg := range allConfigs() {
		eligible := regen.CurablePermanent(char, cfg)
		picked := regen.PickRandom(char, nil, cfg, roller)
		if len(eligible) == 0 {
			assert.Nil(t, picked)
			continue
		}
		require.NotNil(t, picked)
		assert.Contains(t, eligible, picked)
	}
}
