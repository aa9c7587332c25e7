package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
	"github.com/KirkDiggler/regen-engine/internal/repositories/characters"
	"github.com/KirkDiggler/regen-engine/internal/uuid"
)

type harness struct {
	t    *testing.T
	opts options
}

func newHarness(t *testing.T) *harness {
	for _, key := range []string{
		"REDIS_URL", "CATALOG_PATH", "LOG_LEVEL", "RNG_SEED", "TICK_INTERVAL", "SIM_WORKERS",
		"DISCORD_TOKEN", "DISCORD_CHANNEL_ID", "NOTIFY_LOCALE", "NOTIFY_EVERYONE",
	} {
		t.Setenv(key, "")
	}

	return &harness{
		t: t,
		opts: options{
			repo:   characters.NewInMemoryRepository(),
			ids:    &uuid.SequenceGenerator{Prefix: "c"},
			logger: zap.NewNop(),
		},
	}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	opts := h.opts
	root := newRootCmd(&opts)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

func TestCLI_RegrowLostHand(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "spawned Tess (tess)\n", h.mustRun("spawn", "tess", "Tess"))
	assert.Contains(t, h.mustRun("afflict", "tess", "missing_part", "--region", "left-hand", "--severity", "0"), "(c-1)")
	assert.Contains(t, h.mustRun("afflict", "tess", "limb_regrowth"), "(c-2)")

	out := h.mustRun("show", "tess")
	assert.Contains(t, out, "left-hand (missing)")
	assert.Contains(t, out, "left-thumb (missing)")

	out = h.mustRun("heal", "tess", "--profile", "limb_regrowth", "--cause", "c-2", "--seed", "1")
	assert.Contains(t, out, "healed missing (left hand) (c-1)")
	assert.Contains(t, out, "side effect: regrowth ache (left hand)")

	out = h.mustRun("show", "tess")
	assert.NotContains(t, out, "(missing)")
	assert.Contains(t, out, "[removing]")

	assert.Equal(t, "advanced 1 characters by 1 ticks\n", h.mustRun("tick", "--seed", "1"))

	out = h.mustRun("show", "tess")
	assert.NotContains(t, out, "c-1")
	assert.NotContains(t, out, "[removing]")
	assert.Contains(t, out, "limb regrowth")
}

func TestCLI_NothingToHeal(t *testing.T) {
	h := newHarness(t)
	h.mustRun("spawn", "bram", "Bram", "--npc")
	h.mustRun("afflict", "bram", "cut", "--region", "head", "--severity", "3")

	out := h.mustRun("heal", "bram", "--profile", "healing_factor", "--seed", "7")

	assert.Equal(t, "nothing on Bram for healing_factor to heal\n", out)
}

func TestCLI_Errors(t *testing.T) {
	h := newHarness(t)
	h.mustRun("spawn", "tess", "Tess")

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown character", args: []string{"show", "ghost"}},
		{name: "unknown body", args: []string{"spawn", "x", "X", "--body", "centaur"}},
		{name: "unknown kind", args: []string{"afflict", "tess", "dragon_pox"}},
		{name: "unknown region", args: []string{"afflict", "tess", "cut", "--region", "tail"}},
		{name: "unknown profile", args: []string{"heal", "tess", "--profile", "nope"}},
		{name: "unknown cause", args: []string{"heal", "tess", "--profile", "healing_factor", "--cause", "c-99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.run(tt.args...)
			require.Error(t, err)
			assert.True(t, apperrors.IsNotFound(err), err.Error())
		})
	}
}

func TestCLI_Catalog(t *testing.T) {
	out := newHarness(t).mustRun("catalog")

	assert.Contains(t, out, "bodies: humanoid")
	assert.Contains(t, out, "profiles: healing_factor, limb_regrowth, scar_remover")
}
