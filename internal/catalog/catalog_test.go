package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/KirkDiggler/regen-engine/internal/catalog"
	"github.com/KirkDiggler/regen-engine/internal/domain/health"
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
	"github.com/KirkDiggler/regen-engine/internal/regen"
)

func TestDefault(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"healing_factor", "limb_regrowth", "scar_remover"}, c.ProfileNames())
	assert.Equal(t, []string{"humanoid"}, c.BodyNames())
	assert.Contains(t, c.Kinds(), health.Kind("missing_part"))

	def, ok := c.Definition("cataract")
	require.True(t, ok)
	assert.True(t, def.Chronic)
	assert.False(t, def.Extensible)

	// Every profile referenced by a condition resolves
	for _, kind := range c.Kinds() {
		def, _ := c.Definition(kind)
		if def.RegenProfile == "" {
			continue
		}
		_, ok := c.Profile(def.RegenProfile)
		assert.True(t, ok, "profile of %s", kind)
	}
}

func TestDefault_LimbRegrowthProfile(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	got, ok := c.Profile("limb_regrowth")
	require.True(t, ok)

	ache, _ := c.Definition("regrowth_ache")
	tissue, _ := c.Definition("scar_tissue")
	want := &regen.Profile{
		Name: "limb_regrowth",
		Selection: regen.SelectionConfig{
			Allow:            regen.NewKindSet("missing_part"),
			CanHealDestroyed: true,
			InjuryMode:       regen.InjuryModeNone,
		},
		SideEffects: []regen.SideEffectRule{
			{Def: ache, Severity: regen.FloatRange{Min: 0.3, Max: 0.8}, Chance: 1},
			{Def: tissue, Severity: regen.FloatRange{Min: 0.1, Max: 0.2}, Chance: 0.1},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("limb_regrowth profile mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_ListPresence(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	healing, _ := c.Profile("healing_factor")
	assert.Nil(t, healing.Selection.Allow, "absent allow list stays nil")
	assert.True(t, healing.Selection.Deny.Contains("bionic_arm"))

	remover, _ := c.Profile("scar_remover")
	assert.Equal(t, regen.InjuryModeAutoDeny, remover.Selection.InjuryMode)
}

func TestBody_ReturnsLinkedCopy(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	first, ok := c.Body("humanoid")
	require.True(t, ok)
	second, _ := c.Body("humanoid")
	assert.NotSame(t, first, second)

	thumb := first.Find("left-thumb")
	require.NotNil(t, thumb)
	assert.Equal(t, "left-hand", thumb.Parent.ID)
	assert.Same(t, first.Find("left-hand"), thumb.Parent)

	_, ok = c.Body("centaur")
	assert.False(t, ok)
}

func TestParse_EmptyAllowListIsKept(t *testing.T) {
	c, err := catalog.Parse([]byte(`
conditions:
  - kind: scar
    variant: injury
profiles:
  - name: nothing
    allow: []
`))
	require.NoError(t, err)

	p, _ := c.Profile("nothing")
	assert.NotNil(t, p.Selection.Allow)
	assert.False(t, p.Selection.Allow.Contains("scar"))

	def, _ := c.Definition("scar")
	assert.Equal(t, health.VariantInjury, def.Variant)
}

func TestParse_DefaultsVariant(t *testing.T) {
	c, err := catalog.Parse([]byte("conditions:\n  - kind: frail\n"))
	require.NoError(t, err)

	def, _ := c.Definition("frail")
	assert.Equal(t, health.VariantGeneric, def.Variant)
}

func TestParse_ReportsEveryProblem(t *testing.T) {
	_, err := catalog.Parse([]byte(`
conditions:
  - kind: scar
    variant: wound
  - kind: fatigue
    regenProfile: ghost
  - kind: fatigue
  - kind: missing_part
    variant: missing_region
bodies:
  - name: stick
    root:
      id: torso
      children:
        - id: torso
profiles:
  - name: broken
    injuryMode: sometimes
    deny: [nope]
    sideEffects:
      - kind: fatigue
        severity: "0.5~0.1"
        chance: 0.5
      - kind: fatigue
        severity: "1"
        chance: 2
      - kind: missing_part
        severity: "1"
        chance: 1
`))

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	problems := multierr.Errors(appErr.Cause)
	assert.Len(t, problems, 9)
}

func TestParse_Malformed(t *testing.T) {
	_, err := catalog.Parse([]byte("conditions: [\n"))
	assert.True(t, apperrors.IsValidation(err))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("conditions:\n  - kind: frail\n    chronic: true\n"), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []health.Kind{"frail"}, c.Kinds())

	c, err = catalog.Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ProfileNames())

	_, err = catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
