package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/regen-engine/internal/domain/health"
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
	"github.com/KirkDiggler/regen-engine/internal/regen"
)

//go:embed default.yaml
var defaultCatalog []byte

type file struct {
	Conditions []*health.Definition `yaml:"conditions"`
	Bodies     []bodyFile           `yaml:"bodies"`
	Profiles   []profileFile        `yaml:"profiles"`
}

type bodyFile struct {
	Name string             `yaml:"name"`
	Root *health.BodyRegion `yaml:"root"`
}

type profileFile struct {
	Name             string           `yaml:"name"`
	Allow            []health.Kind    `yaml:"allow"`
	Deny             []health.Kind    `yaml:"deny"`
	CanHealDestroyed bool             `yaml:"canHealDestroyed"`
	InjuryMode       string           `yaml:"injuryMode"`
	SideEffects      []sideEffectFile `yaml:"sideEffects"`
}

type sideEffectFile struct {
	Kind          health.Kind `yaml:"kind"`
	Severity      string      `yaml:"severity"`
	ScaleBySource bool        `yaml:"scaleBySource"`
	Global        bool        `yaml:"global"`
	Chance        float64     `yaml:"chance"`
}

// Catalog holds the game data the engine runs on. It is immutable once loaded.
type Catalog struct {
	definitions map[health.Kind]*health.Definition
	bodies      map[string]*health.BodyRegion
	profiles    map[string]*regen.Profile
}

var (
	_ health.DefinitionLookup = (*Catalog)(nil)
	_ regen.ProfileSource     = (*Catalog)(nil)
)

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path. An empty path loads the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to read catalog %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog. All validation problems are
// reported together.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeValidation, "failed to parse catalog")
	}

	c := &Catalog{
		definitions: make(map[health.Kind]*health.Definition, len(f.Conditions)),
		bodies:      make(map[string]*health.BodyRegion, len(f.Bodies)),
		profiles:    make(map[string]*regen.Profile, len(f.Profiles)),
	}

	var errs error
	for i, def := range f.Conditions {
		errs = multierr.Append(errs, c.addDefinition(i, def))
	}
	for _, body := range f.Bodies {
		errs = multierr.Append(errs, c.addBody(body))
	}
	for _, p := range f.Profiles {
		errs = multierr.Append(errs, c.addProfile(p))
	}
	for _, def := range c.definitions {
		if def.RegenProfile != "" && c.profiles[def.RegenProfile] == nil {
			errs = multierr.Append(errs, fmt.Errorf("condition %s: unknown regen profile %q", def.Kind, def.RegenProfile))
		}
	}

	if errs != nil {
		return nil, apperrors.WrapWithCode(errs, apperrors.CodeValidation, "invalid catalog")
	}
	return c, nil
}

func (c *Catalog) addDefinition(i int, def *health.Definition) error {
	if def == nil || def.Kind == "" {
		return fmt.Errorf("condition #%d: kind is required", i)
	}
	if def.Variant == "" {
		def.Variant = health.VariantGeneric
	}
	if !def.Variant.Valid() {
		return fmt.Errorf("condition %s: unknown variant %q", def.Kind, def.Variant)
	}
	if _, exists := c.definitions[def.Kind]; exists {
		return fmt.Errorf("condition %s: defined twice", def.Kind)
	}
	c.definitions[def.Kind] = def
	return nil
}

func (c *Catalog) addBody(body bodyFile) error {
	if body.Name == "" || body.Root == nil {
		return fmt.Errorf("body %q: name and root are required", body.Name)
	}
	if _, exists := c.bodies[body.Name]; exists {
		return fmt.Errorf("body %s: defined twice", body.Name)
	}

	var errs error
	seen := make(map[string]struct{})
	body.Root.Walk(func(r *health.BodyRegion) bool {
		if r.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("body %s: region without id", body.Name))
			return true
		}
		if _, dup := seen[r.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("body %s: region %s defined twice", body.Name, r.ID))
		}
		seen[r.ID] = struct{}{}
		if r.HitPoints < 0 {
			errs = multierr.Append(errs, fmt.Errorf("body %s: region %s has negative hit points", body.Name, r.ID))
		}
		return true
	})
	if errs != nil {
		return errs
	}

	body.Root.LinkParents()
	c.bodies[body.Name] = body.Root
	return nil
}

func (c *Catalog) addProfile(p profileFile) error {
	if p.Name == "" {
		return fmt.Errorf("profile without name")
	}
	if _, exists := c.profiles[p.Name]; exists {
		return fmt.Errorf("profile %s: defined twice", p.Name)
	}

	var errs error
	mode, err := regen.ParseInjuryMode(p.InjuryMode)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("profile %s: %w", p.Name, err))
	}

	profile := &regen.Profile{
		Name: p.Name,
		Selection: regen.SelectionConfig{
			CanHealDestroyed: p.CanHealDestroyed,
			InjuryMode:       mode,
		},
	}

	// A list that is present but empty still counts as a list
	if p.Allow != nil {
		profile.Selection.Allow = regen.NewKindSet(p.Allow...)
		errs = multierr.Append(errs, c.checkKinds(p.Name, "allow", p.Allow))
	}
	if p.Deny != nil {
		profile.Selection.Deny = regen.NewKindSet(p.Deny...)
		errs = multierr.Append(errs, c.checkKinds(p.Name, "deny", p.Deny))
	}

	for i, se := range p.SideEffects {
		rule, err := c.sideEffect(se)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("profile %s: side effect #%d: %w", p.Name, i, err))
			continue
		}
		profile.SideEffects = append(profile.SideEffects, rule)
	}

	if errs != nil {
		return errs
	}
	c.profiles[p.Name] = profile
	return nil
}

func (c *Catalog) sideEffect(se sideEffectFile) (regen.SideEffectRule, error) {
	def, ok := c.definitions[se.Kind]
	if !ok {
		return regen.SideEffectRule{}, fmt.Errorf("unknown condition kind %q", se.Kind)
	}
	if def.Variant == health.VariantMissingRegion {
		return regen.SideEffectRule{}, fmt.Errorf("%s removes a region and cannot be a side effect", se.Kind)
	}
	if se.Chance < 0 || se.Chance > 1 {
		return regen.SideEffectRule{}, fmt.Errorf("chance %v outside [0, 1]", se.Chance)
	}

	severity, err := regen.ParseFloatRange(se.Severity)
	if err != nil {
		return regen.SideEffectRule{}, err
	}

	return regen.SideEffectRule{
		Def:           def,
		Severity:      severity,
		ScaleBySource: se.ScaleBySource,
		Global:        se.Global,
		Chance:        se.Chance,
	}, nil
}

func (c *Catalog) checkKinds(profile, list string, kinds []health.Kind) error {
	var errs error
	for _, k := range kinds {
		if _, ok := c.definitions[k]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("profile %s: %s list names unknown kind %q", profile, list, k))
		}
	}
	return errs
}

// Definition implements health.DefinitionLookup
func (c *Catalog) Definition(kind health.Kind) (*health.Definition, bool) {
	def, ok := c.definitions[kind]
	return def, ok
}

// Profile implements regen.ProfileSource
func (c *Catalog) Profile(name string) (*regen.Profile, bool) {
	p, ok := c.profiles[name]
	return p, ok
}

// Body returns a fresh copy of the named body template
func (c *Catalog) Body(name string) (*health.BodyRegion, bool) {
	root, ok := c.bodies[name]
	if !ok {
		return nil, false
	}
	return root.Clone(), true
}

// Kinds returns every defined condition kind, sorted
func (c *Catalog) Kinds() []health.Kind {
	kinds := make([]health.Kind, 0, len(c.definitions))
	for k := range c.definitions {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ProfileNames returns every profile name, sorted
func (c *Catalog) ProfileNames() []string {
	names := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BodyNames returns every body template name, sorted
func (c *Catalog) BodyNames() []string {
	names := make([]string, 0, len(c.bodies))
	for name := range c.bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
