package health

import "fmt"

// Kind identifies a condition definition
type Kind string

// Variant is the structural class of a condition
type Variant string

const (
	VariantGeneric       Variant = "generic"
	VariantInjury        Variant = "injury"
	VariantMissingRegion Variant = "missing_region"
)

// Valid reports whether v is a known variant
func (v Variant) Valid() bool {
	switch v {
	case VariantGeneric, VariantInjury, VariantMissingRegion:
		return true
	}
	return false
}

// Definition describes a kind of condition
type Definition struct {
	Kind    Kind    `yaml:"kind"`
	Label   string  `yaml:"label"`
	Variant Variant `yaml:"variant"`

	// Chronic conditions never resolve on their own
	Chronic bool `yaml:"chronic"`

	// KeepOnRegionRestore survives restoration of the region it sits on
	KeepOnRegionRestore bool `yaml:"keepOnRegionRestore"`

	// Extensible conditions accept extensions, which is what allows them to be
	// removed on the host's next sweep instead of immediately
	Extensible bool `yaml:"extensible"`

	// RegenProfile names the regeneration profile fired by this condition's
	// periodic effect. Empty means the condition triggers nothing.
	RegenProfile string `yaml:"regenProfile,omitempty"`
}

// DefinitionLookup resolves definitions by kind
type DefinitionLookup interface {
	Definition(kind Kind) (*Definition, bool)
}

// Extension is behavior attached to an extensible condition
type Extension interface {
	Name() string
	ShouldRemove() bool
}

// RemovalMarker asks the host to drop its condition on the next sweep
type RemovalMarker struct{}

// Name implements Extension
func (RemovalMarker) Name() string { return "removal_marker" }

// ShouldRemove implements Extension
func (RemovalMarker) ShouldRemove() bool { return true }

// String shows up in debug dumps; visible on a live condition it means the sweep never ran
func (RemovalMarker) String() string { return "should be removed next tick" }

// Condition is one affliction instance on a character
type Condition struct {
	ID        string
	Def       *Definition
	Severity  float64
	Region    *BodyRegion
	Permanent bool

	extensions []Extension
}

// NewCondition creates an unattached condition
func NewCondition(def *Definition, region *BodyRegion, severity float64) *Condition {
	return &Condition{
		Def:      def,
		Region:   region,
		Severity: severity,
	}
}

// Kind returns the definition kind
func (c *Condition) Kind() Kind {
	return c.Def.Kind
}

// Variant returns the definition variant
func (c *Condition) Variant() Variant {
	return c.Def.Variant
}

// IsMissingRegion reports whether c marks its region as absent
func (c *Condition) IsMissingRegion() bool {
	return c.Variant() == VariantMissingRegion
}

// IsInjury reports whether c is injury-like: an injury or a missing region
func (c *Condition) IsInjury() bool {
	v := c.Variant()
	return v == VariantInjury || v == VariantMissingRegion
}

// SupportsDeferredRemoval reports whether extensions can be attached to c
func (c *Condition) SupportsDeferredRemoval() bool {
	return c.Def.Extensible
}

// AddExtension attaches ext. Conditions without extension support reject it.
func (c *Condition) AddExtension(ext Extension) error {
	if !c.SupportsDeferredRemoval() {
		return fmt.Errorf("condition %s (%s) does not support extensions", c.ID, c.Def.Kind)
	}
	c.extensions = append(c.extensions, ext)
	return nil
}

// PendingRemoval reports whether any extension asks for c to be removed
func (c *Condition) PendingRemoval() bool {
	for _, ext := range c.extensions {
		if ext.ShouldRemove() {
			return true
		}
	}
	return false
}

// Label returns a display label, qualified by region when attached to one
func (c *Condition) Label() string {
	label := c.Def.Label
	if label == "" {
		label = string(c.Def.Kind)
	}
	if c.Region != nil && c.Region.Label != "" {
		return fmt.Sprintf("%s (%s)", label, c.Region.Label)
	}
	return label
}
