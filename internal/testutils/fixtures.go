package testutils

import (
	"github.com/KirkDiggler/regen-engine/internal/domain/health"
	"github.com/KirkDiggler/regen-engine/internal/uuid"
)

// Condition kinds available through TestDefinitions
const (
	KindScar          health.Kind = "scar"
	KindCut           health.Kind = "cut"
	KindMissingPart   health.Kind = "missing_part"
	KindBadBack       health.Kind = "bad_back"
	KindCataract      health.Kind = "cataract"
	KindImplant       health.Kind = "implant"
	KindHealingFactor health.Kind = "healing_factor"
	KindScarTissue    health.Kind = "scar_tissue"
	KindFatigue       health.Kind = "fatigue"
)

// Definitions is a DefinitionLookup over a plain map
type Definitions map[health.Kind]*health.Definition

// Definition implements health.DefinitionLookup
func (d Definitions) Definition(kind health.Kind) (*health.Definition, bool) {
	def, ok := d[kind]
	return def, ok
}

// TestDefinitions returns a fresh set of condition definitions
func TestDefinitions() Definitions {
	return Definitions{
		KindScar:          {Kind: KindScar, Label: "scar", Variant: health.VariantInjury, Extensible: true},
		KindCut:           {Kind: KindCut, Label: "cut", Variant: health.VariantInjury, Extensible: true},
		KindMissingPart:   {Kind: KindMissingPart, Label: "missing", Variant: health.VariantMissingRegion, Extensible: true},
		KindBadBack:       {Kind: KindBadBack, Label: "bad back", Variant: health.VariantGeneric, Chronic: true, Extensible: true},
		KindCataract:      {Kind: KindCataract, Label: "cataract", Variant: health.VariantGeneric, Chronic: true},
		KindImplant:       {Kind: KindImplant, Label: "implant", Variant: health.VariantGeneric, KeepOnRegionRestore: true, Extensible: true},
		KindHealingFactor: {Kind: KindHealingFactor, Label: "healing factor", Variant: health.VariantGeneric, Extensible: true, RegenProfile: "healing_factor"},
		KindScarTissue:    {Kind: KindScarTissue, Label: "scar tissue", Variant: health.VariantGeneric, Extensible: true},
		KindFatigue:       {Kind: KindFatigue, Label: "fatigue", Variant: health.VariantGeneric, Extensible: true},
	}
}

// CreateTestBody builds a small humanoid body:
//
//	torso
//	├── neck
//	│   └── head
//	│       └── left-eye
//	└── left-shoulder
//	    └── left-arm
//	        └── left-hand
//	            └── left-finger
func CreateTestBody() *health.BodyRegion {
	torso := &health.BodyRegion{ID: "torso", Label: "torso", HitPoints: 40}

	neck := torso.AddChild(&health.BodyRegion{ID: "neck", Label: "neck", HitPoints: 25})
	head := neck.AddChild(&health.BodyRegion{ID: "head", Label: "head", HitPoints: 25})
	head.AddChild(&health.BodyRegion{ID: "left-eye", Label: "left eye", HitPoints: 10})

	shoulder := torso.AddChild(&health.BodyRegion{ID: "left-shoulder", Label: "left shoulder", HitPoints: 30})
	arm := shoulder.AddChild(&health.BodyRegion{ID: "left-arm", Label: "left arm", HitPoints: 30})
	hand := arm.AddChild(&health.BodyRegion{ID: "left-hand", Label: "left hand", HitPoints: 20})
	hand.AddChild(&health.BodyRegion{ID: "left-finger", Label: "left finger", HitPoints: 8})

	return torso
}

// CreateTestCharacter creates a player-controlled character with the test body
// and deterministic condition IDs
func CreateTestCharacter(id, name string) *health.Character {
	char := health.NewCharacter(id, name, CreateTestBody(), &uuid.SequenceGenerator{Prefix: id})
	char.PlayerControlled = true
	return char
}

// Afflict attaches a condition of kind to the region with regionID ("" for
// global) and returns it. It panics on failure, fixtures are expected to be valid.
func Afflict(char *health.Character, defs Definitions, kind health.Kind, regionID string, severity float64) *health.Condition {
	var region *health.BodyRegion
	if regionID != "" {
		region = char.Body.Find(regionID)
		if region == nil {
			panic("unknown test region " + regionID)
		}
	}
	cond := health.NewCondition(defs[kind], region, severity)
	if err := char.Health.Add(cond); err != nil {
		panic(err)
	}
	return cond
}

// AfflictPermanent is Afflict for a condition flagged permanent
func AfflictPermanent(char *health.Character, defs Definitions, kind health.Kind, regionID string, severity float64) *health.Condition {
	cond := Afflict(char, defs, kind, regionID, severity)
	cond.Permanent = true
	return cond
}
