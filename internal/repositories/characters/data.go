package characters

import (
	"github.com/KirkDiggler/regen-engine/internal/domain/health"
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
	"github.com/KirkDiggler/regen-engine/internal/uuid"
)

// CharacterData represents the serialized form of a character in Redis
type CharacterData struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	PlayerControlled bool               `json:"player_controlled"`
	Body             *health.BodyRegion `json:"body"`
	Conditions       []ConditionData    `json:"conditions"`
}

// ConditionData is a condition reduced to references into the catalog and body
type ConditionData struct {
	ID             string      `json:"id"`
	Kind           health.Kind `json:"kind"`
	Severity       float64     `json:"severity"`
	RegionID       string      `json:"region_id,omitempty"`
	Permanent      bool        `json:"permanent,omitempty"`
	PendingRemoval bool        `json:"pending_removal,omitempty"`
}

func toCharacterData(char *health.Character) *CharacterData {
	data := &CharacterData{
		ID:               char.ID,
		Name:             char.Name,
		PlayerControlled: char.PlayerControlled,
		Body:             char.Body,
	}

	for _, c := range char.Health.Conditions() {
		cd := ConditionData{
			ID:             c.ID,
			Kind:           c.Kind(),
			Severity:       c.Severity,
			Permanent:      c.Permanent,
			PendingRemoval: c.PendingRemoval(),
		}
		if c.Region != nil {
			cd.RegionID = c.Region.ID
		}
		data.Conditions = append(data.Conditions, cd)
	}
	return data
}

func fromCharacterData(data *CharacterData, defs health.DefinitionLookup, ids uuid.Generator) (*health.Character, error) {
	if data.Body == nil {
		return nil, apperrors.Internalf("character %s stored without a body", data.ID)
	}
	data.Body.LinkParents()

	char := health.NewCharacter(data.ID, data.Name, data.Body, ids)
	char.PlayerControlled = data.PlayerControlled

	for _, cd := range data.Conditions {
		def, ok := defs.Definition(cd.Kind)
		if !ok {
			return nil, apperrors.NotFoundf("condition kind %s of %s is not defined", cd.Kind, data.ID).
				WithMeta("condition_kind", string(cd.Kind))
		}

		var region *health.BodyRegion
		if cd.RegionID != "" {
			region = data.Body.Find(cd.RegionID)
			if region == nil {
				return nil, apperrors.Internalf("condition %s of %s sits on unknown region %s", cd.ID, data.ID, cd.RegionID)
			}
		}

		c := health.NewCondition(def, region, cd.Severity)
		c.ID = cd.ID
		c.Permanent = cd.Permanent
		// Markers go on before Add so a restored region doesn't reject what was attached after it
		if cd.PendingRemoval {
			if err := c.AddExtension(health.RemovalMarker{}); err != nil {
				return nil, apperrors.Wrapf(err, "failed to restore removal marker on %s", cd.ID)
			}
		}

		if err := char.Health.Add(c); err != nil {
			return nil, apperrors.Wrapf(err, "failed to restore condition %s", cd.ID)
		}
	}
	return char, nil
}
