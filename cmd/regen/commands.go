package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/regen-engine/internal/domain/health"
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
)

func newSpawnCmd(a *app) *cobra.Command {
	var body string
	var npc bool

	cmd := &cobra.Command{
		Use:   "spawn <id> <name>",
		Short: "Create a character from a body template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, ok := a.catalog.Body(body)
			if !ok {
				return apperrors.NotFoundf("body template %s not found", body)
			}

			char := health.NewCharacter(args[0], args[1], template, a.ids)
			char.PlayerControlled = !npc
			if err := a.repo.Put(cmd.Context(), char); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "spawned %s (%s)\n", char.Label(), char.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&body, "body", "humanoid", "Body template from the catalog")
	cmd.Flags().BoolVar(&npc, "npc", false, "Character is not controlled by a player")
	return cmd
}

func newAfflictCmd(a *app) *cobra.Command {
	var regionID string
	var severity float64
	var permanent bool

	cmd := &cobra.Command{
		Use:   "afflict <character-id> <kind>",
		Short: "Attach a condition to a character",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			char, err := a.repo.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			def, ok := a.catalog.Definition(health.Kind(args[1]))
			if !ok {
				return apperrors.NotFoundf("condition kind %s not found", args[1])
			}

			var region *health.BodyRegion
			if regionID != "" {
				region = char.Body.Find(regionID)
				if region == nil {
					return apperrors.NotFoundf("region %s not found on %s", regionID, char.ID)
				}
			}

			cond := health.NewCondition(def, region, severity)
			cond.Permanent = permanent
			if err := char.Health.Add(cond); err != nil {
				return err
			}
			if err := a.repo.Put(cmd.Context(), char); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s now has %s (%s)\n", char.Label(), cond.Label(), cond.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&regionID, "region", "", "Region ID (default: whole body)")
	cmd.Flags().Float64Var(&severity, "severity", 1, "Condition severity")
	cmd.Flags().BoolVar(&permanent, "permanent", false, "Mark the condition permanent")
	return cmd
}

func newHealCmd(a *app) *cobra.Command {
	var causeID, profileName string

	cmd := &cobra.Command{
		Use:   "heal <character-id>",
		Short: "Heal one random permanent condition with a regeneration profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			char, err := a.repo.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			profile, ok := a.catalog.Profile(profileName)
			if !ok {
				return apperrors.NotFoundf("regen profile %s not found", profileName)
			}

			var cause *health.Condition
			if causeID != "" {
				cause = health.FindCondition(char.Health, causeID)
				if cause == nil {
					return apperrors.NotFoundf("condition %s not found on %s", causeID, char.ID).
						WithMeta("condition_id", causeID)
				}
			}

			result, err := a.service.TryHealRandomPermanentCondition(char, cause, profile)
			if err != nil {
				return err
			}
			if result == nil {
				fmt.Fprintf(a.out, "nothing on %s for %s to heal\n", char.Label(), profileName)
				return nil
			}

			fmt.Fprintf(a.out, "healed %s (%s)\n", result.Healed.Label(), result.Healed.ID)
			for _, added := range result.SideEffects {
				fmt.Fprintf(a.out, "side effect: %s (%s)\n", added.Label(), added.ID)
			}
			return a.repo.Put(cmd.Context(), char)
		},
	}
	cmd.Flags().StringVar(&causeID, "cause", "", "ID of the condition doing the healing")
	cmd.Flags().StringVar(&profileName, "profile", "", "Regeneration profile from the catalog")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func newTickCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Advance the simulation for every stored character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return apperrors.InvalidArgumentf("count must be at least 1, got %d", count)
			}

			chars, err := a.repo.List(cmd.Context())
			if err != nil {
				return err
			}

			for i := 0; i < count; i++ {
				if err := a.ticker.TickAll(cmd.Context(), chars); err != nil {
					return err
				}
			}

			for _, char := range chars {
				if err := a.repo.Put(cmd.Context(), char); err != nil {
					return err
				}
			}

			a.logger.Info("ticked", zap.Int("ticks", count), zap.Int("characters", len(chars)))
			fmt.Fprintf(a.out, "advanced %d characters by %d ticks\n", len(chars), count)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "Number of ticks")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <character-id>",
		Short: "Print a character's body and conditions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			char, err := a.repo.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s (%s)\n", char.Label(), char.ID)
			printRegion(a, char, char.Body, 1)

			conditions := char.Health.Conditions()
			if len(conditions) == 0 {
				fmt.Fprintln(a.out, "no conditions")
				return nil
			}
			fmt.Fprintln(a.out, "conditions:")
			for _, c := range conditions {
				var flags []string
				if c.Permanent {
					flags = append(flags, "permanent")
				}
				if c.Def.Chronic {
					flags = append(flags, "chronic")
				}
				if c.PendingRemoval() {
					flags = append(flags, "removing")
				}
				line := fmt.Sprintf("  %s  %s  severity %.2f", c.ID, c.Label(), c.Severity)
				if len(flags) > 0 {
					line += "  [" + strings.Join(flags, ", ") + "]"
				}
				fmt.Fprintln(a.out, line)
			}
			return nil
		},
	}
}

func printRegion(a *app, char *health.Character, region *health.BodyRegion, depth int) {
	line := strings.Repeat("  ", depth) + region.ID
	if char.Health.IsMissing(region) {
		line += " (missing)"
	}
	fmt.Fprintln(a.out, line)
	for _, child := range region.Children {
		printRegion(a, char, child, depth+1)
	}
}

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the bodies, conditions and profiles in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "bodies: %s\n", strings.Join(a.catalog.BodyNames(), ", "))

			kinds := make([]string, 0)
			for _, k := range a.catalog.Kinds() {
				kinds = append(kinds, string(k))
			}
			fmt.Fprintf(a.out, "conditions: %s\n", strings.Join(kinds, ", "))
			fmt.Fprintf(a.out, "profiles: %s\n", strings.Join(a.catalog.ProfileNames(), ", "))
			return nil
		},
	}
}
