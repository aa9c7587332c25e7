package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd(opts *options) *cobra.Command {
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "regen",
		Short: "Run configurable regeneration on simulated characters",
		Long: `regen keeps characters with body-part trees and conditions, and heals their
permanent conditions according to regeneration profiles from a YAML catalog.

Characters are stored in Redis when REDIS_URL is set and in memory otherwise.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Catalog YAML file (or set CATALOG_PATH env, default: embedded)")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "Seed for reproducible rolls (or set RNG_SEED env)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (or set LOG_LEVEL env)")

	root.AddCommand(
		newSpawnCmd(a),
		newAfflictCmd(a),
		newHealCmd(a),
		newTickCmd(a),
		newShowCmd(a),
		newCatalogCmd(a),
	)
	return root
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := newRootCmd(&options{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
