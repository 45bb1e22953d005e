package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/techbay/store-analytics/internal/config"
	"github.com/techbay/store-analytics/internal/database"
	"github.com/techbay/store-analytics/internal/seed"
)

var (
	flagSales         int
	flagSeed          uint64
	flagExtraProducts int
	flagSkipSchema    bool
)

func main() {
	root := &cobra.Command{
		Use:   "storeseed",
		Short: "Create the store analytics schema and seed it with sample data",
		Long: "storeseed ensures the reporting schema exists and populates it with the " +
			"sample product catalog and synthetic sales spread over the trailing year. " +
			"The run is all-or-nothing: any failure rolls back every insert.",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().IntVar(&flagSales, "sales", seed.DefaultOptions().Sales, "number of synthetic sales to generate")
	root.Flags().Uint64Var(&flagSeed, "seed", 0, "random seed for reproducible data (0 = time-based)")
	root.Flags().IntVar(&flagExtraProducts, "extra-products", 0, "generated products to append to the fixed catalog")
	root.Flags().BoolVar(&flagSkipSchema, "skip-schema", false, "skip running schema migrations")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		fmt.Fprintf(os.Stderr, "seeding failed: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if !flagSkipSchema {
		if err := database.Migrate(db.DB, cfg.MigrationsPath); err != nil {
			return err
		}
		log.Info().Msg("schema is up to date")
	}

	seeder := seed.New(db)
	if err := seeder.Run(context.Background(), seed.Options{
		Sales:         flagSales,
		Seed:          flagSeed,
		ExtraProducts: flagExtraProducts,
	}); err != nil {
		return err
	}

	log.Info().Msg("database initialization successful")
	return nil
}
