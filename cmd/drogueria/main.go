package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"drogueria/m/internal/config"
	"drogueria/m/internal/database"
	"drogueria/m/internal/logger"
	"drogueria/m/internal/migrations"
	"drogueria/m/internal/seed"
	"drogueria/m/internal/store"
)

const successMessage = "Base de datos creada exitosamente"

func main() {
	_ = godotenv.Load()
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log := logger.New(stderr, logger.Config{Env: cfg.Env, Level: cfg.LogLevel})

	db, err := database.Initialize(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error().Err(err).Str("url", cfg.DatabaseURL).Msg("storage initialization failed")
		return 1
	}
	defer db.Close()

	// Existing tables are never altered, so drift is reported but not fatal.
	if err := migrations.Verify(ctx, db); err != nil {
		log.Warn().Err(err).Msg("schema does not match the declared tables")
	}
	log.Debug().Str("url", cfg.DatabaseURL).Msg("storage ready")

	if cfg.SeedPath != "" {
		if _, err := seed.LoadCatalog(ctx, store.New(db), cfg.SeedPath, log); err != nil {
			log.Error().Err(err).Str("path", cfg.SeedPath).Msg("catalog seed failed")
			return 1
		}
	}

	fmt.Fprintln(stdout, successMessage)
	return 0
}
