package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jdmejias/perfumes-app/internal/seed"
	"github.com/jdmejias/perfumes-app/pkg/clock"
	"github.com/jdmejias/perfumes-app/pkg/config"
	"github.com/jdmejias/perfumes-app/pkg/db"
	"github.com/jdmejias/perfumes-app/pkg/logger"
	"github.com/jdmejias/perfumes-app/pkg/migrate"
)

// seed wipes the catalog, users and wishlists and loads the demo storefront.
func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	runMigrations := flag.Bool("migrate", false, "apply pending migrations before seeding")
	force := flag.Bool("force", false, "allow seeding outside dev (destroys existing data)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	if !cfg.App.IsDev() && !*force {
		fmt.Fprintf(os.Stderr, "refusing to seed %q without -force\n", cfg.App.Env)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if *runMigrations {
		sqlDB, err := dbClient.SQL()
		if err != nil {
			logg.Error(ctx, "failed to extract sql.DB", err)
			os.Exit(1)
		}
		if err := migrate.Run(ctx, sqlDB, migrate.DefaultDir, "up"); err != nil {
			logg.Error(ctx, "failed to apply migrations", err)
			os.Exit(1)
		}
	}

	summary, err := seed.Run(ctx, dbClient, logg, clock.New().Now())
	if err != nil {
		logg.Error(ctx, "seed failed", err)
		os.Exit(1)
	}
	fmt.Printf("seeded %d brands, %d categories, %d products, %d variants, %d discounts\n",
		summary.Brands, summary.Categories, summary.Products, summary.Variants, summary.Discounts)
}
