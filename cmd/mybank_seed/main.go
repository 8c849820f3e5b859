// Command mybank_seed loads accounts from a JSON file into the store.
// Accounts are never created through the HTTP API; this is how they get there.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/my_bank_api/internal/core/services"
	"github.com/SscSPs/my_bank_api/internal/dto"
	"github.com/SscSPs/my_bank_api/internal/platform/config"
	"github.com/SscSPs/my_bank_api/internal/repositories/database/pgsql"
	"github.com/SscSPs/my_bank_api/pkg/database"
	"github.com/gin-gonic/gin/binding"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	file := flag.String("file", "accounts.json", "path to a JSON array of {agencia, conta, name, balance}")
	migrate := flag.Bool("migrate", true, "apply pending migrations before importing")
	flag.Parse()

	if err := run(context.Background(), logger, *file, *migrate); err != nil {
		logger.Error("Seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, file string, migrate bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entries, err := readSeedFile(file)
	if err != nil {
		return err
	}

	if migrate {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return err
		}
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		Ping:     true,
	})
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	repos := pgsql.NewRepositoryProvider(pool)
	accountService := services.NewAccountService(repos.AccountRepo, repos.TxManager)

	imported, err := accountService.ImportAccounts(ctx, dto.ToDomainAccounts(entries))
	if err != nil {
		return err
	}

	logger.Info("Seed completed", slog.String("file", file), slog.Int64("imported", imported))
	return nil
}

// readSeedFile decodes and validates the seed entries with the same
// validator the HTTP layer uses for request bodies.
func readSeedFile(path string) ([]dto.SeedAccount, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var entries []dto.SeedAccount
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	for i := range entries {
		if err := binding.Validator.ValidateStruct(&entries[i]); err != nil {
			return nil, fmt.Errorf("entry %d of %s: %w", i, path, err)
		}
	}
	return entries, nil
}
