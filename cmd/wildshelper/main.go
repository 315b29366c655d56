// Package main provides the Wilds companion: a terminal character sheet,
// dice roller and oracle for solo play.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/cory-johannsen/wildshelper/internal/companion"
	"github.com/cory-johannsen/wildshelper/internal/config"
	"github.com/cory-johannsen/wildshelper/internal/frontend/console"
	"github.com/cory-johannsen/wildshelper/internal/game/dice"
	"github.com/cory-johannsen/wildshelper/internal/game/oracle"
	"github.com/cory-johannsen/wildshelper/internal/game/resolve"
	"github.com/cory-johannsen/wildshelper/internal/observability"
	"github.com/cory-johannsen/wildshelper/internal/session"
	"github.com/cory-johannsen/wildshelper/internal/storage"
	"github.com/cory-johannsen/wildshelper/internal/storage/file"
	"github.com/cory-johannsen/wildshelper/internal/storage/sqlite"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults and WILDS_* environment when empty)")
	envFile := flag.String("env", ".env", "optional dotenv file loaded before configuration")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("loading %s: %v", *envFile, err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("companion exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	book := oracle.Default()
	if cfg.Oracle.TablesFile != "" {
		b, err := oracle.LoadBook(cfg.Oracle.TablesFile)
		if err != nil {
			return fmt.Errorf("loading oracle tables: %w", err)
		}
		book = b
		logger.Info("oracle tables loaded", zap.String("file", cfg.Oracle.TablesFile))
	}

	slot, err := openSlot(cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := slot.Close(); err != nil {
			logger.Warn("closing save slot", zap.Error(err))
		}
	}()
	logger.Info("save slot ready",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.Path),
		zap.String("slot", cfg.Storage.Slot),
	)

	roller := dice.NewLoggedRoller(diceSource(cfg.Dice, logger), logger)
	store := session.NewStore(slot, cfg.Storage.Slot, logger)
	ctrl := companion.New(store, resolve.NewResolver(roller, book), logger)

	con := console.New(ctrl, os.Stdin, os.Stdout, console.Options{
		Color:  cfg.Console.Color,
		Prompt: cfg.Console.Prompt,
	}, logger)
	if err := con.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func openSlot(cfg config.StorageConfig) (storage.Slot, error) {
	switch cfg.Backend {
	case "sqlite":
		s, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite save slot: %w", err)
		}
		return s, nil
	default:
		s, err := file.New(afero.NewOsFs(), cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("opening file save slot: %w", err)
		}
		return s, nil
	}
}

func diceSource(cfg config.DiceConfig, logger *zap.Logger) dice.Source {
	if cfg.Seed != 0 {
		logger.Info("using seeded dice", zap.Int64("seed", cfg.Seed))
		return dice.NewSeededSource(cfg.Seed)
	}
	return dice.NewCryptoSource()
}
