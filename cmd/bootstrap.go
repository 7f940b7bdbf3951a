package cmd

import (
	"context"
	"fmt"

	"yastm-generator/core/config"
	"yastm-generator/core/database"
	"yastm-generator/core/logger"
	"yastm-generator/core/recordstore"
	"yastm-generator/core/storage"
	"yastm-generator/feature/soulgem"
	"yastm-generator/feature/soulgem/filesync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// bootstrap loads the configuration and builds the logger every command starts with.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// openRecords connects to the record database and prepares its schema.
func openRecords(ctx context.Context, cfg database.Config) (*recordstore.Store, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := recordstore.New(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	if err := store.Check(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// openTarget builds the configured output target. Only the bucket target
// connects to object storage.
func openTarget(cfg *config.Config, fs afero.Fs) (filesync.Target, error) {
	var client storage.Client
	if cfg.Generator.Target == soulgem.TargetBucket {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		client = c
	}
	return soulgem.NewTarget(cfg.Generator, fs, client, cfg.Storage.Bucket)
}
