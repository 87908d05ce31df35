package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/spf13/cobra"
)

// resolveConfig layers defaults, the config file, environment, then flags
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store = storeKind
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("database-url") {
		cfg.DatabaseURL = databaseURL
	}
	if flags.Changed("key") {
		cfg.Key = storeKey
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openStore returns the configured store and a function that releases it
func openStore(ctx context.Context, cfg config.Config) (storage.Store, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		return storage.NewMemoryStore(), func() {}, nil
	case config.StorePostgres:
		pg, err := storage.ConnectPostgres(ctx, cfg.DatabaseURL, cfg.Key)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	default:
		return storage.NewFileStore(cfg.DataDir, cfg.Key, cfg.Verbose), func() {}, nil
	}
}

// openSession resolves config, opens the store, and loads the résumé from it
func openSession(cmd *cobra.Command, rec session.Recorder) (*session.Session, config.Config, func(), error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return nil, config.Config{}, nil, fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}

	sess, err := session.Load(cmd.Context(), store, session.Options{Recorder: rec, Verbose: cfg.Verbose})
	if err != nil {
		closeStore()
		return nil, config.Config{}, nil, err
	}
	return sess, cfg, closeStore, nil
}
