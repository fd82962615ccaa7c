package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/paisawatch/paisawatch/internal/config"
	"github.com/paisawatch/paisawatch/internal/storage"
)

// initStore opens the SQLite database and runs migrations.
func initStore(ctx context.Context) (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
