package server

import (
	"context"

	"github.com/PEEKING-web/steam-tracker/internal/config"
	"github.com/PEEKING-web/steam-tracker/internal/store"
	"github.com/PEEKING-web/steam-tracker/internal/store/sqlite"
)

var openSQLite = func(ctx context.Context, path string) (store.Store, error) {
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func buildStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	if cfg.Driver == config.StoreMemory {
		return store.NewMemoryStore(), nil
	}
	return openSQLite(ctx, cfg.Path)
}
