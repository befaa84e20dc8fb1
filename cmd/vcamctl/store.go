package main

import (
	"strings"

	"github.com/vcamkit/vcamctl/internal/infrastructure/config"
	"github.com/vcamkit/vcamctl/internal/infrastructure/logging"
	"github.com/vcamkit/vcamctl/internal/prefstore"
)

// openStore builds the configured preferences store backend. The returned
// cleanup function is safe to call unconditionally.
func openStore(cfg *config.Config, log *logging.Logger) (prefstore.Store, func(), error) {
	switch strings.ToLower(cfg.Store.Backend) {
	case config.BackendMemory:
		return prefstore.NewMemory(), func() {}, nil

	case config.BackendWinRegistry:
		return openWinRegistry(log)

	default:
		store, err := prefstore.OpenSQLite(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		store.SetLogger(log.With("component", "prefstore"))

		closeStore := func() {
			if err := store.Close(); err != nil {
				log.Error("closing preferences store", "error", err)
			}
		}
		return store, closeStore, nil
	}
}
