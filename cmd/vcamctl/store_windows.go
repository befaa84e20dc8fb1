//go:build windows

package main

import (
	"github.com/vcamkit/vcamctl/internal/infrastructure/logging"
	"github.com/vcamkit/vcamctl/internal/prefstore"
)

func openWinRegistry(log *logging.Logger) (prefstore.Store, func(), error) {
	store := prefstore.NewWinRegistry()
	store.SetLogger(log.With("component", "prefstore"))
	return store, func() {}, nil
}
