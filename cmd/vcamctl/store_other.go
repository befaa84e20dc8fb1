//go:build !windows

package main

import (
	"errors"

	"github.com/vcamkit/vcamctl/internal/infrastructure/logging"
	"github.com/vcamkit/vcamctl/internal/prefstore"
)

func openWinRegistry(_ *logging.Logger) (prefstore.Store, func(), error) {
	return nil, nil, errors.New("the winregistry backend is only available on Windows")
}
