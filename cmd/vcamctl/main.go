// vcamctl - virtual camera control tool
//
// vcamctl manages the virtual camera device registry: registering and
// removing devices, editing their capture format lists and controls, and
// setting the global driver options (placeholder picture, log level).
package main

import (
	"fmt"
	"os"

	"github.com/vcamkit/vcamctl/internal/bridge"
	"github.com/vcamkit/vcamctl/internal/cli"
	"github.com/vcamkit/vcamctl/internal/infrastructure/config"
	"github.com/vcamkit/vcamctl/internal/infrastructure/logging"
	"github.com/vcamkit/vcamctl/internal/registry"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(args []string) error {
	// The config file is optional; VCAMCTL_CONFIG selects one explicitly.
	cfg, err := config.Load(os.Getenv("VCAMCTL_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.New(cfg.Logging, version)
	log.Debug("starting vcamctl", "version", version, "commit", commit)

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		return fmt.Errorf("opening preferences store: %w", err)
	}
	defer closeStore()
	log.Debug("preferences store ready", "backend", cfg.Store.Backend)

	reg := registry.New(store, nil)
	reg.SetLogger(log.With("component", "registry"))

	c := cli.New(bridge.NewLocal(reg), log)
	return c.Execute(args)
}
