// Package config handles loading and validating vcamctl configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// The configuration file is optional: without one, vcamctl runs with the
// SQLite store under the user's config directory and warn-level text
// logging on stderr.
//
// Usage:
//
//	cfg, err := config.Load(os.Getenv("VCAMCTL_CONFIG"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Store.Backend)
package config
