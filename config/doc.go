// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every field has a default, so a missing config file is not an error unless
// its path was given explicitly. TRANSPORT_CATALOGUE_* environment variables,
// optionally loaded from a .env file, override the file.
//
// Example:
//
//	cfg, err := config.LoadAppConfig("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
package config
