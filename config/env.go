package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file
const (
	EnvSnapshotFile   = "TRANSPORT_CATALOGUE_SNAPSHOT_FILE"
	EnvLogLevel       = "TRANSPORT_CATALOGUE_LOG_LEVEL"
	EnvLogFormat      = "TRANSPORT_CATALOGUE_LOG_FORMAT"
	EnvRouteCacheSize = "TRANSPORT_CATALOGUE_ROUTE_CACHE_SIZE"
	EnvGTFSPath       = "TRANSPORT_CATALOGUE_GTFS_PATH"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with the non-empty TRANSPORT_CATALOGUE_* variables
func ApplyEnv(cfg *AppConfig) error {
	setString(&cfg.Snapshot.File, EnvSnapshotFile)
	setString(&cfg.Logging.Level, EnvLogLevel)
	setString(&cfg.Logging.Format, EnvLogFormat)
	setString(&cfg.GTFS.Path, EnvGTFSPath)
	if v := os.Getenv(EnvRouteCacheSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRouteCacheSize, err)
		}
		cfg.Routing.RouteCacheSize = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
