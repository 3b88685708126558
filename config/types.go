package config

// SnapshotConfig contains snapshot file configuration
type SnapshotConfig struct {
	// File is used when the base document has no serialization_settings
	File string `yaml:"file" validate:"required"`
}

// LoggingConfig contains logger configuration
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// RoutingConfig contains serve mode tuning
type RoutingConfig struct {
	RouteCacheSize int `yaml:"route_cache_size" validate:"gte=0"`
}

// GTFSConfig contains the optional GTFS static import
type GTFSConfig struct {
	Path      string `yaml:"path"`
	// CachePath keeps the converted records between builds. Empty disables.
	CachePath string `yaml:"cache_path"`
	MaxRoutes int    `yaml:"max_routes" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
	Routing  RoutingConfig  `yaml:"routing"`
	GTFS     GTFSConfig     `yaml:"gtfs"`
}

// Default returns the configuration used when no file is found
func Default() AppConfig {
	return AppConfig{
		Snapshot: SnapshotConfig{File: "transport.db"},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Routing:  RoutingConfig{RouteCacheSize: 1024},
	}
}
