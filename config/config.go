// Package config reads the pl configuration from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

// Drivers lists the supported store drivers.
var Drivers = []string{DriverMemory, DriverFile, DriverSQLite, DriverMongo}

// Config is the full configuration surface.
type Config struct {
	Store  Store  `envPrefix:"PARTSLEDGER_"`
	Ledger Ledger `envPrefix:"PARTSLEDGER_"`
	Server Server `envPrefix:"PARTSLEDGER_"`
	Logger Logger
}

// Store selects where the ledgers are persisted.
type Store struct {
	Driver string `env:"STORE_DRIVER" envDefault:"file"`
	// DSN is a file path for the file and sqlite drivers, a URI for mongo.
	DSN             string `env:"STORE_DSN" envDefault:"partsledger.json"`
	MongoDatabase   string `env:"MONGO_DATABASE" envDefault:"partsledger"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"kv"`
}

// Ledger holds display and alerting settings.
type Ledger struct {
	Currency          string `env:"CURRENCY" envDefault:"INR"`
	LowStockThreshold int64  `env:"LOW_STOCK_THRESHOLD" envDefault:"5"`
}

// Server holds the HTTP API and scheduler settings.
type Server struct {
	Addr             string `env:"HTTP_ADDR" envDefault:":8080"`
	LowStockSchedule string `env:"LOW_STOCK_SCHEDULE" envDefault:"@every 1h"`
}

// Logger holds the zap settings.
type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads the configuration from the environment. Variables already set
// take precedence over the .env files; missing files are ignored.
func Load(files ...string) (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: load .env: %w", op, err)
	}
	return Parse(env.Options{})
}

// Parse reads the configuration with explicit env options, mostly for tests.
func Parse(opts env.Options) (*Config, error) {
	const op = "config.Parse"

	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// Validate ensures the configuration can be used.
func (c *Config) Validate() error {
	if !slices.Contains(Drivers, c.Store.Driver) {
		return fmt.Errorf("unknown store driver %q, want one of %v", c.Store.Driver, Drivers)
	}
	if c.Store.Driver != DriverMemory && c.Store.DSN == "" {
		return errors.New("PARTSLEDGER_STORE_DSN is required")
	}
	if c.Ledger.Currency == "" {
		return errors.New("PARTSLEDGER_CURRENCY is required")
	}
	if c.Ledger.LowStockThreshold < 0 {
		return fmt.Errorf("PARTSLEDGER_LOW_STOCK_THRESHOLD must not be negative, got %d", c.Ledger.LowStockThreshold)
	}
	if _, err := cron.ParseStandard(c.Server.LowStockSchedule); err != nil {
		return fmt.Errorf("invalid PARTSLEDGER_LOW_STOCK_SCHEDULE %q: %w", c.Server.LowStockSchedule, err)
	}
	return nil
}
