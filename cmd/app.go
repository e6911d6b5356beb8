// Package cmd implements the pl command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/etnz/partsledger"
	"github.com/etnz/partsledger/config"
	"github.com/etnz/partsledger/kv"
	"github.com/etnz/partsledger/kv/mongo"
	"github.com/etnz/partsledger/kv/sqlite"
	"github.com/etnz/partsledger/logger"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "purchases")
	c.Register(&editCmd{}, "purchases")
	c.Register(&deleteCmd{}, "purchases")
	c.Register(&purchasesCmd{}, "purchases")

	c.Register(&sellCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")

	c.Register(&stockCmd{}, "reports")
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&serveCmd{}, "server")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeDriver = flag.String("store-driver", "", "Store driver (memory, file, sqlite, mongo). Overrides PARTSLEDGER_STORE_DRIVER.")
var storeDSN = flag.String("store", "", "Path or URI of the store. Overrides PARTSLEDGER_STORE_DSN.")
var envFile = flag.String("env-file", ".env", "Optional file of environment variables to load.")

// loadConfig reads the configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, err
	}
	if *storeDriver != "" {
		cfg.Store.Driver = *storeDriver
	}
	if *storeDSN != "" {
		cfg.Store.DSN = *storeDSN
	}
	return cfg, cfg.Validate()
}

// openStore opens the store selected by cfg.
func openStore(ctx context.Context, cfg config.Store) (kv.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return kv.NewMemory(), nil
	case config.DriverFile:
		return kv.OpenFile(cfg.DSN)
	case config.DriverSQLite:
		return sqlite.Open(ctx, cfg.DSN)
	case config.DriverMongo:
		return mongo.Open(ctx, cfg.DSN, cfg.MongoDatabase, cfg.MongoCollection)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// app is everything a command needs to work on the ledgers.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  kv.Store
	book   *partsledger.Book
	gate   *partsledger.DeleteGate
}

// openApp loads the configuration and opens the book. Commands other than
// serve log at warn level unless LOG_LEVEL is set, to keep their output clean.
func openApp(ctx context.Context, quiet bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.Logger.Level
	if _, set := os.LookupEnv("LOG_LEVEL"); quiet && !set {
		level = "warn"
	}
	log, err := logger.New(level, cfg.Logger.Format)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("could not open the %s store %q: %w", cfg.Store.Driver, cfg.Store.DSN, err)
	}
	book, err := partsledger.Open(ctx, store, partsledger.WithLogger(log))
	if err != nil {
		store.Close()
		return nil, err
	}
	return &app{
		cfg:    cfg,
		logger: log,
		store:  store,
		book:   book,
		gate:   partsledger.NewDeleteGate(store),
	}, nil
}

func (a *app) currency() string { return a.cfg.Ledger.Currency }
func (a *app) threshold() int64 { return a.cfg.Ledger.LowStockThreshold }

// Close releases the book and the store.
func (a *app) Close() {
	a.book.Close()
	if err := a.store.Close(); err != nil {
		a.logger.Warn("could not close the store", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// withApp opens the app, runs fn and closes the app.
func withApp(ctx context.Context, fn func(a *app) subcommands.ExitStatus) subcommands.ExitStatus {
	a, err := openApp(ctx, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()
	return fn(a)
}
