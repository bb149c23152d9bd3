package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"

	"github.com/protomem/time-clock/assets"
	"github.com/protomem/time-clock/internal/board"
	"github.com/protomem/time-clock/internal/clock"
	"github.com/protomem/time-clock/internal/database"
	"github.com/protomem/time-clock/internal/env"
	"github.com/protomem/time-clock/internal/kv"
	"github.com/protomem/time-clock/internal/roster"
	"github.com/protomem/time-clock/internal/store"
	"github.com/protomem/time-clock/internal/version"
)

var (
	_cfgFile     = flag.String("cfg", "", "path to config file")
	_showVersion = flag.Bool("version", false, "display version and exit")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := run(logger)
	if err != nil {
		trace := string(debug.Stack())
		logger.Error(err.Error(), "trace", trace)
		os.Exit(1)
	}
}

type config struct {
	httpHost     string
	httpPort     int
	httpTimeouts httpTimeouts
	cors     struct {
		allowAll bool
	}
	storage struct {
		scope kv.Scope
		key   string
	}
	db struct {
		dsn         string
		automigrate bool
	}
	roster struct {
		file string
	}
}

type application struct {
	config config
	board  *board.Board
	clock  clock.Clock
	logger *slog.Logger
	wg     sync.WaitGroup

	// stopping is closed on shutdown to end long-lived streams.
	stopping chan struct{}
}

func loadConfig() (config, error) {
	var cfg config

	if *_cfgFile != "" {
		err := env.Load(*_cfgFile)
		if err != nil {
			return cfg, err
		}
	}

	scope, err := kv.ParseScope(env.GetString("PERSISTENCE_SCOPE", string(kv.ScopeSession)))
	if err != nil {
		return cfg, err
	}

	cfg.httpHost = env.GetString("HTTP_HOST", "localhost")
	cfg.httpPort = env.GetInt("HTTP_PORT", 8080)
	cfg.httpTimeouts = httpTimeouts{
		idle:     env.GetDuration("HTTP_IDLE_TIMEOUT", _defaultIdleTimeout),
		read:     env.GetDuration("HTTP_READ_TIMEOUT", _defaultReadTimeout),
		write:    env.GetDuration("HTTP_WRITE_TIMEOUT", _defaultWriteTimeout),
		shutdown: env.GetDuration("HTTP_SHUTDOWN_PERIOD", _defaultShutdownPeriod),
	}
	cfg.cors.allowAll = env.GetBool("CORS_ALLOW_ALL", true)
	cfg.storage.scope = scope
	cfg.storage.key = env.GetString("STORAGE_KEY", store.DefaultKey)
	cfg.db.dsn = env.GetString("DB_DSN", "postgres:postgres@localhost:5432/postgres")
	cfg.db.automigrate = env.GetBool("DB_AUTOMIGRATE", true)
	cfg.roster.file = env.GetString("ROSTER_FILE", "")

	return cfg, nil
}

func run(logger *slog.Logger) error {
	if *_showVersion {
		fmt.Printf("version: %s\n", version.Get())
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := roster.LoadFile(cfg.roster.file, assets.EmbeddedFiles, assets.DefaultRosterFile)
	if err != nil {
		return err
	}

	var medium kv.Medium
	switch cfg.storage.scope {
	case kv.ScopeDurable:
		db, err := database.New(logger, cfg.db.dsn, cfg.db.automigrate)
		if err != nil {
			return err
		}
		defer db.Close()

		medium = database.NewKVDAO(logger, db)
	default:
		medium = kv.NewMemory()
	}

	logger.Info("storage configured", "scope", cfg.storage.scope, "key", cfg.storage.key, "countEmployees", len(dir.All()))

	app := &application{
		config:   cfg,
		clock:    clock.System,
		logger:   logger,
		stopping: make(chan struct{}),
	}
	app.board = board.New(logger, store.New(logger, medium, cfg.storage.key), dir, app.clock)
	app.board.Reload(context.Background())

	return app.serveHTTP()
}
