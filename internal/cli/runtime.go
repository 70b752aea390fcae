package cli

import (
	"fmt"

	"github.com/amirhossein-jamali/pocket-ledger/internal/app"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/config"
)

// runtime bundles what every command needs. close must be called once the
// command is done.
type runtime struct {
	cfg    *config.Config
	logger coreport.Logger
	clock  coreport.TimeProvider
	app    *app.App
}

func loadConfig(globals *globalOptions) (*config.Config, error) {
	if globals.Env != "" {
		return config.LoadConfigFor(globals.Env)
	}
	return config.LoadConfig()
}

func newLogger(cfg *config.Config) (coreport.Logger, error) {
	return logger.NewZapLoggerWithOptions(logger.Options{
		Production: cfg.Environment == config.Production || cfg.Logger.Format == "json",
		Level:      coreport.ParseLogLevel(cfg.Logger.Level),
		File:       cfg.Logger.File,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		CallerInfo: cfg.Logger.CallerInfo,
	})
}

func openRuntime(globals *globalOptions) (*runtime, error) {
	cfg, err := loadConfig(globals)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	clock := timeProvider.NewRealTimeProvider()
	ids, err := idgen.New(cfg.Ledger.IDScheme, clock)
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:    cfg,
		logger: log,
		clock:  clock,
		app:    app.New(cfg, log, clock, ids),
	}, nil
}

func (r *runtime) close() {
	if err := r.app.Close(); err != nil {
		r.logger.Error("Failed to close database", map[string]any{"error": err.Error()})
	}
	_ = r.logger.Flush()
}
