package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rosterrender "github.com/bnema/roster-cli/internal/adapters/render/roster"
	sqliterepo "github.com/bnema/roster-cli/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/roster-cli/internal/adapters/repo/toml"
	"github.com/bnema/roster-cli/internal/application"
	"github.com/bnema/roster-cli/internal/domain"
	"github.com/bnema/roster-cli/internal/platform/logging"
	"github.com/bnema/roster-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type globalFlags struct {
	owner   string
	verbose bool
}

type app struct {
	service        *application.Service
	owner          domain.Owner
	logger         *zap.Logger
	rosterRenderer func(application.RosterView) (string, error)
	closers        []func() error
}

func (a *app) wire(flags globalFlags) error {
	logCfg, err := logging.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	logCfg.Verbose = flags.verbose

	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	a.logger = logger
	a.closers = append(a.closers, func() error {
		_ = logger.Sync()
		return nil
	})

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := loadConfig(homeDir)
	if err != nil {
		return err
	}

	owner := strings.TrimSpace(flags.owner)
	if owner == "" {
		owner = strings.TrimSpace(cfg.GetString(ownerKey))
	}
	a.owner = domain.Owner(owner)
	if err := a.owner.Validate(); err != nil {
		return err
	}

	repo, err := a.openRepository(cfg, homeDir)
	if err != nil {
		return err
	}

	a.service = application.NewService(repo, domain.DefaultCatalog(), logger, application.Options{
		Policy: domain.BatchPolicy{
			ClaimRejected:    cfg.GetBool(claimRejectedKey),
			ReportIncomplete: cfg.GetBool(reportIncompleteKey),
		},
		DisplayLimit: cfg.GetInt(displayLimitKey),
	})
	a.rosterRenderer = rosterrender.Render

	logger.Debug("app wired",
		zap.String("owner", owner),
		zap.String("backend", cfg.GetString(storageBackendKey)),
		zap.String("config", cfg.ConfigFileUsed()),
	)
	return nil
}

func (a *app) openRepository(cfg *viper.Viper, homeDir string) (ports.CharacterRepository, error) {
	switch backend := strings.ToLower(cfg.GetString(storageBackendKey)); backend {
	case backendTOML:
		repo, err := tomlrepo.NewRepository(cfg)
		if err != nil {
			return nil, fmt.Errorf("wire character repository: %w", err)
		}
		return repo, nil
	case backendSQLite:
		path := cfg.GetString(storagePathKey)
		if path == "" {
			path = filepath.Join(homeDir, configDirName, "roster.db")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}

		store, err := sqliterepo.Open(path)
		if err != nil {
			return nil, fmt.Errorf("wire character repository: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", backend)
	}
}

func (a *app) close() {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil

	if err := errors.Join(errs...); err != nil && a.logger != nil {
		a.logger.Warn("close resources", zap.Error(err))
	}
}
