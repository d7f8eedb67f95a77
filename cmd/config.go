package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/roster-cli/internal/application"
	"github.com/spf13/viper"
)

const (
	configDirName = ".roster"

	ownerKey            = "owner"
	storageBackendKey   = "storage.backend"
	storagePathKey      = "storage.path"
	claimRejectedKey    = "ingest.claim_rejected"
	reportIncompleteKey = "ingest.report_incomplete"
	displayLimitKey     = "display.limit"

	backendTOML   = "toml"
	backendSQLite = "sqlite"
)

// loadConfig reads ~/.roster/config.toml when present. ROSTER_* environment
// variables override file values.
func loadConfig(homeDir string) (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))

	cfg.SetEnvPrefix("ROSTER")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(ownerKey, defaultOwner())
	cfg.SetDefault(storageBackendKey, backendTOML)
	cfg.SetDefault(claimRejectedKey, true)
	cfg.SetDefault(reportIncompleteKey, true)
	cfg.SetDefault(displayLimitKey, application.DefaultDisplayLimit)

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return cfg, nil
}

func defaultOwner() string {
	if user := strings.TrimSpace(os.Getenv("USER")); user != "" {
		return user
	}
	return "default"
}
