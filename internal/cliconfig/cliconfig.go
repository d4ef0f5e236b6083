// Package cliconfig loads the user-level CLI configuration file from
// ~/.nextup/config.yaml. Runtime tunables like ranking weights live in the
// database; this file only covers how the CLI finds and presents things.
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Dir returns the nextup config directory, ~/.nextup by default.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".nextup"), nil
}

// Load seeds defaults and reads the config file if one exists. A missing
// file is not an error; defaults apply.
func Load() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)

	viper.SetDefault("db.path", filepath.Join(dir, "nextup.db"))
	viper.SetDefault("next.limit", 10)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// DBPath resolves the database location. The NEXTUP_DB environment variable
// overrides the config file.
func DBPath() string {
	if path := os.Getenv("NEXTUP_DB"); path != "" {
		return path
	}
	return viper.GetString("db.path")
}

// DefaultLimit is the recommendation list length used when --limit is absent.
func DefaultLimit() int {
	return viper.GetInt("next.limit")
}

// Save writes the current settings back to ~/.nextup/config.yaml, creating
// the directory if needed.
func Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := viper.WriteConfigAs(filepath.Join(dir, "config.yaml")); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
