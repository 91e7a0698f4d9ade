// Package config resolves the runtime paths and settings the commands
// operate on: the global registry file, the per-project override filename,
// and the working directory standing in for "the current project".
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/signal-slot/cc-mcp-admin/pkg/errors"
	"github.com/signal-slot/cc-mcp-admin/pkg/sources"
)

// Viper keys.
const (
	KeyRegistry  = "registry"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyNoColor   = "no-color"
)

// RegistryFilename is the global registry file inside the home directory.
const RegistryFilename = ".claude.json"

// Config holds the resolved settings for one invocation.
type Config struct {
	// RegistryPath is the global registry file (default ~/.claude.json).
	RegistryPath string

	// OverrideFilename is the per-project override file name.
	OverrideFilename string

	// WorkDir is the current project directory.
	WorkDir string
}

// SetDefaults registers defaults on the global viper instance. Called once
// from command setup before flags and env vars are bound.
func SetDefaults() {
	viper.SetDefault(KeyRegistry, "")
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyLogFormat, "auto")
	viper.SetDefault(KeyNoColor, false)
}

// Load resolves the configuration from viper (flags, env, config file)
// and the process environment.
func Load() (*Config, error) {
	registryPath := viper.GetString(KeyRegistry)
	if registryPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.WrapIO("stat", "$HOME", err)
		}
		registryPath = filepath.Join(home, RegistryFilename)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.WrapIO("stat", ".", err)
	}

	return &Config{
		RegistryPath:     registryPath,
		OverrideFilename: sources.OverrideFilename,
		WorkDir:          wd,
	}, nil
}

// OverridePath returns the override file location for a project directory.
func (c *Config) OverridePath(projectDir string) string {
	return filepath.Join(projectDir, c.OverrideFilename)
}
