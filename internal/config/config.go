// Package config loads localhub settings from a YAML file and LOCALHUB_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/errors"
	"github.com/lcgerke/localhub/internal/logging"
)

// Config holds the settings shared by all commands
type Config struct {
	// HubPath overrides the default hub directory.
	HubPath string `yaml:"hub_path" env:"HUB_PATH"`

	// RemoteName is the default remote created by add-remote.
	RemoteName string `yaml:"remote_name" env:"REMOTE_NAME"`

	// PushRemote is the default remote extended by add-push-url.
	PushRemote string `yaml:"push_remote" env:"PUSH_REMOTE"`

	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

var userHomeDir = os.UserHomeDir

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		RemoteName: constants.DefaultHubRemote,
		PushRemote: constants.DefaultPushRemote,
		LogLevel:   constants.DefaultLogLevel,
	}
}

// Path returns the config file location: explicit, then LOCALHUB_CONFIG, then
// ~/.localhub/config.yaml. It returns "" when none can be determined.
func Path(explicit string) string {
	path, _ := resolve(explicit)
	return path
}

// resolve is Path, also reporting whether the user named the file.
func resolve(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if p := os.Getenv(constants.EnvPrefix + "CONFIG"); p != "" {
		return p, true
	}
	home, err := userHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, constants.ConfigDir, constants.ConfigFile), false
}

// Load reads defaults, then the config file, then environment overrides, and
// validates the result. A missing file is only an error when --config or
// LOCALHUB_CONFIG names it.
func Load(explicit string) (*Config, error) {
	cfg := Default()

	if path, named := resolve(explicit); path != "" {
		if err := cfg.parseFile(path, named); err != nil {
			return nil, err
		}
	}

	if err := cfg.parseEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parseFile(path string, mustExist bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return nil
		}
		return errors.Wrap(errors.ErrorTypeConfig, errors.CodeConfig,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WithHint(
			errors.Wrap(errors.ErrorTypeConfig, errors.CodeConfig,
				fmt.Sprintf("failed to parse config file %s", path), err),
			"Check the YAML syntax of the config file.",
		)
	}
	return nil
}

func (c *Config) parseEnv() error {
	if err := env.ParseWithOptions(c, env.Options{
		Prefix: constants.EnvPrefix,
	}); err != nil {
		return errors.Wrap(errors.ErrorTypeConfig, errors.CodeConfig,
			"failed to parse environment variables", err)
	}
	return nil
}

// Validate checks the loaded settings
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return errors.InvalidConfiguration("log_level", err.Error())
	}
	if strings.TrimSpace(c.RemoteName) == "" {
		return errors.InvalidConfiguration("remote_name", "must not be empty")
	}
	if strings.TrimSpace(c.PushRemote) == "" {
		return errors.InvalidConfiguration("push_remote", "must not be empty")
	}
	return nil
}
