package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/andyle182810/gappwrite/validator"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix     = "APPWRITE_"
	EnvConfigPath = "APPWRITE_CONFIG"
)

var configValidator = validator.New() //nolint:gochecknoglobals

// Load layers, from lowest to highest precedence, the defaults, the YAML file
// at path (or $APPWRITE_CONFIG when path is empty) and APPWRITE_* variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	// APPWRITE_SELF_SIGNED -> self_signed. Underscores are kept to match the
	// koanf tags.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil { //nolint:exhaustruct
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := configValidator.Validate(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if _, err := c.Lookup(""); err != nil {
		return err
	}

	return nil
}
