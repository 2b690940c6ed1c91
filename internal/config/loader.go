package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cloudfoundry/jibber_jabber"
	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/text/language"
)

// Load reads the configuration from a YAML file and environment variables.
// If path is empty, configuration is loaded from environment and defaults
// only. A missing locale is set to the locale of the host.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if cfg.Grammar.Locale == "" {
		cfg.Grammar.Locale = hostLocale()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// hostLocale detects the locale of the host. Hosts without a usable
// locale (e.g. LANG=C) default to Hebrew.
func hostLocale() string {
	locale, err := jibber_jabber.DetectIETF()
	if err != nil {
		return defaultLocale
	}
	if _, err = language.Parse(locale); err != nil {
		return defaultLocale
	}
	return locale
}

const defaultLocale = "he-IL"

func fileExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, fs.ErrInvalid)
	}
	return nil
}

var errInvalid = errors.New("invalid setting")
