package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d: %w", c.Server.Port, errInvalid))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server timeouts must be positive: %w", errInvalid))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes %d: %w", c.Server.MaxBodyBytes, errInvalid))
	}
	switch c.Log.Level {
	case "debug", "info", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q: %w", c.Log.Level, errInvalid))
	}
	if c.Grammar.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("grammar.concurrency %d: %w", c.Grammar.Concurrency, errInvalid))
	}
	if c.Grammar.Whitelist != "" {
		if err := fileExists(c.Grammar.Whitelist); err != nil {
			errs = append(errs, fmt.Errorf("grammar.whitelist: %w", err))
		}
	}
	if _, err := c.Language(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Language returns the configured locale as a language tag.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Grammar.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("grammar.locale %q: %w", c.Grammar.Locale, err)
	}
	return tag, nil
}

// Hebrew is true if the configured locale is a Hebrew one. Normalization
// works on Hebrew input regardless; a different locale usually hints at a
// misconfigured environment.
func (c *Config) Hebrew() bool {
	tag, err := c.Language()
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	hebrew, _ := language.Hebrew.Base()
	return base == hebrew
}
