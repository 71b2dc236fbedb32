package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatch(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.InputDir) == "" {
		return errors.New("paths.input_dir must be set")
	}
	return nil
}

func (c *Config) validateMatch() error {
	if len(c.Match.Extensions) == 0 {
		return errors.New("match.extensions must include at least one extension")
	}
	for _, ext := range c.Match.Extensions {
		if strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("match.extensions: %q is not a file extension", ext)
		}
	}
	return ensureOneOf("match.strategy", c.Match.Strategy, StrategyPrefix, StrategyExact)
}

func (c *Config) validateReport() error {
	if err := ensureOneOf("report.format", c.Report.Format, FormatText, FormatTable, FormatJSON, FormatMarkdown, FormatHTML); err != nil {
		return err
	}
	if c.Report.MatchedLimit < 0 {
		return errors.New("report.matched_limit must be >= 0")
	}
	return ensureOneOf("report.color", c.Report.Color, ColorAuto, ColorAlways, ColorNever)
}

func (c *Config) validateLogging() error {
	if err := ensureOneOf("logging.format", c.Logging.Format, "console", "json"); err != nil {
		return err
	}
	return ensureOneOf("logging.level", c.Logging.Level, "debug", "info", "warn", "error")
}

func ensureOneOf(key, value string, allowed ...string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s (got %q)", key, strings.Join(allowed, ", "), value)
}
