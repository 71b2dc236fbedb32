package config

import (
	"fmt"
	"os"
	"strings"
)

// Normalize expands paths and canonicalizes enum values. Load calls it; CLI
// code calls it again after applying flag overrides.
func (c *Config) Normalize() error {
	return c.normalize()
}

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMatch()
	c.normalizeReport()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.InputDir) == "" {
		if value, ok := os.LookupEnv(envInputDir); ok && strings.TrimSpace(value) != "" {
			c.Paths.InputDir = strings.TrimSpace(value)
		} else {
			c.Paths.InputDir = defaultInputDir
		}
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		if value, ok := os.LookupEnv(envOutputDir); ok {
			c.Paths.OutputDir = strings.TrimSpace(value)
		}
	}

	var err error
	if c.Paths.InputDir, err = expandPath(strings.TrimSpace(c.Paths.InputDir)); err != nil {
		return fmt.Errorf("paths.input_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMatch() {
	exts := make([]string, 0, len(c.Match.Extensions))
	seen := make(map[string]struct{}, len(c.Match.Extensions))
	for _, ext := range c.Match.Extensions {
		normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}
	c.Match.Extensions = exts

	c.Match.Strategy = strings.ToLower(strings.TrimSpace(c.Match.Strategy))
	if c.Match.Strategy == "" {
		c.Match.Strategy = defaultStrategy
	}
}

func (c *Config) normalizeReport() {
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	switch c.Report.Format {
	case "":
		c.Report.Format = defaultReportFormat
	case "md":
		c.Report.Format = FormatMarkdown
	}
	if c.Report.MatchedLimit < 0 {
		c.Report.MatchedLimit = defaultMatchedLimit
	}
	c.Report.Color = strings.ToLower(strings.TrimSpace(c.Report.Color))
	if c.Report.Color == "" {
		c.Report.Color = defaultColor
	}
	if c.Report.Color == ColorAuto {
		if _, ok := os.LookupEnv(envNoColor); ok {
			c.Report.Color = ColorNever
		}
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
