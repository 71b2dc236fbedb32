package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the directory pair being reconciled.
type Paths struct {
	InputDir  string `toml:"input_dir" yaml:"input_dir"`
	OutputDir string `toml:"output_dir" yaml:"output_dir"`
}

// Match contains the rules used to pair source images with converted outputs.
type Match struct {
	Extensions  []string `toml:"extensions" yaml:"extensions"`
	Strategy    string   `toml:"strategy" yaml:"strategy"`
	Sort        bool     `toml:"sort" yaml:"sort"`
	Exclusive   bool     `toml:"exclusive" yaml:"exclusive"`
	FoldUnicode bool     `toml:"fold_unicode" yaml:"fold_unicode"`
}

// Report contains configuration for the summary written to stdout.
type Report struct {
	Format        string `toml:"format" yaml:"format"`
	MatchedLimit  int    `toml:"matched_limit" yaml:"matched_limit"`
	Color         string `toml:"color" yaml:"color"`
	FailOnMissing bool   `toml:"fail_on_missing" yaml:"fail_on_missing"`
}

// Logging contains configuration for diagnostic log output.
type Logging struct {
	Format string `toml:"format" yaml:"format"`
	Level  string `toml:"level" yaml:"level"`
	File   string `toml:"file" yaml:"file"`
}

// Config encapsulates all configuration values for convcheck.
//
// Configuration sections:
//   - Paths: source and converted-output directories
//   - Match: extension filter, matching strategy, ordering
//   - Report: output format, matched preview size, colour
//   - Logging: log format, level, optional log file
type Config struct {
	Paths   Paths   `toml:"paths" yaml:"paths"`
	Match   Match   `toml:"match" yaml:"match"`
	Report  Report  `toml:"report" yaml:"report"`
	Logging Logging `toml:"logging" yaml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := decode(file, resolvedPath, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func decode(r io.Reader, path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		decoder := toml.NewDecoder(r)
		decoder.DisallowUnknownFields()
		return decoder.Decode(cfg)
	}
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// ResolvedOutputDir returns the configured output directory, or the "jpg"
// subdirectory of the input directory when none is set.
func (c *Config) ResolvedOutputDir() string {
	if strings.TrimSpace(c.Paths.OutputDir) != "" {
		return c.Paths.OutputDir
	}
	return filepath.Join(c.Paths.InputDir, defaultOutputSubdir)
}

// Colorize resolves the report colour mode against whether the destination
// is a terminal.
func (c *Config) Colorize(isTerminal bool) bool {
	switch c.Report.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
