package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config file did not exist; defaults were used")
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(env.baseDir, "custom", "config.toml")
	out, _, err = runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("validate sample config: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireContains(t, out, "Extensions: heic, png, jpg, jpeg")
}

func TestConfigValidateReportsProjectConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestConfig(t, env.configPath, "[paths]\ninput_dir = \"photos\"\n")

	out, _, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Input directory: "+env.inputDir)
	requireContains(t, out, "Output directory: "+env.outputDir)
}

func TestConfigValidateLogOverrides(t *testing.T) {
	setupCLITestEnv(t)

	if _, _, err := runCLI(t, "--log-level", "verbose", "config", "validate"); err == nil {
		t.Fatal("expected error for unsupported log level")
	}
	if _, _, err := runCLI(t, "--log-format", "json", "--log-level", "debug", "config", "validate"); err != nil {
		t.Fatalf("config validate with log overrides: %v", err)
	}
}
