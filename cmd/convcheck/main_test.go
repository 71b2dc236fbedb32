package main

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"convcheck/internal/audit"
	"convcheck/internal/testsupport"
)

func TestCheckTextReport(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteImages(t, env.inputDir, "B.png", "A.png", "C.heic", "notes.txt")
	testsupport.WriteImages(t, env.outputDir, "A_1700000000.jpg", "X_1700000001.jpg")

	out, _, err := runCLI(t, "check", env.inputDir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	want := strings.Join([]string{
		"Files that failed to convert:",
		"B.png",
		"C.heic",
		"",
		"Total missing files: 2",
		"Input files: 3",
		"Output files: 2",
		"",
		"Matched files (first 10):",
		"A.png -> A.jpg",
		"",
		"Unmatched output files:",
		"X.jpg",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", out, want)
	}
}

func TestCheckUsesConfiguredPaths(t *testing.T) {
	env := setupCLITestEnv(t)
	converted := filepath.Join(env.baseDir, "converted")
	testsupport.WriteImages(t, env.inputDir, "IMG1.heic", "IMG10.heic")
	testsupport.WriteImages(t, converted, "IMG10_5.jpg")
	writeTestConfig(t, env.configPath, "[paths]\ninput_dir = \"photos\"\noutput_dir = \"converted\"\n\n[match]\nstrategy = \"exact\"\n")

	out, _, err := runCLI(t, "check", "--format", "json")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	var summary audit.Summary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode json report: %v", err)
	}
	if summary.OutputDir != converted {
		t.Fatalf("expected output dir %s, got %s", converted, summary.OutputDir)
	}
	if len(summary.Result.Missing) != 1 || summary.Result.Missing[0] != "IMG1.heic" {
		t.Fatalf("expected IMG1.heic missing under exact strategy, got %v", summary.Result.Missing)
	}
}

func TestCheckSharedAndExclusive(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteImages(t, env.inputDir, "IMG1.heic", "IMG10.heic")
	testsupport.WriteImages(t, env.outputDir, "IMG10_5.jpg")

	out, _, err := runCLI(t, "check", env.inputDir, env.outputDir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "Total missing files: 0")
	requireContains(t, out, "IMG10.jpg <- IMG1.heic, IMG10.heic")

	out, _, err = runCLI(t, "check", "--exclusive", env.inputDir, env.outputDir)
	if err != nil {
		t.Fatalf("check --exclusive: %v", err)
	}
	requireContains(t, out, "Files that failed to convert:\nIMG10.heic\n")
}

func TestCheckFailOnMissing(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteImages(t, env.inputDir, "IMG002.heic")
	testsupport.MkdirAll(t, env.outputDir)

	out, _, err := runCLI(t, "check", "--fail-on-missing", env.inputDir)
	if !errors.Is(err, audit.ErrMissingFiles) {
		t.Fatalf("expected ErrMissingFiles, got %v", err)
	}
	requireContains(t, out, "Total missing files: 1")

	if _, _, err := runCLI(t, "check", env.inputDir); err != nil {
		t.Fatalf("missing files without --fail-on-missing should succeed: %v", err)
	}
}

func TestCheckMissingInputDirectory(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, "check", filepath.Join(env.baseDir, "absent"))
	if err == nil {
		t.Fatal("expected error for missing input directory")
	}
	requireContains(t, err.Error(), "list input directory")
}

func TestCheckRejectsInvalidFlags(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.MkdirAll(t, env.outputDir)

	_, _, err := runCLI(t, "check", "--format", "xml", env.inputDir)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	requireContains(t, err.Error(), "report.format")

	_, _, err = runCLI(t, "check", "--strategy", "fuzzy", env.inputDir)
	if err == nil {
		t.Fatal("expected error for unsupported strategy")
	}
	requireContains(t, err.Error(), "match.strategy")

	_, _, err = runCLI(t, "check", "a", "b", "c")
	if err == nil {
		t.Fatal("expected error for too many arguments")
	}
}

func TestCheckExtensionsAndLimit(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteImages(t, env.inputDir, "a.webp", "b.webp", "c.heic")
	testsupport.WriteImages(t, env.outputDir, "a_1.jpg", "b_2.jpg")

	out, _, err := runCLI(t, "check", "--extensions", "webp,jpg", "--limit", "1", env.inputDir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "Input files: 2\n")
	requireContains(t, out, "Matched files (first 1):\na.webp -> a.jpg\n\n")
}

func TestCheckTableFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteImages(t, env.inputDir, "A.png")
	testsupport.MkdirAll(t, env.outputDir)

	out, _, err := runCLI(t, "check", "--format", "table", "--color", "never", env.inputDir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "A.png")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI escapes, got %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	setupCLITestEnv(t)
	out, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "convcheck dev")
}

func TestInvalidConfigFails(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestConfig(t, env.configPath, "[report]\nformat = \"pdf\"\n")

	_, _, err := runCLI(t, "check", env.inputDir)
	if err == nil {
		t.Fatal("expected config validation error")
	}
	requireContains(t, err.Error(), "report.format")
}
