// Package audit runs one reconciliation between a source image directory and
// the directory its conversions were written to.
package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"convcheck/internal/listing"
	"convcheck/internal/logging"
	"convcheck/internal/reconcile"
	"convcheck/internal/stem"
)

// ErrMissingFiles is returned by Summary.Check when at least one source image
// has no converted output.
var ErrMissingFiles = errors.New("source files without converted output")

// Options configures a single run. Both directories are required.
type Options struct {
	InputDir    string
	OutputDir   string
	Strategy    reconcile.Strategy
	Exclusive   bool
	Sort        bool
	FoldUnicode bool
}

// Summary is the outcome of a run.
type Summary struct {
	RunID       string           `json:"run_id"`
	InputDir    string           `json:"input_dir"`
	OutputDir   string           `json:"output_dir"`
	InputCount  int              `json:"input_count"`
	OutputCount int              `json:"output_count"`
	Result      reconcile.Result `json:"result"`
	StartedAt   time.Time        `json:"started_at"`
	FinishedAt  time.Time        `json:"finished_at"`
}

// Check returns ErrMissingFiles, wrapped with the count, when the run left
// source images unmatched.
func (s Summary) Check() error {
	if n := len(s.Result.Missing); n > 0 {
		return fmt.Errorf("%d %w", n, ErrMissingFiles)
	}
	return nil
}

// Run lists both directories through lister, normalizes the output names and
// reconciles them against the inputs.
func Run(ctx context.Context, opts Options, lister listing.Lister, logger *slog.Logger) (Summary, error) {
	if lister == nil {
		return Summary{}, errors.New("audit: lister is required")
	}
	if strings.TrimSpace(opts.InputDir) == "" {
		return Summary{}, errors.New("audit: input directory is required")
	}
	if strings.TrimSpace(opts.OutputDir) == "" {
		return Summary{}, errors.New("audit: output directory is required")
	}

	summary := Summary{
		RunID:     uuid.NewString(),
		InputDir:  opts.InputDir,
		OutputDir: opts.OutputDir,
		StartedAt: time.Now().UTC(),
	}
	ctx = logging.WithRunID(ctx, summary.RunID)
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "audit"))

	inputs, err := lister.List(ctx, opts.InputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("list input directory: %w", err)
	}
	logger.Debug("listed input directory",
		logging.String(logging.FieldDir, opts.InputDir),
		logging.Int(logging.FieldCount, len(inputs)),
	)

	outputs, err := lister.List(ctx, opts.OutputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("list output directory: %w", err)
	}
	logger.Debug("listed output directory",
		logging.String(logging.FieldDir, opts.OutputDir),
		logging.Int(logging.FieldCount, len(outputs)),
	)

	if opts.Sort {
		inputs = slices.Clone(inputs)
		slices.Sort(inputs)
		outputs = slices.Clone(outputs)
		slices.Sort(outputs)
	}

	outputs = stem.NormalizeAll(outputs)
	if opts.FoldUnicode {
		inputs = stem.FoldAll(inputs)
		outputs = stem.FoldAll(outputs)
	}

	summary.InputCount = len(inputs)
	summary.OutputCount = len(outputs)
	summary.Result = reconcile.Reconcile(inputs, outputs, reconcile.Options{
		Strategy:  opts.Strategy,
		Exclusive: opts.Exclusive,
	})
	summary.FinishedAt = time.Now().UTC()

	counts := summary.Result.Counts()
	logger.Info("reconciliation complete",
		logging.Int("matched", counts.Matched),
		logging.Int("missing", counts.Missing),
		logging.Int("unmatched_outputs", counts.Unmatched),
		logging.Int("shared", counts.Shared),
	)
	if counts.Shared > 0 {
		logger.Warn("outputs claimed by more than one input",
			logging.Int(logging.FieldCount, counts.Shared),
		)
	}
	return summary, nil
}
