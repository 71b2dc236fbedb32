package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"convcheck/internal/audit"
	"convcheck/internal/config"
	"convcheck/internal/listing"
	"convcheck/internal/logging"
	"convcheck/internal/reconcile"
	"convcheck/internal/report"
)

type checkFlags struct {
	format        string
	limit         int
	strategy      string
	exclusive     bool
	keepOrder     bool
	extensions    []string
	foldUnicode   bool
	failOnMissing bool
	color         string
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check [input-dir] [output-dir]",
		Short: "Report source images without a converted counterpart",
		Long: "Compare the images in input-dir with the converted files in output-dir " +
			"(default <input-dir>/jpg) and list the sources that failed to convert.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg := *base
			if err := applyCheckOverrides(cmd, &cfg, flags, args); err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			if ctx.configExists {
				logging.NewComponentLogger(logger, "cli").Debug("loaded configuration", logging.String("path", ctx.configPath))
			}

			strategy, err := reconcile.ParseStrategy(cfg.Match.Strategy)
			if err != nil {
				return err
			}
			summary, err := audit.Run(cmd.Context(), audit.Options{
				InputDir:    cfg.Paths.InputDir,
				OutputDir:   cfg.ResolvedOutputDir(),
				Strategy:    strategy,
				Exclusive:   cfg.Match.Exclusive,
				Sort:        cfg.Match.Sort,
				FoldUnicode: cfg.Match.FoldUnicode,
			}, listing.NewOSLister(cfg.Match.Extensions), logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := report.Render(out, summary, report.Options{
				Format:       cfg.Report.Format,
				MatchedLimit: cfg.Report.MatchedLimit,
				Colorize:     cfg.Colorize(shouldColorize(out)),
			}); err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			if cfg.Report.FailOnMissing {
				return summary.Check()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Report format (text, table, json, markdown, html)")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Number of matched pairs to preview (0 lists all)")
	cmd.Flags().StringVar(&flags.strategy, "strategy", "", "Matching strategy (prefix, exact)")
	cmd.Flags().BoolVar(&flags.exclusive, "exclusive", false, "Let each converted file satisfy only one source file")
	cmd.Flags().BoolVar(&flags.keepOrder, "keep-order", false, "Match in directory listing order instead of sorting")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil, "Comma-separated image extensions to consider")
	cmd.Flags().BoolVar(&flags.foldUnicode, "fold-unicode", false, "Compose filenames to Unicode NFC before matching")
	cmd.Flags().BoolVar(&flags.failOnMissing, "fail-on-missing", false, "Exit non-zero when any source file is missing")
	cmd.Flags().StringVar(&flags.color, "color", "", "Colour output (auto, always, never)")

	return cmd
}

// applyCheckOverrides layers positional arguments and explicitly set flags
// over the loaded configuration, then re-validates it.
func applyCheckOverrides(cmd *cobra.Command, cfg *config.Config, flags checkFlags, args []string) error {
	if len(args) > 0 {
		cfg.Paths.InputDir = args[0]
	}
	if len(args) > 1 {
		cfg.Paths.OutputDir = args[1]
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Report.Format = flags.format
	}
	if changed("limit") {
		cfg.Report.MatchedLimit = flags.limit
	}
	if changed("strategy") {
		cfg.Match.Strategy = flags.strategy
	}
	if changed("exclusive") {
		cfg.Match.Exclusive = flags.exclusive
	}
	if changed("keep-order") {
		cfg.Match.Sort = !flags.keepOrder
	}
	if changed("extensions") {
		cfg.Match.Extensions = flags.extensions
	}
	if changed("fold-unicode") {
		cfg.Match.FoldUnicode = flags.foldUnicode
	}
	if changed("fail-on-missing") {
		cfg.Report.FailOnMissing = flags.failOnMissing
	}
	if changed("color") {
		cfg.Report.Color = flags.color
	}

	if err := cfg.Normalize(); err != nil {
		return err
	}
	return cfg.Validate()
}
