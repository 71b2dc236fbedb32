package config

const (
	defaultConfigPath   = "~/.config/convcheck/config.toml"
	projectConfigName   = "convcheck.toml"
	defaultInputDir     = "."
	defaultOutputSubdir = "jpg"
	defaultStrategy     = StrategyPrefix
	defaultReportFormat = FormatText
	defaultMatchedLimit = 10
	defaultColor        = ColorAuto
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"

	envInputDir  = "CONVCHECK_INPUT_DIR"
	envOutputDir = "CONVCHECK_OUTPUT_DIR"
	envNoColor   = "NO_COLOR"
)

// Matching strategies.
const (
	StrategyPrefix = "prefix"
	StrategyExact  = "exact"
)

// Report formats.
const (
	FormatText     = "text"
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultExtensions lists the image extensions reconciled when none are configured.
func DefaultExtensions() []string {
	return []string{"heic", "png", "jpg", "jpeg"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Match: Match{
			Extensions: DefaultExtensions(),
			Strategy:   defaultStrategy,
			Sort:       true,
		},
		Report: Report{
			Format:       defaultReportFormat,
			MatchedLimit: defaultMatchedLimit,
			Color:        defaultColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
