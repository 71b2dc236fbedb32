// Package report renders an audit summary for people and for tools.
//
// The text format is the historical console layout and is kept stable line
// for line. The other formats carry the same sections.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"convcheck/internal/audit"
	"convcheck/internal/reconcile"
)

// Output formats.
const (
	FormatText     = "text"
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// DefaultMatchedLimit is the number of matched pairs previewed when Options
// does not say otherwise.
const DefaultMatchedLimit = 10

// Options controls rendering.
type Options struct {
	Format string
	// MatchedLimit caps the matched preview. Zero lists every pair.
	MatchedLimit int
	// Colorize enables ANSI colour in the text and table formats.
	Colorize bool
}

// Render writes summary to w in the requested format.
func Render(w io.Writer, summary audit.Summary, opts Options) error {
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatText:
		return renderText(w, summary, opts)
	case FormatTable:
		return renderTables(w, summary, opts)
	case FormatJSON:
		return renderJSON(w, summary)
	case FormatMarkdown, "md":
		return renderMarkdown(w, summary, opts)
	case FormatHTML:
		return renderHTML(w, summary, opts)
	default:
		return fmt.Errorf("report format: unsupported value %q", opts.Format)
	}
}

func matchedPreview(matched []reconcile.Match, limit int) []reconcile.Match {
	if limit <= 0 || len(matched) <= limit {
		return matched
	}
	return matched[:limit]
}

func matchedHeading(limit int) string {
	if limit <= 0 {
		return "Matched files (all)"
	}
	return fmt.Sprintf("Matched files (first %d)", limit)
}

// palette hands out colour printers that honour Options.Colorize instead of
// the process-wide terminal detection in fatih/color.
type palette struct {
	enabled bool
}

func (p palette) printer(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (p palette) heading(s string) string {
	return p.printer(color.Bold).Sprint(s)
}

func (p palette) missing(s string) string {
	return p.printer(color.FgRed).Sprint(s)
}

func (p palette) ok(s string) string {
	return p.printer(color.FgGreen).Sprint(s)
}

func (p palette) warn(s string) string {
	return p.printer(color.FgYellow).Sprint(s)
}

func (p palette) count(n int) string {
	text := fmt.Sprintf("%d", n)
	if n == 0 {
		return p.ok(text)
	}
	return p.missing(text)
}
