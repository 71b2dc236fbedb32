package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"convcheck/internal/audit"
)

func renderMarkdown(w io.Writer, summary audit.Summary, opts Options) error {
	_, err := io.WriteString(w, buildMarkdown(summary, opts))
	return err
}

func buildMarkdown(summary audit.Summary, opts Options) string {
	res := summary.Result
	var b strings.Builder

	b.WriteString("# Conversion check\n\n")
	fmt.Fprintf(&b, "- Input directory: %s\n", codeSpan(summary.InputDir))
	fmt.Fprintf(&b, "- Output directory: %s\n", codeSpan(summary.OutputDir))
	if summary.RunID != "" {
		fmt.Fprintf(&b, "- Run: %s\n", codeSpan(summary.RunID))
	}
	b.WriteString("\n| Summary | Count |\n| --- | ---: |\n")
	fmt.Fprintf(&b, "| Input files | %d |\n", summary.InputCount)
	fmt.Fprintf(&b, "| Output files | %d |\n", summary.OutputCount)
	fmt.Fprintf(&b, "| Matched | %d |\n", len(res.Matched))
	fmt.Fprintf(&b, "| Missing | %d |\n", len(res.Missing))
	fmt.Fprintf(&b, "| Unmatched outputs | %d |\n", len(res.UnmatchedOutputs))
	if len(res.Shared) > 0 {
		fmt.Fprintf(&b, "| Shared outputs | %d |\n", len(res.Shared))
	}

	b.WriteString("\n## Files that failed to convert\n\n")
	writeList(&b, res.Missing)

	fmt.Fprintf(&b, "\n## %s\n\n", matchedHeading(opts.MatchedLimit))
	preview := matchedPreview(res.Matched, opts.MatchedLimit)
	if len(preview) == 0 {
		b.WriteString("_None._\n")
	}
	for _, m := range preview {
		fmt.Fprintf(&b, "- %s -> %s\n", codeSpan(m.Input), codeSpan(m.Output))
	}

	b.WriteString("\n## Unmatched output files\n\n")
	writeList(&b, res.UnmatchedOutputs)

	if len(res.Shared) > 0 {
		b.WriteString("\n## Outputs claimed by more than one input\n\n")
		for _, shared := range res.Shared {
			inputs := make([]string, len(shared.Inputs))
			for i, input := range shared.Inputs {
				inputs[i] = codeSpan(input)
			}
			fmt.Fprintf(&b, "- %s <- %s\n", codeSpan(shared.Output), strings.Join(inputs, ", "))
		}
	}
	return b.String()
}

func writeList(b *strings.Builder, values []string) {
	if len(values) == 0 {
		b.WriteString("_None._\n")
		return
	}
	for _, value := range values {
		fmt.Fprintf(b, "- %s\n", codeSpan(value))
	}
}

// codeSpan wraps s in a backtick fence long enough that backticks inside the
// filename cannot close it early.
func codeSpan(s string) string {
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

func renderHTML(w io.Writer, summary audit.Summary, opts Options) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(buildMarkdown(summary, opts)), &body); err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	title := "Conversion check"
	if summary.InputDir != "" {
		title += ": " + summary.InputDir
	}
	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(title), body.String())
	return err
}
