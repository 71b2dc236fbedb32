package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"convcheck/internal/audit"
)

func renderText(w io.Writer, summary audit.Summary, opts Options) error {
	p := palette{enabled: opts.Colorize}
	res := summary.Result
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, p.heading("Files that failed to convert:"))
	for _, name := range res.Missing {
		fmt.Fprintln(bw, p.missing(name))
	}
	fmt.Fprintf(bw, "\nTotal missing files: %s\n", p.count(len(res.Missing)))
	fmt.Fprintf(bw, "Input files: %d\n", summary.InputCount)
	fmt.Fprintf(bw, "Output files: %d\n", summary.OutputCount)

	fmt.Fprintf(bw, "\n%s\n", p.heading(matchedHeading(opts.MatchedLimit)+":"))
	for _, m := range matchedPreview(res.Matched, opts.MatchedLimit) {
		fmt.Fprintf(bw, "%s -> %s\n", m.Input, m.Output)
	}

	fmt.Fprintf(bw, "\n%s\n", p.heading("Unmatched output files:"))
	for _, name := range res.UnmatchedOutputs {
		fmt.Fprintln(bw, p.warn(name))
	}

	if len(res.Shared) > 0 {
		fmt.Fprintf(bw, "\n%s\n", p.heading("Outputs claimed by more than one input:"))
		for _, shared := range res.Shared {
			fmt.Fprintf(bw, "%s <- %s\n", p.warn(shared.Output), strings.Join(shared.Inputs, ", "))
		}
	}

	return bw.Flush()
}
