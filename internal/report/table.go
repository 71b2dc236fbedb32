package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"convcheck/internal/audit"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTables(w io.Writer, summary audit.Summary, opts Options) error {
	p := palette{enabled: opts.Colorize}
	res := summary.Result
	var sections []string

	counts := [][]string{
		{"Input files", strconv.Itoa(summary.InputCount)},
		{"Output files", strconv.Itoa(summary.OutputCount)},
		{"Matched", strconv.Itoa(len(res.Matched))},
		{"Missing", p.count(len(res.Missing))},
		{"Unmatched outputs", strconv.Itoa(len(res.UnmatchedOutputs))},
	}
	if len(res.Shared) > 0 {
		counts = append(counts, []string{"Shared outputs", p.warn(strconv.Itoa(len(res.Shared)))})
	}
	sections = append(sections, renderTable([]string{"Summary", "Count"}, counts, []columnAlignment{alignLeft, alignRight}))

	sections = append(sections, p.heading("Files that failed to convert"))
	if len(res.Missing) == 0 {
		sections = append(sections, "None.")
	} else {
		sections = append(sections, renderTable([]string{"#", "File"}, numbered(res.Missing), []columnAlignment{alignRight, alignLeft}))
	}

	preview := matchedPreview(res.Matched, opts.MatchedLimit)
	sections = append(sections, p.heading(matchedHeading(opts.MatchedLimit)))
	if len(preview) == 0 {
		sections = append(sections, "None.")
	} else {
		rows := make([][]string, 0, len(preview))
		for _, m := range preview {
			rows = append(rows, []string{m.Input, m.Output})
		}
		sections = append(sections, renderTable([]string{"Input", "Output"}, rows, nil))
	}

	sections = append(sections, p.heading("Unmatched output files"))
	if len(res.UnmatchedOutputs) == 0 {
		sections = append(sections, "None.")
	} else {
		sections = append(sections, renderTable([]string{"#", "File"}, numbered(res.UnmatchedOutputs), []columnAlignment{alignRight, alignLeft}))
	}

	if len(res.Shared) > 0 {
		rows := make([][]string, 0, len(res.Shared))
		for _, shared := range res.Shared {
			rows = append(rows, []string{shared.Output, strings.Join(shared.Inputs, ", ")})
		}
		sections = append(sections, p.heading("Outputs claimed by more than one input"))
		sections = append(sections, renderTable([]string{"Output", "Inputs"}, rows, nil))
	}

	_, err := fmt.Fprintln(w, strings.Join(sections, "\n"))
	return err
}

func numbered(values []string) [][]string {
	rows := make([][]string, 0, len(values))
	for i, value := range values {
		rows = append(rows, []string{strconv.Itoa(i + 1), value})
	}
	return rows
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
