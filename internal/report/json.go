package report

import (
	"encoding/json"
	"io"

	"convcheck/internal/audit"
	"convcheck/internal/reconcile"
)

type jsonSummary struct {
	audit.Summary
	Counts reconcile.Counts `json:"counts"`
}

func renderJSON(w io.Writer, summary audit.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonSummary{Summary: summary, Counts: summary.Result.Counts()})
}
