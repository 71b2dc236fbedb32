// Package reconcile pairs source image filenames with converted output
// filenames and reports what is left over on either side.
//
// Matching is a single linear pass with no backtracking: for each input the
// first output satisfying the configured predicate wins. Inputs never fail to
// reconcile; an input without a partner is reported as missing, and an output
// nobody claimed is reported as unmatched.
package reconcile

import (
	"fmt"
	"strings"

	"convcheck/internal/stem"
)

// Strategy selects the predicate used to decide whether an output belongs to
// an input.
type Strategy string

const (
	// StrategyPrefix accepts an output that starts with the input's base name
	// or whose base name equals it.
	StrategyPrefix Strategy = "prefix"
	// StrategyExact accepts an output only when its base name equals the
	// input's base name.
	StrategyExact Strategy = "exact"
)

// ParseStrategy maps a configuration value onto a Strategy. Empty selects
// StrategyPrefix.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(value))) {
	case "", StrategyPrefix:
		return StrategyPrefix, nil
	case StrategyExact:
		return StrategyExact, nil
	default:
		return "", fmt.Errorf("unknown match strategy %q", value)
	}
}

// Options tunes a reconciliation. The zero value reproduces the historical
// behaviour: prefix matching and outputs that stay available after being
// claimed.
type Options struct {
	Strategy Strategy
	// Exclusive removes an output from consideration once an input claims it,
	// turning the pass into a greedy one-to-one assignment.
	Exclusive bool
}

// Match pairs an input filename with the output filename it was matched to.
type Match struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// SharedOutput records an output claimed by more than one input.
type SharedOutput struct {
	Output string   `json:"output"`
	Inputs []string `json:"inputs"`
}

// Result is the outcome of a reconciliation. Matched and Missing follow input
// order; UnmatchedOutputs follows output order.
type Result struct {
	Matched          []Match        `json:"matched"`
	Missing          []string       `json:"missing"`
	UnmatchedOutputs []string       `json:"unmatched_outputs"`
	Shared           []SharedOutput `json:"shared,omitempty"`
}

// Reconcile scans outputs once per input and records the first output that
// satisfies the strategy predicate.
//
// Outputs are expected to be stem-normalized already. Without
// Options.Exclusive the same output may be claimed by several inputs; such
// collisions are surfaced in Result.Shared. With Options.Exclusive each output
// slot is consumed by the first input that claims it.
//
// In both modes an output counts as matched when any pair carries an
// identical string, so duplicate names left behind by repeated exports are
// never reported as unmatched.
func Reconcile(inputs, outputs []string, opts Options) Result {
	res := Result{
		Matched:          make([]Match, 0, len(inputs)),
		Missing:          make([]string, 0),
		UnmatchedOutputs: make([]string, 0),
	}

	match := matcherFor(opts.Strategy)
	claimed := make([]bool, len(outputs))

	for _, input := range inputs {
		name := stem.Base(input)
		idx := -1
		for i, output := range outputs {
			if opts.Exclusive && claimed[i] {
				continue
			}
			if match(name, output) {
				idx = i
				break
			}
		}
		if idx < 0 {
			res.Missing = append(res.Missing, input)
			continue
		}
		claimed[idx] = true
		res.Matched = append(res.Matched, Match{Input: input, Output: outputs[idx]})
	}

	taken := make(map[string]struct{}, len(res.Matched))
	for _, m := range res.Matched {
		taken[m.Output] = struct{}{}
	}
	for _, output := range outputs {
		if _, ok := taken[output]; !ok {
			res.UnmatchedOutputs = append(res.UnmatchedOutputs, output)
		}
	}
	if !opts.Exclusive {
		res.Shared = sharedOutputs(res.Matched)
	}
	return res
}

func matcherFor(strategy Strategy) func(name, output string) bool {
	if strategy == StrategyExact {
		return func(name, output string) bool {
			return stem.Base(output) == name
		}
	}
	return func(name, output string) bool {
		return strings.HasPrefix(output, name) || stem.Base(output) == name
	}
}

func sharedOutputs(matched []Match) []SharedOutput {
	claims := make(map[string][]string, len(matched))
	order := make([]string, 0)
	for _, m := range matched {
		if _, seen := claims[m.Output]; !seen {
			order = append(order, m.Output)
		}
		claims[m.Output] = append(claims[m.Output], m.Input)
	}
	var shared []SharedOutput
	for _, output := range order {
		if inputs := claims[output]; len(inputs) > 1 {
			shared = append(shared, SharedOutput{Output: output, Inputs: inputs})
		}
	}
	return shared
}

// Counts summarizes the size of each result bucket.
type Counts struct {
	Matched   int `json:"matched"`
	Missing   int `json:"missing"`
	Unmatched int `json:"unmatched_outputs"`
	Shared    int `json:"shared"`
}

// Counts returns the number of entries in each bucket.
func (r Result) Counts() Counts {
	return Counts{
		Matched:   len(r.Matched),
		Missing:   len(r.Missing),
		Unmatched: len(r.UnmatchedOutputs),
		Shared:    len(r.Shared),
	}
}
