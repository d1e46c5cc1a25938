package harness

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Formats lists the accepted report formats.
var Formats = []string{FormatText, FormatYAML}

// Report is the document written by WriteYAML.
type Report struct {
	Rounds int           `yaml:"rounds"`
	Groups []ReportGroup `yaml:"groups"`
}

// ReportGroup is a GroupResult with its speedup spelled out.
type ReportGroup struct {
	GroupResult `yaml:",inline"`
	Speedup     float64 `yaml:"speedup"`
}

// NewReport wraps results for encoding.
func NewReport(rounds int, results []GroupResult) Report {
	r := Report{Rounds: max(rounds, 1), Groups: make([]ReportGroup, len(results))}
	for i, g := range results {
		r.Groups[i] = ReportGroup{GroupResult: g, Speedup: g.Speedup()}
	}
	return r
}

// CheckFormat returns an error if Write does not accept format.
func CheckFormat(format string) error {
	if format == "" || slices.Contains(Formats, format) {
		return nil
	}
	return fmt.Errorf("unknown format %q (want one of %v)", format, Formats)
}

// Write encodes results in the given format.
func Write(w io.Writer, format string, rounds int, results []GroupResult) error {
	switch format {
	case FormatText, "":
		return WriteText(w, results)
	case FormatYAML:
		return WriteYAML(w, NewReport(rounds, results))
	default:
		return CheckFormat(format)
	}
}

// WriteText prints one block per group: the title, then a row per path and
// the SIMD speedup over scalar.
func WriteText(w io.Writer, results []GroupResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, g := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintln(tw, g.Title)
		for _, m := range []Measurement{g.Scalar, g.SIMD} {
			fmt.Fprintf(tw, "  %s\t%d\t%.2f ns/op\t%d allocs/op\n", m.Path, m.Iterations, m.NsPerOp, m.AllocsPerOp)
		}
		fmt.Fprintf(tw, "  speedup\t\t%.2fx\n", g.Speedup())
	}
	return tw.Flush()
}

// WriteYAML encodes r as YAML.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
