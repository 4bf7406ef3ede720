// Package output formats generation results and validation reports for the
// CLI. Two formats are provided: a human-readable summary and JSON.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"sqlbridge/internal/generate"
	"sqlbridge/internal/validate"
)

// Format is an enum of the available output formats.
type Format string

const (
	FormatSummary Format = "summary"
	FormatJSON    Format = "json"
)

// Formatter renders results for one output format.
type Formatter interface {
	FormatResults([]generate.Result) (string, error)
	FormatReport(*validate.Report, *validate.SyntaxReport) (string, error)
}

// NewFormatter returns the formatter for the given name, defaulting to the
// human-readable summary.
func NewFormatter(name string) (Formatter, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatSummary:
		return summaryFormatter{}, nil
	case FormatJSON:
		return jsonFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s; use 'summary' or 'json'", name)
	}
}

type summaryFormatter struct{}

func (summaryFormatter) FormatResults(results []generate.Result) (string, error) {
	var b strings.Builder
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "FAIL %s: %s\n", r.Dialect, r.Error)
			continue
		}
		fmt.Fprintf(&b, "ok   %s: %s\n", r.Dialect, r.File)
	}
	return b.String(), nil
}

func (summaryFormatter) FormatReport(report *validate.Report, syntax *validate.SyntaxReport) (string, error) {
	var b strings.Builder
	for _, e := range report.Errors {
		fmt.Fprintf(&b, "error: %s\n", e)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}
	if syntax != nil {
		fmt.Fprintf(&b, "syntax check: %d statements, %d failed\n", syntax.Executed, syntax.Failed)
		for _, st := range syntax.Statements {
			if st.Err != nil {
				fmt.Fprintf(&b, "  FAIL %s: %s\n", st.Statement, st.Error)
			}
		}
	}
	if report.OK() {
		b.WriteString("schema is valid\n")
	}
	return b.String(), nil
}

type jsonFormatter struct{}

func (jsonFormatter) FormatResults(results []generate.Result) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	return string(data), nil
}

func (jsonFormatter) FormatReport(report *validate.Report, syntax *validate.SyntaxReport) (string, error) {
	payload := struct {
		*validate.Report
		Syntax *validate.SyntaxReport `json:"syntax,omitempty"`
	}{report, syntax}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), nil
}
