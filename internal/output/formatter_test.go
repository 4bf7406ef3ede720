package output

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlbridge/internal/core"
	"sqlbridge/internal/generate"
	"sqlbridge/internal/validate"
)

func sampleResults() []generate.Result {
	return []generate.Result{
		{Dialect: core.DialectMySQL, File: "out/products_mysql.sql", ConnectionTemplate: "mysql://..."},
		{Dialect: core.DialectSQLite, Err: errors.New("disk full"), Error: "disk full"},
	}
}

func TestNewFormatter(t *testing.T) {
	for _, name := range []string{"", "summary", "json", "JSON"} {
		_, err := NewFormatter(name)
		assert.NoError(t, err, "format %q", name)
	}
	_, err := NewFormatter("yaml")
	assert.Error(t, err)
}

func TestSummaryResults(t *testing.T) {
	f, err := NewFormatter("summary")
	require.NoError(t, err)

	text, err := f.FormatResults(sampleResults())
	require.NoError(t, err)
	assert.Contains(t, text, "ok   mysql: out/products_mysql.sql")
	assert.Contains(t, text, "FAIL sqlite: disk full")
}

func TestJSONResults(t *testing.T) {
	f, err := NewFormatter("json")
	require.NoError(t, err)

	text, err := f.FormatResults(sampleResults())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "mysql", decoded[0]["dialect"])
	assert.Equal(t, "disk full", decoded[1]["error"])
}

func TestSummaryReport(t *testing.T) {
	f, err := NewFormatter("summary")
	require.NoError(t, err)

	report := &validate.Report{Warnings: []string{"something odd"}}
	syntax := &validate.SyntaxReport{Executed: 2, Failed: 0}
	text, err := f.FormatReport(report, syntax)
	require.NoError(t, err)
	assert.Contains(t, text, "warning: something odd")
	assert.Contains(t, text, "syntax check: 2 statements, 0 failed")
	assert.Contains(t, text, "schema is valid")
}

func TestJSONReport(t *testing.T) {
	f, err := NewFormatter("json")
	require.NoError(t, err)

	report := &validate.Report{Errors: []string{"no fields"}}
	text, err := f.FormatReport(report, nil)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	assert.Contains(t, decoded["errors"], "no fields")
}
