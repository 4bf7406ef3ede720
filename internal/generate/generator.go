// Package generate orchestrates the dialect adapters: it splits a combined
// CREATE+INSERT SQL blob into its two sections, runs every registered
// adapter over them, and writes one artifact per dialect plus a Markdown
// document of connection-string templates. A failure for one dialect is
// recorded in its Result and never aborts the remaining dialects.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sqlbridge/internal/core"
	"sqlbridge/internal/dialect"
)

// Result reports the outcome of generation for a single dialect.
type Result struct {
	Dialect            core.Dialect `json:"dialect"`
	File               string       `json:"file,omitempty"`
	ConnectionTemplate string       `json:"connectionTemplate,omitempty"`
	Err                error        `json:"-"`
	Error              string       `json:"error,omitempty"`
}

// Generator produces dialect-specific SQL artifacts.
type Generator struct {
	adapters []dialect.Adapter
	now      func() time.Time
}

// New returns a Generator over all registered dialects.
func New() *Generator {
	return &Generator{adapters: dialect.All(), now: time.Now}
}

// NewForDialects returns a Generator restricted to the named dialects.
// Unknown names are ignored.
func NewForDialects(names []string) *Generator {
	var adapters []dialect.Adapter
	for _, a := range dialect.All() {
		for _, n := range names {
			if strings.EqualFold(string(a.Name()), n) {
				adapters = append(adapters, a)
				break
			}
		}
	}
	return &Generator{adapters: adapters, now: time.Now}
}

// SplitSections partitions a SQL blob into its CREATE TABLE section and its
// INSERT section by scanning lines: a line starting with CREATE TABLE opens
// the create block, a line starting with INSERT INTO closes it, and every
// non-blank line lands in whichever section is currently open.
func SplitSections(sql string) (createSection, insertSection string) {
	var create, insert strings.Builder
	inCreate := false
	for _, line := range strings.Split(sql, "\n") {
		upper := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(upper, "CREATE TABLE"):
			inCreate = true
			create.WriteString(line + "\n")
		case strings.HasPrefix(upper, "INSERT INTO"):
			inCreate = false
			insert.WriteString(line + "\n")
		case strings.TrimSpace(line) == "":
		case inCreate:
			create.WriteString(line + "\n")
		default:
			insert.WriteString(line + "\n")
		}
	}
	return create.String(), insert.String()
}

// GenerateAll adapts the source SQL for every configured dialect and writes
// one {baseName}_{dialect}.sql file per dialect under outputDir. Results
// are returned in generation order; per-dialect write errors are recorded
// in the Result rather than returned.
func (g *Generator) GenerateAll(sourceSQL, outputDir, baseName string) []Result {
	createSection, insertSection := SplitSections(sourceSQL)

	results := make([]Result, 0, len(g.adapters))
	for _, a := range g.adapters {
		meta := a.Meta()
		res := Result{
			Dialect:            a.Name(),
			ConnectionTemplate: meta.ConnectionTemplate,
		}

		var b strings.Builder
		b.WriteString(g.header(a.Name(), baseName))
		b.WriteString(meta.Header)
		b.WriteString(a.AdaptCreateTable(createSection))
		b.WriteString("\n")
		b.WriteString(a.AdaptInsert(insertSection))
		b.WriteString(meta.Footer)
		b.WriteString(g.footer(a.Name()))

		outFile := filepath.Join(outputDir, fmt.Sprintf("%s_%s.sql", baseName, a.Name()))
		if err := os.WriteFile(outFile, []byte(b.String()), 0o644); err != nil {
			res.Err = fmt.Errorf("write %s artifact: %w", a.Name(), err)
			res.Error = res.Err.Error()
			results = append(results, res)
			continue
		}
		res.File = outFile
		results = append(results, res)
	}
	return results
}

// GenerateFile reads sourceFile and generates artifacts named after it.
func (g *Generator) GenerateFile(sourceFile, outputDir string) ([]Result, error) {
	data, err := os.ReadFile(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("read source sql: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	return g.GenerateAll(string(data), outputDir, base), nil
}

func (g *Generator) header(d core.Dialect, baseName string) string {
	return fmt.Sprintf(`-- ===============================================
-- SQL adapted for %s
-- Source: %s
-- Generated at: %s
-- ===============================================

`, strings.ToUpper(string(d)), baseName, g.now().Format("2006-01-02 15:04:05"))
}

func (g *Generator) footer(d core.Dialect) string {
	return fmt.Sprintf(`
-- ===============================================
-- End of %s script
-- ===============================================
`, strings.ToUpper(string(d)))
}
