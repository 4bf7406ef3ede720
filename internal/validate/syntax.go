package validate

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"sqlbridge/internal/core"
	"sqlbridge/internal/dialect"
	"sqlbridge/internal/render"
)

// StatementResult is the outcome of executing one statement against the
// disposable in-memory database.
type StatementResult struct {
	Statement string `json:"statement"`
	Err       error  `json:"-"`
	Error     string `json:"error,omitempty"`
}

// SyntaxReport summarizes a best-effort syntax run.
type SyntaxReport struct {
	Executed   int               `json:"executed"`
	Failed     int               `json:"failed"`
	Statements []StatementResult `json:"statements,omitempty"`
}

// Syntax executes the given SQL, statement by statement, against a fresh
// in-memory SQLite database and reports per-statement outcomes. This is a
// best-effort syntax check of the SQLite-dialect artifact, not semantic
// validation: failures are recorded, never returned as an error.
func Syntax(ctx context.Context, sqlText string) (*SyntaxReport, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}
	defer db.Close()

	report := &SyntaxReport{}
	for _, stmt := range splitStatements(sqlText) {
		res := StatementResult{Statement: abbreviate(stmt)}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			res.Err = err
			res.Error = err.Error()
			report.Failed++
		}
		report.Executed++
		report.Statements = append(report.Statements, res)
	}
	return report, nil
}

// SyntaxFromSchema renders the schema to generic SQL, adapts it for SQLite,
// and runs the in-memory syntax check over the result.
func SyntaxFromSchema(ctx context.Context, s *core.Schema) (*SyntaxReport, error) {
	adapter, err := dialect.Get(core.DialectSQLite)
	if err != nil {
		return nil, err
	}
	return Syntax(ctx, adapter.AdaptCreateTable(render.CreateTable(s)))
}

// splitStatements drops comment lines and splits the remainder on
// semicolons. Good enough for generated output; not a general SQL lexer.
func splitStatements(sqlText string) []string {
	var kept []string
	for _, line := range strings.Split(sqlText, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	var stmts []string
	for _, stmt := range strings.Split(strings.Join(kept, "\n"), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func abbreviate(stmt string) string {
	stmt = strings.Join(strings.Fields(stmt), " ")
	if len(stmt) > 80 {
		return stmt[:77] + "..."
	}
	return stmt
}
