package dialect

import (
	"regexp"
	"strings"

	"sqlbridge/internal/core"
)

func init() {
	Register(core.DialectSQLite, func() Adapter { return &SQLite{} })
}

// SQLite renames AUTO_INCREMENT to AUTOINCREMENT, widens VARCHAR(n) and the
// date/time types to TEXT, and rewrites backtick quoting.
type SQLite struct{}

var (
	sqliteVarcharRe  = regexp.MustCompile(`(?i)VARCHAR\(\d+\)`)
	sqliteDatetimeRe = regexp.MustCompile(`(?i)DATETIME|TIMESTAMP`)
)

func (SQLite) Name() core.Dialect { return core.DialectSQLite }

func (SQLite) AdaptCreateTable(sql string) string {
	sql = strings.ReplaceAll(sql, "AUTO_INCREMENT", "AUTOINCREMENT")
	sql = sqliteVarcharRe.ReplaceAllString(sql, "TEXT")
	sql = sqliteDatetimeRe.ReplaceAllString(sql, "TEXT")
	return strings.ReplaceAll(sql, "`", `"`)
}

func (SQLite) AdaptInsert(sql string) string {
	return strings.ReplaceAll(sql, "`", `"`)
}

func (SQLite) Meta() Meta {
	return Meta{
		TypeMapping: map[string]string{
			"VARCHAR":   "TEXT",
			"TINYINT":   "INTEGER",
			"DATETIME":  "TEXT",
			"TIMESTAMP": "TEXT",
		},
		SyntaxRules: map[string]string{
			"quote_char":        `"`,
			"auto_increment":    "AUTOINCREMENT",
			"current_timestamp": "datetime('now')",
		},
		ConnectionTemplate: "sqlite:///database.db",
	}
}
