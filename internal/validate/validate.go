// Package validate performs best-effort sanity checks on schema files,
// parsed schemas, and generated SQL. Unknown types and similar oddities
// produce warnings, not errors; only structurally unusable input fails.
package validate

import (
	"fmt"
	"os"
	"strings"

	"sqlbridge/internal/core"
)

// supportedTypes are the base types we know how to handle end to end.
// Anything else still parses; it just earns a warning here.
var supportedTypes = map[string]bool{
	"INT": true, "INTEGER": true, "BIGINT": true, "SMALLINT": true, "TINYINT": true, "MEDIUMINT": true,
	"VARCHAR": true, "CHAR": true, "TEXT": true, "LONGTEXT": true, "MEDIUMTEXT": true, "TINYTEXT": true,
	"DECIMAL": true, "NUMERIC": true, "FLOAT": true, "DOUBLE": true,
	"DATE": true, "DATETIME": true, "TIMESTAMP": true, "TIME": true, "YEAR": true,
	"BOOLEAN": true, "BOOL": true,
	"ENUM": true, "SET": true,
	"BLOB": true, "JSON": true,
}

// Report collects validation findings. Errors make the input unusable;
// warnings are informational.
type Report struct {
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// OK reports whether validation found no errors.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// SchemaFile checks that path points at a usable schema file: it exists,
// carries a .sql extension, is not empty, and mentions CREATE TABLE.
func SchemaFile(path string) error {
	if !strings.HasSuffix(strings.ToLower(path), ".sql") {
		return fmt.Errorf("schema file must have a .sql extension: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read schema file: %w", err)
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return fmt.Errorf("schema file is empty: %s", path)
	}
	if !strings.Contains(strings.ToUpper(content), "CREATE TABLE") {
		return fmt.Errorf("schema file contains no CREATE TABLE statement: %s", path)
	}
	return nil
}

// Schema checks a parsed schema: at least one field, primary keys that
// reference declared fields, and recognized base types.
func Schema(s *core.Schema) *Report {
	report := &Report{}
	if s.TableName == "" {
		report.errorf("schema has no table name")
	}
	if len(s.Fields) == 0 {
		report.errorf("schema has no fields")
		return report
	}

	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if seen[f.Name] {
			report.errorf("duplicate field name: %s", f.Name)
		}
		seen[f.Name] = true
		if !supportedTypes[f.Type] {
			report.warnf("field %s: type %s may not be supported by every dialect", f.Name, f.Type)
		}
		if (f.Type == "ENUM" || f.Type == "SET") && len(f.EnumValues) == 0 {
			report.warnf("field %s: %s declared with no values", f.Name, f.Type)
		}
	}

	for _, pk := range s.PrimaryKeys {
		if !seen[pk] {
			report.warnf("primary key references undeclared field: %s", pk)
		}
	}
	for _, idx := range s.Indexes {
		for _, f := range idx.Fields {
			if !seen[f] {
				report.warnf("index %s references undeclared field: %s", idx.Name, f)
			}
		}
	}
	return report
}
