// Package render turns a normalized core.Schema back into generic
// MySQL-flavored SQL text. The generic form is what the dialect adapters
// consume; it always uses backtick quoting and AUTO_INCREMENT spelling.
package render

import (
	"fmt"
	"strings"

	"sqlbridge/internal/core"
)

// CreateTable renders a CREATE TABLE statement for the schema.
func CreateTable(s *core.Schema) string {
	var defs []string
	for _, f := range s.Fields {
		def := fmt.Sprintf("  `%s` %s", f.Name, f.TypeSpec())
		if !f.Nullable {
			def += " NOT NULL"
		}
		if f.AutoIncrement {
			def += " AUTO_INCREMENT"
		}
		if f.HasDefault {
			def += " DEFAULT " + renderDefault(f)
		}
		defs = append(defs, def)
	}

	if len(s.PrimaryKeys) > 0 {
		quoted := make([]string, 0, len(s.PrimaryKeys))
		for _, pk := range s.PrimaryKeys {
			quoted = append(quoted, "`"+pk+"`")
		}
		defs = append(defs, fmt.Sprintf("  PRIMARY KEY (%s)", strings.Join(quoted, ", ")))
	}
	for _, idx := range s.Indexes {
		quoted := make([]string, 0, len(idx.Fields))
		for _, f := range idx.Fields {
			quoted = append(quoted, "`"+f+"`")
		}
		defs = append(defs, fmt.Sprintf("  KEY `%s` (%s)", idx.Name, strings.Join(quoted, ", ")))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` (\n%s\n);", s.TableName, strings.Join(defs, ",\n"))
}

func renderDefault(f *core.FieldDef) string {
	if f.DefaultNull {
		return "NULL"
	}
	if isBareDefault(f.Default) {
		return f.Default
	}
	return "'" + strings.ReplaceAll(f.Default, "'", "''") + "'"
}

// isBareDefault reports whether the default renders without quotes:
// numeric literals and known SQL keywords.
func isBareDefault(v string) bool {
	switch strings.ToUpper(v) {
	case "CURRENT_TIMESTAMP", "TRUE", "FALSE":
		return true
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' {
			return false
		}
	}
	return len(v) > 0
}

// Insert renders one INSERT statement per row. Values are matched to
// fields positionally; nil entries render as NULL, numeric-typed fields
// render unquoted, everything else is single-quoted with doubled
// single-quote escaping.
func Insert(s *core.Schema, rows [][]any) string {
	if len(rows) == 0 {
		return ""
	}
	cols := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		cols = append(cols, "`"+f.Name+"`")
	}
	head := fmt.Sprintf("INSERT INTO `%s` (%s) VALUES", s.TableName, strings.Join(cols, ", "))

	var b strings.Builder
	for _, row := range rows {
		vals := make([]string, 0, len(row))
		for i, v := range row {
			var f *core.FieldDef
			if i < len(s.Fields) {
				f = s.Fields[i]
			}
			vals = append(vals, Literal(f, v))
		}
		fmt.Fprintf(&b, "%s (%s);\n", head, strings.Join(vals, ", "))
	}
	return b.String()
}

// Literal renders a single value as a SQL literal for the given field.
func Literal(f *core.FieldDef, v any) string {
	if v == nil {
		return "NULL"
	}
	switch val := v.(type) {
	case int:
		return fmt.Sprintf("%d", val)
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		if f != nil && f.Precision > 0 {
			return fmt.Sprintf("%.*f", f.Scale, val)
		}
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", val), "0"), ".")
	case bool:
		if val {
			return "1"
		}
		return "0"
	default:
		s := fmt.Sprintf("%v", val)
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}
}
