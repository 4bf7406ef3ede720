// Package mapping implements the schema side of the spreadsheet contract:
// matching sheet columns to schema fields and cleaning raw cell values into
// SQL-ready typed values. It reads the Schema but never mutates it, and
// places no requirement on where the header row and cells come from.
package mapping

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"sqlbridge/internal/core"
)

// ColumnMatch binds one schema field to one sheet column.
type ColumnMatch struct {
	Field  string
	Column string
	Index  int
}

// MatchResult is the outcome of matching a header row against a schema.
type MatchResult struct {
	Matches []ColumnMatch
	// MissingRequired lists NOT NULL fields without a default that no
	// column matched.
	MissingRequired []string
}

// aliases maps common field names to header spellings seen in the wild.
var aliases = map[string][]string{
	"name":        {"name", "nome", "product", "item"},
	"price":       {"price", "preco", "value", "cost"},
	"category":    {"category", "categoria", "type", "class"},
	"description": {"description", "descricao", "desc", "details"},
	"email":       {"email", "e-mail", "e_mail"},
	"active":      {"active", "ativo", "status"},
}

// MatchColumns maps each schema field to the best-matching header column:
// exact case-insensitive match first, then normalized match (spaces,
// underscores, and hyphens stripped), then known alias containment.
func MatchColumns(s *core.Schema, header []string) MatchResult {
	var result MatchResult
	for _, f := range s.Fields {
		idx := findColumn(header, f.Name)
		if idx < 0 {
			if f.Required() && !f.AutoIncrement {
				result.MissingRequired = append(result.MissingRequired, f.Name)
			}
			continue
		}
		result.Matches = append(result.Matches, ColumnMatch{
			Field:  f.Name,
			Column: header[idx],
			Index:  idx,
		})
	}
	return result
}

func findColumn(header []string, field string) int {
	for i, col := range header {
		if strings.EqualFold(col, field) {
			return i
		}
	}
	for i, col := range header {
		if normalize(col) == normalize(field) {
			return i
		}
	}
	if variants, ok := aliases[strings.ToLower(field)]; ok {
		for _, variant := range variants {
			for i, col := range header {
				if strings.Contains(strings.ToLower(col), variant) {
					return i
				}
			}
		}
	}
	return -1
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, s)
}

// CleanValue converts one raw cell into a value suitable for the field.
// Empty cells become nil for nullable fields and an error for required
// ones. Strings are trimmed and truncated to the declared size; numeric
// and boolean types are coerced.
func CleanValue(f *core.FieldDef, raw string) (any, error) {
	cleaned := cleanString(raw)
	if cleaned == "" {
		if f.Required() && !f.AutoIncrement {
			return nil, fmt.Errorf("field %s: empty value for required field", f.Name)
		}
		return nil, nil
	}

	switch f.Type {
	case "TINYINT":
		// TINYINT(1) is a boolean by MySQL convention.
		if f.Size == 1 {
			b, err := parseBool(cleaned)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}
			return b, nil
		}
		fallthrough
	case "INT", "INTEGER", "BIGINT", "SMALLINT", "MEDIUMINT":
		n, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %q is not an integer", f.Name, raw)
		}
		return n, nil
	case "BOOLEAN", "BOOL":
		b, err := parseBool(cleaned)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		return b, nil
	case "DECIMAL", "NUMERIC", "FLOAT", "DOUBLE":
		v, err := strconv.ParseFloat(strings.ReplaceAll(cleaned, ",", "."), 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %q is not numeric", f.Name, raw)
		}
		return v, nil
	case "ENUM", "SET":
		for _, allowed := range f.EnumValues {
			if strings.EqualFold(cleaned, allowed) {
				return allowed, nil
			}
		}
		return nil, fmt.Errorf("field %s: %q is not one of %v", f.Name, raw, f.EnumValues)
	default:
		return Truncate(f, cleaned), nil
	}
}

// Truncate cuts a string down to the field's declared size, if any.
// Sizes count characters, so the cut never splits a multibyte rune.
func Truncate(f *core.FieldDef, value string) string {
	if f.Size <= 0 || utf8.RuneCountInString(value) <= f.Size {
		return value
	}
	return string([]rune(value)[:f.Size])
}

// cleanString trims whitespace, drops the textual null markers spreadsheet
// exports produce, and strips a trailing ".0" left over from numeric cells.
func cleanString(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "nan", "none", "null":
		return ""
	}
	if len(s) > 2 && strings.HasSuffix(s, ".0") && isDigits(s[:len(s)-2]) {
		return s[:len(s)-2]
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "sim", "y", "s":
		return true, nil
	case "0", "false", "no", "nao", "n":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean value", s)
}

// CleanRow cleans one data row against the match result, producing values
// in schema field order. Unmatched fields yield nil entries.
func CleanRow(s *core.Schema, matches []ColumnMatch, row []string) ([]any, []error) {
	byField := make(map[string]int, len(matches))
	for _, m := range matches {
		byField[m.Field] = m.Index
	}

	values := make([]any, 0, len(s.Fields))
	var errs []error
	for _, f := range s.Fields {
		idx, ok := byField[f.Name]
		if !ok || idx >= len(row) {
			values = append(values, nil)
			continue
		}
		v, err := CleanValue(f, row[idx])
		if err != nil {
			errs = append(errs, err)
			values = append(values, nil)
			continue
		}
		values = append(values, v)
	}
	return values, errs
}
