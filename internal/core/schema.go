// Package core contains the canonical schema representation shared by the
// parser, the dialect adapters, and the spreadsheet mapping layer. A Schema
// is built once per parse and is never mutated afterwards.
package core

import (
	"fmt"
	"strings"
)

// Dialect identifies a supported SQL dialect.
type Dialect string

const (
	DialectMySQL      Dialect = "mysql"
	DialectPostgreSQL Dialect = "postgresql"
	DialectSQLite     Dialect = "sqlite"
	DialectMSSQL      Dialect = "sqlserver"
)

// SupportedDialects returns all supported dialects in their canonical
// generation order. Generator output ordering follows this slice.
func SupportedDialects() []Dialect {
	return []Dialect{
		DialectMySQL,
		DialectPostgreSQL,
		DialectSQLite,
		DialectMSSQL,
	}
}

// IsValidDialect reports whether d is a recognized dialect string.
func IsValidDialect(d string) bool {
	for _, supported := range SupportedDialects() {
		if strings.EqualFold(string(supported), d) {
			return true
		}
	}
	return false
}

// Schema is the normalized result of parsing one CREATE TABLE statement.
// Fields preserve declaration order from the source text.
type Schema struct {
	TableName   string      `json:"tableName"`
	Fields      []*FieldDef `json:"fields"`
	PrimaryKeys []string    `json:"primaryKeys,omitempty"`
	Indexes     []*Index    `json:"indexes,omitempty"`
}

// FieldDef describes a single column. At most one of Size, the
// Precision/Scale pair, or EnumValues is set, depending on the type.
type FieldDef struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"` // canonical uppercase base type
	Size          int      `json:"size,omitempty"`
	RawSize       string   `json:"rawSize,omitempty"` // non-integer size argument kept verbatim
	Precision     int      `json:"precision,omitempty"`
	Scale         int      `json:"scale,omitempty"`
	EnumValues    []string `json:"enumValues,omitempty"`
	Nullable      bool     `json:"nullable"`
	Default       string   `json:"default,omitempty"`
	DefaultNull   bool     `json:"defaultNull,omitempty"` // explicit DEFAULT NULL
	HasDefault    bool     `json:"hasDefault,omitempty"`  // distinguishes DEFAULT NULL from no default
	AutoIncrement bool     `json:"autoIncrement,omitempty"`
}

// Index is a secondary index declared in the table body.
type Index struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Field returns the field with the given name, or nil.
func (s *Schema) Field(name string) *FieldDef {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FieldNames returns the field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Required reports whether a value must be supplied for the field:
// NOT NULL with no declared default.
func (f *FieldDef) Required() bool {
	return !f.Nullable && !f.HasDefault
}

// TypeSpec renders the type with its size, precision, or enum suffix,
// e.g. VARCHAR(50), DECIMAL(10,2), ENUM('a','b').
func (f *FieldDef) TypeSpec() string {
	switch {
	case len(f.EnumValues) > 0:
		quoted := make([]string, 0, len(f.EnumValues))
		for _, v := range f.EnumValues {
			quoted = append(quoted, "'"+v+"'")
		}
		return fmt.Sprintf("%s(%s)", f.Type, strings.Join(quoted, ","))
	case f.Precision > 0:
		return fmt.Sprintf("%s(%d,%d)", f.Type, f.Precision, f.Scale)
	case f.Size > 0:
		return fmt.Sprintf("%s(%d)", f.Type, f.Size)
	case f.RawSize != "":
		return fmt.Sprintf("%s(%s)", f.Type, f.RawSize)
	default:
		return f.Type
	}
}

// Summary renders a short human-readable description of the schema.
func (s *Schema) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table: %s\n", s.TableName)
	fmt.Fprintf(&b, "Fields: %d\n", len(s.Fields))
	fmt.Fprintf(&b, "Primary Keys: %s\n", strings.Join(s.PrimaryKeys, ", "))
	for _, f := range s.Fields {
		null := "NULL"
		if !f.Nullable {
			null = "NOT NULL"
		}
		line := fmt.Sprintf("  %s: %s %s", f.Name, f.TypeSpec(), null)
		if f.HasDefault {
			if f.DefaultNull {
				line += " DEFAULT NULL"
			} else {
				line += " DEFAULT " + f.Default
			}
		}
		b.WriteString(line + "\n")
	}
	for _, idx := range s.Indexes {
		fmt.Fprintf(&b, "  index %s (%s)\n", idx.Name, strings.Join(idx.Fields, ", "))
	}
	return b.String()
}
