// Package parser extracts a normalized core.Schema from loosely formatted
// CREATE TABLE text. It is deliberately not a full SQL grammar: the input is
// cleaned, the field list is isolated heuristically, and each clause is
// matched with targeted patterns. In lenient mode anything that cannot be
// understood is skipped; strict mode turns those skips into errors.
package parser

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"sqlbridge/internal/core"
)

// Mode selects how the parser treats clauses it cannot understand.
type Mode int

const (
	// ModeLenient silently skips unparseable field clauses and accepts
	// PRIMARY KEY references to undeclared fields.
	ModeLenient Mode = iota
	// ModeStrict fails the parse on either of the above.
	ModeStrict
)

// Parser parses CREATE TABLE statements. The zero value is a lenient parser.
type Parser struct {
	mode Mode
}

// NewParser returns a lenient parser matching the historical behavior.
func NewParser() *Parser {
	return &Parser{mode: ModeLenient}
}

// NewStrictParser returns a parser that rejects input it cannot fully
// account for instead of degrading.
func NewStrictParser() *Parser {
	return &Parser{mode: ModeStrict}
}

var (
	tableNameRe = regexp.MustCompile(`(?i)CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?` + "`" + `?(\w+)` + "`" + `?`)

	// The field list is located greedily up to the last closing paren,
	// preferring a semicolon-terminated form. This is a heuristic, not a
	// balanced scan: a ';' inside a parenthesized default would fool it.
	fieldListTermRe   = regexp.MustCompile(`(?i)CREATE\s+TABLE[^(]*\((.*)\)\s*;`)
	fieldListUntermRe = regexp.MustCompile(`(?i)CREATE\s+TABLE[^(]*\((.*)\)`)

	fieldNameRe = regexp.MustCompile("^`?(\\w+)`?\\s+(.+)$")
	setEnumRe   = regexp.MustCompile(`(?i)^(SET|ENUM)\(([^)]+)\)`)
	typeRe      = regexp.MustCompile(`^(\w+)(?:\(([^)]+)\))?`)
	defaultRe   = regexp.MustCompile(`(?i)DEFAULT\s+('[^']*'|"[^"]*"|[^,\s]+)`)
	primaryRe   = regexp.MustCompile(`(?i)PRIMARY\s+KEY\s*\(([^)]+)\)`)
	indexRe     = regexp.MustCompile(`(?i)(?:KEY|INDEX)\s+` + "`" + `?(\w+)` + "`" + `?\s*\(([^)]+)\)`)
)

// constraintPrefixes mark a clause as table-level rather than a field.
// Matching on the clause prefix, not containment, keeps inline column
// constraints such as "id INT PRIMARY KEY" parsing as fields.
var constraintPrefixes = []string{
	"PRIMARY KEY", "UNIQUE KEY ", "UNIQUE INDEX ", "UNIQUE(", "UNIQUE (",
	"FOREIGN KEY", "CONSTRAINT ", "KEY ", "KEY(", "INDEX ", "INDEX(",
}

// ParseFile reads path and parses its contents.
func (p *Parser) ParseFile(path string) (*core.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	return p.Parse(string(data))
}

// Parse extracts the table name, field definitions, primary keys, and
// indexes from one CREATE TABLE statement.
func (p *Parser) Parse(sql string) (*core.Schema, error) {
	cleaned := cleanSQL(sql)

	name, err := extractTableName(cleaned)
	if err != nil {
		return nil, err
	}

	body, err := extractFieldList(cleaned)
	if err != nil {
		return nil, err
	}

	schema := &core.Schema{TableName: name}
	var inlinePKs []string
	for _, clause := range splitClauses(body) {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if isConstraintClause(clause) {
			continue
		}
		field := parseFieldClause(clause)
		if field == nil {
			if p.mode == ModeStrict {
				return nil, parseErr(ErrUnparsedClause, "%q", clause)
			}
			continue
		}
		schema.Fields = append(schema.Fields, field)
		if strings.Contains(strings.ToUpper(clause), "PRIMARY KEY") {
			inlinePKs = append(inlinePKs, field.Name)
		}
	}

	schema.PrimaryKeys = extractPrimaryKeys(cleaned)
	if len(schema.PrimaryKeys) == 0 {
		schema.PrimaryKeys = inlinePKs
	}
	schema.Indexes = extractIndexes(cleaned)

	if p.mode == ModeStrict {
		for _, pk := range schema.PrimaryKeys {
			if schema.Field(pk) == nil {
				return nil, parseErr(ErrUnknownPrimaryKey, "%q", pk)
			}
		}
	}

	return schema, nil
}

func extractTableName(sql string) (string, error) {
	m := tableNameRe.FindStringSubmatch(sql)
	if m == nil {
		return "", parseErr(ErrNoTableName, "no CREATE TABLE header")
	}
	return m[1], nil
}

func extractFieldList(sql string) (string, error) {
	if m := fieldListTermRe.FindStringSubmatch(sql); m != nil {
		return m[1], nil
	}
	if m := fieldListUntermRe.FindStringSubmatch(sql); m != nil {
		return m[1], nil
	}
	return "", parseErr(ErrNoFieldList, "no parenthesized field list after CREATE TABLE")
}

func isConstraintClause(clause string) bool {
	upper := strings.ToUpper(clause)
	for _, prefix := range constraintPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// parseFieldClause parses a single column declaration. It returns nil when
// the clause does not look like a column at all.
func parseFieldClause(clause string) *core.FieldDef {
	m := fieldNameRe.FindStringSubmatch(clause)
	if m == nil {
		return nil
	}
	field := &core.FieldDef{Name: m[1], Nullable: true}
	spec := m[2]

	parseFieldType(field, spec)
	parseFieldConstraints(field, spec)
	return field
}

func parseFieldType(f *core.FieldDef, spec string) {
	if m := setEnumRe.FindStringSubmatch(spec); m != nil {
		f.Type = strings.ToUpper(m[1])
		f.EnumValues = splitQuotedValues(m[2])
		return
	}

	m := typeRe.FindStringSubmatch(spec)
	if m == nil {
		// Bare fallback: take the first token as the type name.
		f.Type = strings.ToUpper(strings.Fields(spec)[0])
		return
	}
	f.Type = strings.ToUpper(m[1])
	arg := m[2]
	if arg == "" {
		return
	}

	switch {
	case f.Type == "ENUM" || f.Type == "SET":
		f.EnumValues = splitQuotedValues(arg)
	case strings.Contains(arg, ","):
		prec, scale, ok := parsePrecisionScale(arg)
		if ok {
			f.Precision, f.Scale = prec, scale
		} else {
			f.RawSize = arg
		}
	default:
		if n, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil {
			f.Size = n
		} else {
			f.RawSize = arg
		}
	}
}

func parsePrecisionScale(arg string) (int, int, bool) {
	left, right, _ := strings.Cut(arg, ",")
	prec, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, false
	}
	scale, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, false
	}
	return prec, scale, true
}

func parseFieldConstraints(f *core.FieldDef, spec string) {
	upper := strings.ToUpper(spec)
	f.Nullable = !strings.Contains(upper, "NOT NULL")
	f.AutoIncrement = strings.Contains(upper, "AUTO_INCREMENT")

	m := defaultRe.FindStringSubmatch(spec)
	if m == nil {
		return
	}
	f.HasDefault = true
	value := m[1]
	switch {
	case strings.EqualFold(value, "NULL"):
		f.DefaultNull = true
	case len(value) >= 2 && (value[0] == '\'' || value[0] == '"'):
		f.Default = value[1 : len(value)-1]
	default:
		// Bare tokens such as CURRENT_TIMESTAMP are kept verbatim.
		f.Default = value
	}
}

func extractPrimaryKeys(sql string) []string {
	m := primaryRe.FindStringSubmatch(sql)
	if m == nil {
		return nil
	}
	var keys []string
	for _, part := range strings.Split(m[1], ",") {
		part = strings.Trim(strings.TrimSpace(part), "`\"'")
		if part != "" {
			keys = append(keys, part)
		}
	}
	return keys
}

func extractIndexes(sql string) []*core.Index {
	var indexes []*core.Index
	for _, m := range indexRe.FindAllStringSubmatch(sql, -1) {
		fields := make([]string, 0, 2)
		for _, part := range strings.Split(m[2], ",") {
			part = strings.Trim(strings.TrimSpace(part), "`\"'")
			if part != "" {
				fields = append(fields, part)
			}
		}
		indexes = append(indexes, &core.Index{Name: m[1], Fields: fields})
	}
	return indexes
}
