package parser

import "strings"

// isQuote reports whether c opens a quoted literal. The same character
// closes it; mixing quote characters inside one literal is not supported.
func isQuote(c byte) bool {
	return c == '\'' || c == '"' || c == '`'
}

// splitClauses partitions the body of a CREATE TABLE on top-level commas.
// Commas inside parentheses or inside quoted literals do not split. A
// trailing non-empty buffer is emitted as the final clause; empty clauses
// from consecutive or trailing commas are left for the caller to drop.
func splitClauses(body string) []string {
	var parts []string
	var current []byte
	depth := 0
	inQuote := false
	var quoteChar byte

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case isQuote(c) && !inQuote:
			inQuote = true
			quoteChar = c
		case inQuote && c == quoteChar:
			inQuote = false
			quoteChar = 0
		case c == '(' && !inQuote:
			depth++
		case c == ')' && !inQuote:
			depth--
		case c == ',' && depth == 0 && !inQuote:
			parts = append(parts, string(current))
			current = current[:0]
			continue
		}
		current = append(current, c)
	}
	if len(trimSpaceBytes(current)) > 0 {
		parts = append(parts, string(current))
	}
	return parts
}

func trimSpaceBytes(b []byte) []byte {
	start := 0
	for start < len(b) && (b[start] == ' ' || b[start] == '\t' || b[start] == '\n' || b[start] == '\r') {
		start++
	}
	end := len(b)
	for end > start && (b[end-1] == ' ' || b[end-1] == '\t' || b[end-1] == '\n' || b[end-1] == '\r') {
		end--
	}
	return b[start:end]
}

// splitQuotedValues splits an ENUM/SET argument list on unquoted commas and
// strips the surrounding quote characters from each value. Only ' and " act
// as quotes here; backticks never quote enum members.
func splitQuotedValues(arg string) []string {
	var values []string
	var current []byte
	inQuote := false
	var quoteChar byte

	emit := func() {
		v := strings.Trim(string(trimSpaceBytes(current)), `'"`)
		if v != "" {
			values = append(values, v)
		}
		current = current[:0]
	}

	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch {
		case (c == '\'' || c == '"') && !inQuote:
			inQuote = true
			quoteChar = c
		case inQuote && c == quoteChar:
			inQuote = false
			quoteChar = 0
		case c == ',' && !inQuote:
			emit()
			continue
		}
		current = append(current, c)
	}
	emit()
	return values
}
