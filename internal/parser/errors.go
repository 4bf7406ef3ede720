package parser

import "fmt"

// ErrorKind classifies fatal parse failures.
type ErrorKind string

const (
	// ErrNoTableName means no usable CREATE TABLE header was found.
	ErrNoTableName ErrorKind = "no table name"
	// ErrNoFieldList means no parenthesized field list followed the header.
	ErrNoFieldList ErrorKind = "no field list"
	// ErrUnparsedClause is raised in strict mode when a body clause could
	// not be understood. Lenient mode skips the clause instead.
	ErrUnparsedClause ErrorKind = "unparsed clause"
	// ErrUnknownPrimaryKey is raised in strict mode when a PRIMARY KEY
	// references a field that was not declared.
	ErrUnknownPrimaryKey ErrorKind = "unknown primary key field"
)

// ParseError is returned for fatal failures of Parse. Anything not fatal
// degrades to a best-effort value instead.
type ParseError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("parse: %s", e.Kind)
	}
	return fmt.Sprintf("parse: %s: %s", e.Kind, e.Detail)
}

// Is allows errors.Is matching against a bare *ParseError with the same Kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func parseErr(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
