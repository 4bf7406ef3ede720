// Package dialect rewrites generic CREATE TABLE / INSERT text into the
// syntax accepted by each supported database family. Adapters are stateless
// pattern substitutions over already-mostly-valid SQL: absence of a pattern
// is a no-op, never an error.
package dialect

import (
	"fmt"

	"sqlbridge/internal/core"
)

// Meta is the static per-dialect metadata fixed at construction.
type Meta struct {
	// TypeMapping documents how generic types translate for this dialect.
	TypeMapping map[string]string
	// SyntaxRules holds quoting, auto-increment, and timestamp tokens.
	SyntaxRules map[string]string
	// ConnectionTemplate is a documentation-only connection string.
	ConnectionTemplate string
	// Header holds session/pragma statements placed before the schema.
	Header string
	// Footer holds statements placed after the inserts.
	Footer string
}

// Adapter rewrites generic SQL text for one dialect. Implementations never
// fail; malformed input passes through with whatever substitutions apply.
type Adapter interface {
	Name() core.Dialect
	AdaptCreateTable(sql string) string
	AdaptInsert(sql string) string
	Meta() Meta
}

var registry = map[core.Dialect]func() Adapter{}

// Register adds a constructor for the given dialect. Called from each
// adapter's init.
func Register(d core.Dialect, ctor func() Adapter) {
	registry[d] = ctor
}

// Get returns the adapter for the given dialect.
func Get(d core.Dialect) (Adapter, error) {
	ctor, ok := registry[d]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect: %s", d)
	}
	return ctor(), nil
}

// All returns one adapter per supported dialect, in canonical order.
func All() []Adapter {
	adapters := make([]Adapter, 0, len(registry))
	for _, d := range core.SupportedDialects() {
		if ctor, ok := registry[d]; ok {
			adapters = append(adapters, ctor())
		}
	}
	return adapters
}
