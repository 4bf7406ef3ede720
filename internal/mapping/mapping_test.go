package mapping

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlbridge/internal/core"
)

func productSchema() *core.Schema {
	return &core.Schema{
		TableName: "products",
		Fields: []*core.FieldDef{
			{Name: "id", Type: "INT", Nullable: false, AutoIncrement: true},
			{Name: "name", Type: "VARCHAR", Size: 10, Nullable: false},
			{Name: "price", Type: "DECIMAL", Precision: 10, Scale: 2, Nullable: true},
			{Name: "active", Type: "TINYINT", Size: 1, Nullable: true},
			{Name: "status", Type: "ENUM", EnumValues: []string{"new", "used"}, Nullable: true},
		},
		PrimaryKeys: []string{"id"},
	}
}

func TestMatchColumnsExact(t *testing.T) {
	result := MatchColumns(productSchema(), []string{"id", "Name", "PRICE"})
	require.Len(t, result.Matches, 3)
	assert.Equal(t, "name", result.Matches[1].Field)
	assert.Equal(t, 1, result.Matches[1].Index)
}

func TestMatchColumnsNormalized(t *testing.T) {
	result := MatchColumns(productSchema(), []string{"Product Name", "unit_price"})
	fields := map[string]int{}
	for _, m := range result.Matches {
		fields[m.Field] = m.Index
	}
	// "Product Name" matches the "name" alias; "unit_price" contains "price".
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")
}

func TestMatchColumnsMissingRequired(t *testing.T) {
	result := MatchColumns(productSchema(), []string{"price"})
	// id is auto-increment so it is not reported; name is.
	assert.Equal(t, []string{"name"}, result.MissingRequired)
}

func TestCleanValue(t *testing.T) {
	schema := productSchema()
	tests := []struct {
		name    string
		field   string
		raw     string
		want    any
		wantErr bool
	}{
		{"int", "id", "42", int64(42), false},
		{"int with excel decimal", "id", "42.0", int64(42), false},
		{"bad int", "id", "abc", nil, true},
		{"string trimmed", "name", "  hammer  ", "hammer", false},
		{"string truncated to size", "name", "a very long product name", "a very lon", false},
		{"string truncated multibyte", "name", "pêssego maduro", "pêssego ma", false},
		{"decimal", "price", "12.50", 12.5, false},
		{"decimal with comma", "price", "12,50", 12.5, false},
		{"bool true", "active", "yes", true, false},
		{"bool numeric", "active", "1", true, false},
		{"bad bool", "active", "maybe", nil, true},
		{"enum match", "status", "NEW", "new", false},
		{"enum invalid", "status", "broken", nil, true},
		{"empty nullable", "price", "", nil, false},
		{"nan marker", "price", "NaN", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := schema.Field(tt.field)
			require.NotNil(t, f)
			got, err := CleanValue(f, tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	f := &core.FieldDef{Name: "name", Type: "VARCHAR", Size: 5}
	got := Truncate(f, "maçã verde")
	assert.Equal(t, "maçã ", got)
	assert.True(t, utf8.ValidString(got))
}

func TestCleanValueEmptyRequired(t *testing.T) {
	f := &core.FieldDef{Name: "name", Type: "VARCHAR", Size: 10, Nullable: false}
	_, err := CleanValue(f, "   ")
	require.Error(t, err)
}

func TestCleanRow(t *testing.T) {
	schema := productSchema()
	result := MatchColumns(schema, []string{"name", "price", "active"})

	values, errs := CleanRow(schema, result.Matches, []string{"hammer", "9.99", "no"})
	require.Empty(t, errs)
	require.Len(t, values, len(schema.Fields))

	assert.Nil(t, values[0]) // id unmatched
	assert.Equal(t, "hammer", values[1])
	assert.Equal(t, 9.99, values[2])
	assert.Equal(t, false, values[3])
	assert.Nil(t, values[4]) // status unmatched
}

func TestCleanRowCollectsErrors(t *testing.T) {
	schema := productSchema()
	result := MatchColumns(schema, []string{"name", "price"})

	values, errs := CleanRow(schema, result.Matches, []string{"ok", "not-a-number"})
	require.Len(t, errs, 1)
	assert.Equal(t, "ok", values[1])
	assert.Nil(t, values[2])
}
