package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlbridge/internal/core"
	"sqlbridge/internal/parser"
)

func TestCreateTable(t *testing.T) {
	s := &core.Schema{
		TableName: "products",
		Fields: []*core.FieldDef{
			{Name: "id", Type: "INT", Nullable: false, AutoIncrement: true},
			{Name: "name", Type: "VARCHAR", Size: 50, Nullable: false},
			{Name: "price", Type: "DECIMAL", Precision: 10, Scale: 2, Nullable: true},
			{Name: "active", Type: "TINYINT", Size: 1, Nullable: true, HasDefault: true, Default: "1"},
		},
		PrimaryKeys: []string{"id"},
		Indexes:     []*core.Index{{Name: "idx_name", Fields: []string{"name"}}},
	}

	sql := CreateTable(s)
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS `products` (")
	assert.Contains(t, sql, "`id` INT NOT NULL AUTO_INCREMENT")
	assert.Contains(t, sql, "`name` VARCHAR(50) NOT NULL")
	assert.Contains(t, sql, "`price` DECIMAL(10,2)")
	assert.Contains(t, sql, "`active` TINYINT(1) DEFAULT 1")
	assert.Contains(t, sql, "PRIMARY KEY (`id`)")
	assert.Contains(t, sql, "KEY `idx_name` (`name`)")
}

func TestCreateTableDefaults(t *testing.T) {
	s := &core.Schema{
		TableName: "t",
		Fields: []*core.FieldDef{
			{Name: "a", Type: "VARCHAR", Size: 10, Nullable: true, HasDefault: true, Default: "it's"},
			{Name: "b", Type: "INT", Nullable: true, HasDefault: true, DefaultNull: true},
			{Name: "c", Type: "TIMESTAMP", Nullable: true, HasDefault: true, Default: "CURRENT_TIMESTAMP"},
		},
	}
	sql := CreateTable(s)
	assert.Contains(t, sql, "DEFAULT 'it''s'")
	assert.Contains(t, sql, "`b` INT DEFAULT NULL")
	assert.Contains(t, sql, "DEFAULT CURRENT_TIMESTAMP")
}

// Parsing a statement and rendering it back must preserve the structure the
// parser extracted.
func TestParseRenderRoundTrip(t *testing.T) {
	const src = "CREATE TABLE t (id INT NOT NULL AUTO_INCREMENT, status ENUM('on','off') DEFAULT 'on', PRIMARY KEY (id));"
	schema, err := parser.NewParser().Parse(src)
	require.NoError(t, err)

	rendered := CreateTable(schema)
	reparsed, err := parser.NewStrictParser().Parse(rendered)
	require.NoError(t, err)

	assert.Equal(t, schema.TableName, reparsed.TableName)
	assert.Equal(t, schema.FieldNames(), reparsed.FieldNames())
	assert.Equal(t, schema.PrimaryKeys, reparsed.PrimaryKeys)
	assert.Equal(t, []string{"on", "off"}, reparsed.Field("status").EnumValues)
}

func TestInsert(t *testing.T) {
	s := &core.Schema{
		TableName: "t",
		Fields: []*core.FieldDef{
			{Name: "id", Type: "INT"},
			{Name: "name", Type: "VARCHAR", Size: 50},
			{Name: "price", Type: "DECIMAL", Precision: 10, Scale: 2},
			{Name: "note", Type: "TEXT"},
		},
	}
	rows := [][]any{
		{int64(1), "it's fine", 12.5, nil},
	}
	sql := Insert(s, rows)
	assert.Contains(t, sql, "INSERT INTO `t` (`id`, `name`, `price`, `note`) VALUES")
	assert.Contains(t, sql, "(1, 'it''s fine', 12.50, NULL);")
}

func TestInsertEmptyRows(t *testing.T) {
	assert.Empty(t, Insert(&core.Schema{TableName: "t"}, nil))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name  string
		field *core.FieldDef
		value any
		want  string
	}{
		{"nil", nil, nil, "NULL"},
		{"int", nil, int64(7), "7"},
		{"bool true", nil, true, "1"},
		{"bool false", nil, false, "0"},
		{"string escaped", nil, "o'clock", "'o''clock'"},
		{"float plain", nil, 1.25, "1.25"},
		{"float scaled", &core.FieldDef{Precision: 10, Scale: 2}, 1.2, "1.20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Literal(tt.field, tt.value))
		})
	}
}
