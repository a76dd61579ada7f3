package dumpsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/dumpsql/domain/model"
)

// classify is a test helper turning raw statement text into classified
// statements.
func classify(t *testing.T, texts ...string) []model.Statement {
	t.Helper()

	fragments := make([]fragment, 0, len(texts))
	for i, text := range texts {
		fragments = append(fragments, fragment{text: text, lineNumber: i + 1})
	}
	return classifyStatements(fragments)
}

func TestExtractCatalog(t *testing.T) {
	t.Parallel()

	t.Run("Columns from create table", func(t *testing.T) {
		t.Parallel()

		tables := extractCatalog(classify(t,
			"CREATE TABLE users (id INT PRIMARY KEY, name TEXT NOT NULL)",
		))
		require.Len(t, tables, 1)

		users := tables[0]
		assert.Equal(t, "users", users.Name)
		require.Len(t, users.Columns, 2)

		id := users.Columns[0]
		assert.Equal(t, "id", id.Name)
		assert.Equal(t, model.ColumnTypeInteger, id.Type)
		assert.True(t, id.IsPrimaryKey)
		assert.False(t, id.Nullable, "primary key columns are non-nullable by default")

		name := users.Columns[1]
		assert.Equal(t, "name", name.Name)
		assert.Equal(t, model.ColumnTypeText, name.Type)
		assert.False(t, name.Nullable)
		assert.False(t, name.IsPrimaryKey)
	})

	t.Run("Type normalization", func(t *testing.T) {
		t.Parallel()

		tables := extractCatalog(classify(t,
			`CREATE TABLE demo (
				a BIGINT,
				b VARCHAR(255),
				c DECIMAL(10,2),
				d NUMERIC,
				e BOOLEAN,
				f TINYINT(1),
				g DOUBLE,
				h BLOB
			)`,
		))
		require.Len(t, tables, 1)
		require.Len(t, tables[0].Columns, 8)

		expected := []model.ColumnType{
			model.ColumnTypeInteger, // BIGINT
			model.ColumnTypeText,    // VARCHAR
			model.ColumnTypeReal,    // DECIMAL
			model.ColumnTypeReal,    // NUMERIC
			model.ColumnTypeInteger, // BOOLEAN
			model.ColumnTypeInteger, // TINYINT
			model.ColumnTypeReal,    // DOUBLE
			model.ColumnTypeText,    // BLOB falls back to TEXT
		}
		for i, col := range tables[0].Columns {
			assert.Equal(t, expected[i], col.Type, "column %s", col.Name)
		}
	})

	t.Run("Default value and unique", func(t *testing.T) {
		t.Parallel()

		tables := extractCatalog(classify(t,
			"CREATE TABLE t (status TEXT DEFAULT 'active', email TEXT UNIQUE)",
		))
		require.Len(t, tables, 1)
		require.Len(t, tables[0].Columns, 2)

		status := tables[0].Columns[0]
		assert.Equal(t, "'active'", status.DefaultValue)
		assert.True(t, status.Nullable)

		email := tables[0].Columns[1]
		assert.True(t, email.IsUnique)
		assert.Empty(t, email.DefaultValue)
	})

	t.Run("Table-level constraints", func(t *testing.T) {
		t.Parallel()

		tables := extractCatalog(classify(t,
			`CREATE TABLE t (
				a INT,
				b INT,
				PRIMARY KEY (a, b),
				FOREIGN KEY (b) REFERENCES other(id)
			)`,
		))
		require.Len(t, tables, 1)
		assert.Len(t, tables[0].Columns, 2)
		assert.Len(t, tables[0].Constraints, 2)
	})

	t.Run("Indexes attached via ON clause", func(t *testing.T) {
		t.Parallel()

		stmt := "CREATE INDEX idx_users_name ON users (name)"
		tables := extractCatalog(classify(t,
			"CREATE TABLE users (id INT)",
			stmt,
		))
		require.Len(t, tables, 1)
		require.Len(t, tables[0].Indexes, 1)
		assert.Equal(t, stmt, tables[0].Indexes[0])
	})

	t.Run("Alter table recorded as constraint", func(t *testing.T) {
		t.Parallel()

		tables := extractCatalog(classify(t,
			"CREATE TABLE orders (id INT)",
			"ALTER TABLE orders ADD CONSTRAINT u UNIQUE (id)",
		))
		require.Len(t, tables, 1)
		require.Len(t, tables[0].Constraints, 1)
	})

	t.Run("Approximate row count per insert statement", func(t *testing.T) {
		t.Parallel()

		tables := extractCatalog(classify(t,
			"CREATE TABLE users (id INT)",
			"INSERT INTO users VALUES (1)",
			"INSERT INTO users VALUES (2), (3)",
		))
		require.Len(t, tables, 1)
		// Counts statements, not rows.
		assert.Equal(t, 2, tables[0].ApproximateRowCount)
	})

	t.Run("Insert-only tables not cataloged", func(t *testing.T) {
		t.Parallel()

		tables := extractCatalog(classify(t,
			"INSERT INTO ghost VALUES (1)",
		))
		assert.Empty(t, tables)
	})

	t.Run("Index on unknown table ignored", func(t *testing.T) {
		t.Parallel()

		tables := extractCatalog(classify(t,
			"CREATE INDEX idx ON ghost (id)",
		))
		assert.Empty(t, tables)
	})

	t.Run("Order of first appearance preserved", func(t *testing.T) {
		t.Parallel()

		tables := extractCatalog(classify(t,
			"CREATE TABLE b (id INT)",
			"CREATE TABLE a (id INT)",
		))
		require.Len(t, tables, 2)
		assert.Equal(t, "b", tables[0].Name)
		assert.Equal(t, "a", tables[1].Name)
	})

	t.Run("Re-created table keeps later definition", func(t *testing.T) {
		t.Parallel()

		tables := extractCatalog(classify(t,
			"CREATE TABLE t (a INT)",
			"CREATE TABLE t (a INT, b TEXT)",
		))
		require.Len(t, tables, 1)
		assert.Len(t, tables[0].Columns, 2)
	})
}

func TestParseCreateTableBody(t *testing.T) {
	t.Parallel()

	t.Run("No parentheses", func(t *testing.T) {
		t.Parallel()

		columns, constraints := parseCreateTableBody("CREATE TABLE broken")
		assert.Nil(t, columns)
		assert.Nil(t, constraints)
	})

	t.Run("Nested parentheses stay intact", func(t *testing.T) {
		t.Parallel()

		columns, _ := parseCreateTableBody("CREATE TABLE t (price DECIMAL(10,2) NOT NULL)")
		require.Len(t, columns, 1)
		assert.Equal(t, "price", columns[0].Name)
		assert.Equal(t, model.ColumnTypeReal, columns[0].Type)
		assert.False(t, columns[0].Nullable)
	})

	t.Run("Quoted column names", func(t *testing.T) {
		t.Parallel()

		columns, _ := parseCreateTableBody("CREATE TABLE t (`user id` INT, \"name\" TEXT)")
		require.Len(t, columns, 2)
		assert.Equal(t, "user", columns[0].Name) // quoted names with spaces degrade to the first token
		assert.Equal(t, "name", columns[1].Name)
	})
}
