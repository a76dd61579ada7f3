package dumpsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/dumpsql/domain/model"
)

func TestTranslateStatement_MySQL(t *testing.T) {
	t.Parallel()

	t.Run("Auto increment rewritten", func(t *testing.T) {
		t.Parallel()

		out, changed := translateStatement(
			"CREATE TABLE t (id INTEGER PRIMARY KEY AUTO_INCREMENT)",
			model.DialectMySQL,
		)
		require.True(t, changed)
		assert.Equal(t, "CREATE TABLE t (id INTEGER PRIMARY KEY AUTOINCREMENT)", out)
	})

	t.Run("Table options stripped", func(t *testing.T) {
		t.Parallel()

		out, changed := translateStatement(
			"CREATE TABLE t (id INT) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci",
			model.DialectMySQL,
		)
		require.True(t, changed)
		assert.Equal(t, "CREATE TABLE t (id INT)", out)
	})

	t.Run("Backticks become double quotes", func(t *testing.T) {
		t.Parallel()

		out, changed := translateStatement(
			"INSERT INTO `users` (`id`) VALUES (1)",
			model.DialectMySQL,
		)
		require.True(t, changed)
		assert.Equal(t, `INSERT INTO "users" ("id") VALUES (1)`, out)
	})

	t.Run("Unsigned stripped", func(t *testing.T) {
		t.Parallel()

		out, changed := translateStatement(
			"CREATE TABLE t (n INT UNSIGNED NOT NULL)",
			model.DialectMySQL,
		)
		require.True(t, changed)
		assert.Equal(t, "CREATE TABLE t (n INT NOT NULL)", out)
	})

	t.Run("No applicable rule reports no change", func(t *testing.T) {
		t.Parallel()

		text := "INSERT INTO users VALUES (1)"
		out, changed := translateStatement(text, model.DialectMySQL)
		assert.False(t, changed)
		assert.Equal(t, text, out)
	})
}

func TestTranslateStatement_PostgreSQL(t *testing.T) {
	t.Parallel()

	t.Run("Serial variants become integer", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			in  string
			out string
		}{
			{in: "CREATE TABLE t (id SERIAL PRIMARY KEY)", out: "CREATE TABLE t (id INTEGER PRIMARY KEY)"},
			{in: "CREATE TABLE t (id BIGSERIAL)", out: "CREATE TABLE t (id INTEGER)"},
			{in: "CREATE TABLE t (id SMALLSERIAL)", out: "CREATE TABLE t (id INTEGER)"},
		}
		for _, tt := range tests {
			out, changed := translateStatement(tt.in, model.DialectPostgreSQL)
			require.True(t, changed, tt.in)
			assert.Equal(t, tt.out, out)
		}
	})

	t.Run("Double-quoted identifiers left unchanged", func(t *testing.T) {
		t.Parallel()

		text := `INSERT INTO "users" VALUES (1)`
		out, changed := translateStatement(text, model.DialectPostgreSQL)
		assert.False(t, changed)
		assert.Equal(t, text, out)
	})
}

func TestTranslateStatement_NativeDialect(t *testing.T) {
	t.Parallel()

	// Native dialect never translates; fallback is only for foreign
	// dialect tags.
	text := "CREATE TABLE t (id INTEGER PRIMARY KEY AUTO_INCREMENT)"
	out, changed := translateStatement(text, model.DialectSQLite)
	assert.False(t, changed)
	assert.Equal(t, text, out)
}
