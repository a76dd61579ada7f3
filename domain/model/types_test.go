package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Encoding
	}{
		{name: "empty defaults to utf8", input: "", expected: EncodingUTF8},
		{name: "utf8", input: "utf8", expected: EncodingUTF8},
		{name: "utf-8", input: "utf-8", expected: EncodingUTF8},
		{name: "utf16le", input: "utf16le", expected: EncodingUTF16LE},
		{name: "utf-16le", input: "utf-16le", expected: EncodingUTF16LE},
		{name: "latin1", input: "latin1", expected: EncodingLatin1},
		{name: "iso-8859-1", input: "iso-8859-1", expected: EncodingLatin1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseEncoding(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("unknown encoding", func(t *testing.T) {
		t.Parallel()

		_, err := ParseEncoding("ebcdic")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownEncoding))
	})
}

func TestEncoding_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "utf8", EncodingUTF8.String())
	assert.Equal(t, "utf16le", EncodingUTF16LE.String())
	assert.Equal(t, "latin1", EncodingLatin1.String())
}

func TestParseDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Dialect
	}{
		{name: "empty defaults to sqlite", input: "", expected: DialectSQLite},
		{name: "sqlite", input: "sqlite", expected: DialectSQLite},
		{name: "sqlite3", input: "sqlite3", expected: DialectSQLite},
		{name: "mysql", input: "mysql", expected: DialectMySQL},
		{name: "mariadb maps to mysql", input: "mariadb", expected: DialectMySQL},
		{name: "postgres", input: "postgres", expected: DialectPostgreSQL},
		{name: "postgresql", input: "postgresql", expected: DialectPostgreSQL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDialect(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("unknown dialect", func(t *testing.T) {
		t.Parallel()

		_, err := ParseDialect("oracle")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownDialect))
	})
}

func TestDialect_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sqlite", DialectSQLite.String())
	assert.Equal(t, "mysql", DialectMySQL.String())
	assert.Equal(t, "postgresql", DialectPostgreSQL.String())
}

func TestColumnType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TEXT", ColumnTypeText.String())
	assert.Equal(t, "INTEGER", ColumnTypeInteger.String())
	assert.Equal(t, "REAL", ColumnTypeReal.String())
	assert.Equal(t, "TEXT", ColumnType(99).String())
}
