package model

// Encoding selects the text encoding of a source script.
type Encoding int

const (
	// EncodingUTF8 decodes the source as UTF-8 (default)
	EncodingUTF8 Encoding = iota
	// EncodingUTF16LE decodes the source as little-endian UTF-16
	EncodingUTF16LE
	// EncodingLatin1 decodes the source as ISO 8859-1
	EncodingLatin1
)

// String returns the string representation of Encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingUTF16LE:
		return "utf16le"
	case EncodingLatin1:
		return "latin1"
	default:
		return "utf8"
	}
}

// ParseEncoding converts an encoding name into an Encoding.
// Recognized names: utf8, utf-8, utf16le, utf-16le, latin1, iso-8859-1.
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "", "utf8", "utf-8":
		return EncodingUTF8, nil
	case "utf16le", "utf-16le":
		return EncodingUTF16LE, nil
	case "latin1", "iso-8859-1":
		return EncodingLatin1, nil
	default:
		return EncodingUTF8, ErrUnknownEncoding
	}
}

// Dialect tags the syntax variant of the originating relational system.
type Dialect int

const (
	// DialectSQLite is the target store's native dialect (default)
	DialectSQLite Dialect = iota
	// DialectMySQL tags MySQL-flavored source scripts
	DialectMySQL
	// DialectPostgreSQL tags PostgreSQL-flavored source scripts
	DialectPostgreSQL
)

// String returns the string representation of Dialect.
func (d Dialect) String() string {
	switch d {
	case DialectMySQL:
		return "mysql"
	case DialectPostgreSQL:
		return "postgresql"
	default:
		return "sqlite"
	}
}

// ParseDialect converts a dialect name into a Dialect.
// Recognized names: sqlite, mysql, postgres, postgresql.
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case "", "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "mysql", "mariadb":
		return DialectMySQL, nil
	case "postgres", "postgresql":
		return DialectPostgreSQL, nil
	default:
		return DialectSQLite, ErrUnknownDialect
	}
}
