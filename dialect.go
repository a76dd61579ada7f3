package dumpsql

import (
	"regexp"
	"strings"

	"github.com/nao1215/dumpsql/domain/model"
)

// MySQL rewrite rules: auto-increment keyword, storage-engine and
// charset/collation table options, backtick identifier quoting.
var (
	mysqlAutoIncrement = regexp.MustCompile(`(?i)\bAUTO_INCREMENT\b`)
	mysqlTableOptions  = regexp.MustCompile(`(?i)\s*(?:ENGINE|DEFAULT\s+CHARSET|CHARACTER\s+SET|COLLATE)\s*=\s*\w+`)
	mysqlUnsigned      = regexp.MustCompile(`(?i)\s+UNSIGNED\b`)
)

// PostgreSQL rewrite rules: the serial type family becomes a plain
// integer type. Identifier quoting is left unchanged, double quotes
// are already native.
var postgresSerial = regexp.MustCompile(`(?i)\b(?:BIG|SMALL)?SERIAL\b`)

// translateStatement rewrites source-dialect-specific syntax into the
// embedded store's native syntax. It is a narrow, best-effort patch
// invoked only after direct execution has failed, never a general
// transpiler. The second return value reports whether any rule
// changed the text; when false the caller must re-raise the original
// execution error instead of retrying.
func translateStatement(text string, dialect model.Dialect) (string, bool) {
	var translated string
	switch dialect {
	case model.DialectMySQL:
		translated = translateMySQL(text)
	case model.DialectPostgreSQL:
		translated = translatePostgreSQL(text)
	default:
		return text, false
	}
	return translated, translated != text
}

// translateMySQL applies the MySQL-to-SQLite rewrite rules.
func translateMySQL(text string) string {
	out := mysqlAutoIncrement.ReplaceAllString(text, "AUTOINCREMENT")
	out = mysqlTableOptions.ReplaceAllString(out, "")
	out = mysqlUnsigned.ReplaceAllString(out, "")
	out = strings.ReplaceAll(out, "`", `"`)
	return out
}

// translatePostgreSQL applies the PostgreSQL-to-SQLite rewrite rules.
func translatePostgreSQL(text string) string {
	return postgresSerial.ReplaceAllString(text, "INTEGER")
}
