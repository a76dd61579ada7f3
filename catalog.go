package dumpsql

import (
	"regexp"
	"strings"

	"github.com/nao1215/dumpsql/domain/model"
)

// tableConstraintPrefixes marks clauses in a CREATE TABLE body that
// declare table-level constraints rather than columns.
var tableConstraintPrefixes = []string{
	"PRIMARY KEY",
	"FOREIGN KEY",
	"UNIQUE",
	"CONSTRAINT",
	"CHECK",
	"KEY",
	"INDEX",
}

var (
	defaultValuePattern = regexp.MustCompile(`(?i)\bDEFAULT\s+('[^']*'|"[^"]*"|[^\s,]+)`)
	notNullPattern      = regexp.MustCompile(`(?i)\bNOT\s+NULL\b`)
	primaryKeyPattern   = regexp.MustCompile(`(?i)\bPRIMARY\s+KEY\b`)
	uniquePattern       = regexp.MustCompile(`(?i)\bUNIQUE\b`)
)

// extractCatalog derives per-table schema metadata from a classified
// statement sequence in a single forward pass. Tables referenced only
// by INSERT, never created in-script, are not cataloged: the extractor
// has no other source of schema truth.
func extractCatalog(statements []model.Statement) []model.TableInfo {
	tables := make([]model.TableInfo, 0)
	index := make(map[string]int)

	lookup := func(name string) *model.TableInfo {
		if i, ok := index[name]; ok {
			return &tables[i]
		}
		return nil
	}

	for _, stmt := range statements {
		switch stmt.Operation {
		case model.OperationCreateTable:
			if stmt.Table == "" {
				continue
			}
			info := model.TableInfo{Name: stmt.Table}
			info.Columns, info.Constraints = parseCreateTableBody(stmt.Text)
			if existing := lookup(stmt.Table); existing != nil {
				// Re-created table: later definition wins.
				*existing = info
				continue
			}
			index[stmt.Table] = len(tables)
			tables = append(tables, info)

		case model.OperationCreateIndex:
			if info := lookup(stmt.Table); info != nil {
				info.Indexes = append(info.Indexes, stmt.Text)
			}

		case model.OperationAlterTable:
			if info := lookup(stmt.Table); info != nil {
				info.Constraints = append(info.Constraints, stmt.Text)
			}

		case model.OperationInsert:
			if info := lookup(stmt.Table); info != nil {
				info.ApproximateRowCount++
			}
		}
	}
	return tables
}

// parseCreateTableBody splits the parenthesized definition list of a
// CREATE TABLE statement into column metadata and table-level
// constraint clauses.
func parseCreateTableBody(text string) ([]model.ColumnInfo, []string) {
	open := strings.Index(text, "(")
	closing := strings.LastIndex(text, ")")
	if open < 0 || closing <= open {
		return nil, nil
	}

	columns := make([]model.ColumnInfo, 0)
	constraints := make([]string, 0)

	for _, clause := range splitClauses(text[open+1 : closing]) {
		if isTableConstraint(clause) {
			constraints = append(constraints, clause)
			continue
		}
		if col, ok := parseColumnClause(clause); ok {
			columns = append(columns, col)
		}
	}
	return columns, constraints
}

// splitClauses splits a definition list on commas at parenthesis
// depth zero, so DECIMAL(10,2) and composite key lists stay intact.
func splitClauses(body string) []string {
	clauses := make([]string, 0)
	depth := 0
	start := 0

	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				if clause := strings.TrimSpace(body[start:i]); clause != "" {
					clauses = append(clauses, clause)
				}
				start = i + 1
			}
		}
	}
	if clause := strings.TrimSpace(body[start:]); clause != "" {
		clauses = append(clauses, clause)
	}
	return clauses
}

// isTableConstraint reports whether a clause declares a table-level
// constraint rather than a column.
func isTableConstraint(clause string) bool {
	upper := strings.ToUpper(clause)
	for _, prefix := range tableConstraintPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// parseColumnClause parses one column definition clause. The first
// token is the column name, the second its declared type; the rest of
// the clause is scanned for NOT NULL, PRIMARY KEY, UNIQUE and DEFAULT
// tokens.
func parseColumnClause(clause string) (model.ColumnInfo, bool) {
	fields := strings.Fields(clause)
	if len(fields) < 2 {
		return model.ColumnInfo{}, false
	}

	col := model.ColumnInfo{
		Name:         unquoteIdentifier(fields[0]),
		Type:         normalizeColumnType(fields[1]),
		IsPrimaryKey: primaryKeyPattern.MatchString(clause),
		IsUnique:     uniquePattern.MatchString(clause),
	}
	// Primary key columns are non-nullable regardless of an explicit
	// NOT NULL token.
	col.Nullable = !notNullPattern.MatchString(clause) && !col.IsPrimaryKey
	if m := defaultValuePattern.FindStringSubmatch(clause); len(m) > 1 {
		col.DefaultValue = m[1]
	}
	return col, true
}

// normalizeColumnType maps a declared type token onto the embedded
// store's type system via substring matching. Anything unrecognized
// falls back to TEXT.
func normalizeColumnType(declared string) model.ColumnType {
	upper := strings.ToUpper(declared)
	switch {
	case strings.Contains(upper, "INT"), strings.Contains(upper, "BOOL"),
		strings.Contains(upper, "SERIAL"):
		return model.ColumnTypeInteger
	case strings.Contains(upper, "DECIMAL"), strings.Contains(upper, "NUMERIC"),
		strings.Contains(upper, "REAL"), strings.Contains(upper, "FLOAT"),
		strings.Contains(upper, "DOUBLE"):
		return model.ColumnTypeReal
	default:
		return model.ColumnTypeText
	}
}

// unquoteIdentifier strips backtick, double-quote and bracket quoting
// from an identifier.
func unquoteIdentifier(ident string) string {
	return strings.Trim(ident, "`\"[]")
}
