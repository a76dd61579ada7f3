package model

// ColumnType represents the normalized SQL column type.
type ColumnType int

const (
	// ColumnTypeText represents TEXT column type
	ColumnTypeText ColumnType = iota
	// ColumnTypeInteger represents INTEGER column type
	ColumnTypeInteger
	// ColumnTypeReal represents REAL column type
	ColumnTypeReal
)

const (
	sqlTypeText    = "TEXT"
	sqlTypeInteger = "INTEGER"
	sqlTypeReal    = "REAL"
)

// String returns the SQL column type string.
func (ct ColumnType) String() string {
	switch ct {
	case ColumnTypeInteger:
		return sqlTypeInteger
	case ColumnTypeReal:
		return sqlTypeReal
	default:
		return sqlTypeText
	}
}

// ColumnInfo describes one column declared in a CREATE TABLE statement.
type ColumnInfo struct {
	// Name is the bare column identifier with quoting stripped.
	Name string
	// Type is the declared type normalized to INTEGER, TEXT or REAL.
	Type ColumnType
	// Nullable is false when the column clause carries NOT NULL.
	Nullable bool
	// DefaultValue is the token following DEFAULT, empty when absent.
	DefaultValue string
	// IsPrimaryKey is true when the clause carries PRIMARY KEY.
	IsPrimaryKey bool
	// IsUnique is true when the clause carries UNIQUE.
	IsUnique bool
}

// TableInfo is the derived schema metadata for one table. It is built
// incrementally during catalog extraction.
type TableInfo struct {
	// Name is the table name.
	Name string
	// Columns are the declared columns in declaration order.
	Columns []ColumnInfo
	// Indexes holds the raw CREATE INDEX statements targeting the table.
	Indexes []string
	// Constraints holds table-level constraint clauses and ALTER TABLE
	// statements targeting the table.
	Constraints []string
	// ApproximateRowCount counts observed INSERT statements targeting
	// the table. It is a heuristic count of statements, not rows.
	ApproximateRowCount int
}

// Column returns the column with the given name, or nil when no such
// column was declared.
func (t *TableInfo) Column(name string) *ColumnInfo {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// Equal compares two TableInfo values including column order.
func (t *TableInfo) Equal(t2 *TableInfo) bool {
	if t.Name != t2.Name || t.ApproximateRowCount != t2.ApproximateRowCount {
		return false
	}
	if len(t.Columns) != len(t2.Columns) ||
		len(t.Indexes) != len(t2.Indexes) ||
		len(t.Constraints) != len(t2.Constraints) {
		return false
	}
	for i, c := range t.Columns {
		if c != t2.Columns[i] {
			return false
		}
	}
	for i, idx := range t.Indexes {
		if idx != t2.Indexes[i] {
			return false
		}
	}
	for i, cons := range t.Constraints {
		if cons != t2.Constraints[i] {
			return false
		}
	}
	return true
}
