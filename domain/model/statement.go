// Package model provides the domain model for dumpsql.
package model

// StatementKind is the coarse category of a SQL statement.
type StatementKind int

const (
	// KindOther represents a statement that matched no known keyword prefix
	KindOther StatementKind = iota
	// KindDDL represents a schema-definition statement
	KindDDL
	// KindDML represents a data-manipulation statement
	KindDML
	// KindDCL represents an access-control statement
	KindDCL
)

// String returns the string representation of StatementKind.
func (k StatementKind) String() string {
	switch k {
	case KindDDL:
		return "DDL"
	case KindDML:
		return "DML"
	case KindDCL:
		return "DCL"
	default:
		return "OTHER"
	}
}

// Operation is the fine-grained tag of a SQL statement.
type Operation string

const (
	// OperationCreateTable tags CREATE TABLE statements
	OperationCreateTable Operation = "CREATE_TABLE"
	// OperationDropTable tags DROP TABLE statements
	OperationDropTable Operation = "DROP_TABLE"
	// OperationAlterTable tags ALTER TABLE statements
	OperationAlterTable Operation = "ALTER_TABLE"
	// OperationInsert tags INSERT INTO statements
	OperationInsert Operation = "INSERT"
	// OperationUpdate tags UPDATE statements
	OperationUpdate Operation = "UPDATE"
	// OperationDelete tags DELETE FROM statements
	OperationDelete Operation = "DELETE"
	// OperationCreateIndex tags CREATE [UNIQUE] INDEX statements
	OperationCreateIndex Operation = "CREATE_INDEX"
	// OperationGrant tags GRANT statements
	OperationGrant Operation = "GRANT"
	// OperationRevoke tags REVOKE statements
	OperationRevoke Operation = "REVOKE"
	// OperationNone tags statements with no recognized operation
	OperationNone Operation = ""
)

// Statement is one delimiter-separated unit of a SQL script.
// It is immutable once produced by the classifier.
type Statement struct {
	// Kind is the coarse statement category.
	Kind StatementKind
	// Text is the trimmed statement text without the delimiter.
	Text string
	// Table is the target table name. It is populated only when a
	// recognizable keyword+identifier pattern matched; empty is valid.
	Table string
	// Operation is the fine-grained operation tag, if any.
	Operation Operation
	// LineNumber is the 1-based line on which the statement starts
	// in the decoded source text.
	LineNumber int
}

// Equal compares two statements field by field.
func (s Statement) Equal(s2 Statement) bool {
	return s == s2
}
