package dumpsql

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/nao1215/dumpsql/domain/model"
)

// Type aliases re-exporting the domain model for easier use.
type (
	// Statement is one classified unit of a SQL script
	Statement = model.Statement
	// StatementKind is the coarse category of a statement
	StatementKind = model.StatementKind
	// Operation is the fine-grained operation tag of a statement
	Operation = model.Operation
	// TableInfo is derived per-table schema metadata
	TableInfo = model.TableInfo
	// ColumnInfo is derived per-column schema metadata
	ColumnInfo = model.ColumnInfo
	// Encoding selects the source text encoding
	Encoding = model.Encoding
	// Dialect tags the syntax variant of the source system
	Dialect = model.Dialect
)

// Re-export constants for easier use.
const (
	// KindDDL represents a schema-definition statement
	KindDDL = model.KindDDL
	// KindDML represents a data-manipulation statement
	KindDML = model.KindDML
	// KindDCL represents an access-control statement
	KindDCL = model.KindDCL
	// KindOther represents an unclassified statement
	KindOther = model.KindOther

	// EncodingUTF8 decodes sources as UTF-8
	EncodingUTF8 = model.EncodingUTF8
	// EncodingUTF16LE decodes sources as little-endian UTF-16
	EncodingUTF16LE = model.EncodingUTF16LE
	// EncodingLatin1 decodes sources as ISO 8859-1
	EncodingLatin1 = model.EncodingLatin1

	// DialectSQLite is the embedded store's native dialect
	DialectSQLite = model.DialectSQLite
	// DialectMySQL tags MySQL-flavored sources
	DialectMySQL = model.DialectMySQL
	// DialectPostgreSQL tags PostgreSQL-flavored sources
	DialectPostgreSQL = model.DialectPostgreSQL
)

// ParseResult is the structured view of one parsed script. It is
// produced once per parse call and read-only thereafter.
type ParseResult struct {
	// Statements are the classified statements in source order.
	Statements []Statement
	// Tables are the distinct table names in order of first appearance.
	Tables []string
	// Errors holds fatal analysis problems. Parsing itself never
	// fails on statement content; the slice is populated by callers
	// layering validation on top.
	Errors []string
	// Warnings holds non-fatal analysis notes.
	Warnings []string
}

// Parse reads a SQL script from r, decodes it under the configured
// encoding, splits it into statements and classifies each one. The
// result also lists the distinct tables the script touches. Parsing is
// a pure analysis pass; nothing is executed.
//
// Example:
//
//	result, err := dumpsql.Parse(ctx, file, dumpsql.NewConfig())
//	if err != nil {
//		return err
//	}
//	for _, stmt := range result.Statements {
//		fmt.Printf("%s %s (line %d)\n", stmt.Kind, stmt.Table, stmt.LineNumber)
//	}
func Parse(ctx context.Context, r io.Reader, cfg Config) (*ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := readSource(r, cfg.Encoding)
	if err != nil {
		return nil, err
	}
	return parseText(text, cfg), nil
}

// ParseBytes parses a SQL script held in memory.
func ParseBytes(ctx context.Context, data []byte, cfg Config) (*ParseResult, error) {
	return Parse(ctx, bytes.NewReader(data), cfg)
}

// ParseFile parses a SQL script file. Compressed dumps (.gz, .bz2,
// .xz, .zst) are decompressed transparently. An unreadable source is
// fatal and returned unchanged; there is no retry.
func ParseFile(ctx context.Context, path string, cfg Config) (*ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := readSourceFile(path, cfg.Encoding)
	if err != nil {
		return nil, err
	}
	return parseText(text, cfg), nil
}

// parseText runs the splitter and classifier over decoded script text.
func parseText(text string, cfg Config) *ParseResult {
	cfg = cfg.normalize()

	statements := classifyStatements(splitStatements(text, cfg.Delimiter))
	result := &ParseResult{
		Statements: statements,
		Tables:     distinctTables(statements),
	}
	if len(statements) == 0 {
		result.Warnings = append(result.Warnings, "script contains no statements")
	}
	if len(cfg.TableFilter) > 0 {
		// Table filtering cannot apply to statements with no recognized
		// target table; they pass the allow-list untouched.
		if n := countKind(statements, model.KindOther); n > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%d unclassified statements bypass the table filter", n))
		}
	}
	return result
}

// countKind counts statements of one kind.
func countKind(statements []model.Statement, kind model.StatementKind) int {
	n := 0
	for _, stmt := range statements {
		if stmt.Kind == kind {
			n++
		}
	}
	return n
}

// Analyze parses a script and derives its table catalog: columns,
// indexes, constraints and approximate row counts per table. It is a
// read-only pass built on Parse; nothing is executed.
func Analyze(ctx context.Context, r io.Reader, cfg Config) ([]TableInfo, error) {
	result, err := Parse(ctx, r, cfg)
	if err != nil {
		return nil, err
	}
	return extractCatalog(result.Statements), nil
}

// AnalyzeFile derives the table catalog of a script file.
func AnalyzeFile(ctx context.Context, path string, cfg Config) ([]TableInfo, error) {
	result, err := ParseFile(ctx, path, cfg)
	if err != nil {
		return nil, err
	}
	return extractCatalog(result.Statements), nil
}

// Filter applies the configuration's filtering rules (schema-only,
// data-only, table allow/deny lists, per-operation toggles) to a
// statement list, preserving source order.
func Filter(statements []Statement, cfg Config) []Statement {
	return filterStatements(statements, cfg)
}

// Execute runs a previously filtered statement list against the
// embedded store at storePath in size-bounded transactional batches.
// The store is opened once and closed on every exit path.
//
// On a statement failure without skip-errors mode, the containing
// batch rolls back entirely, execution stops, and the partial result
// is returned together with a non-nil error. With skip-errors mode the
// failure is recorded in Errors and Warnings and the rest of the batch
// still runs and commits.
//
// Cancel ctx to interrupt a long run; the check happens at the top of
// every statement iteration and rolls back only the in-flight batch.
func Execute(ctx context.Context, statements []Statement, storePath string, cfg Config, progress ProgressFunc) (*ExecutionResult, error) {
	e := executor{cfg: cfg.normalize(), progress: progress}
	return e.execute(ctx, statements, storePath)
}

// Ingest parses, filters and executes a script in one call.
//
// Example:
//
//	cfg := dumpsql.NewConfig().WithDialect(dumpsql.DialectMySQL).WithSkipErrors(true)
//	result, err := dumpsql.IngestFile(ctx, "dump.sql.gz", "app.db", cfg, nil)
func Ingest(ctx context.Context, r io.Reader, storePath string, cfg Config, progress ProgressFunc) (*ExecutionResult, error) {
	parsed, err := Parse(ctx, r, cfg)
	if err != nil {
		return nil, err
	}
	return Execute(ctx, filterStatements(parsed.Statements, cfg), storePath, cfg, progress)
}

// IngestFile parses, filters and executes a script file in one call.
func IngestFile(ctx context.Context, path, storePath string, cfg Config, progress ProgressFunc) (*ExecutionResult, error) {
	parsed, err := ParseFile(ctx, path, cfg)
	if err != nil {
		return nil, err
	}
	return Execute(ctx, filterStatements(parsed.Statements, cfg), storePath, cfg, progress)
}

// distinctTables lists table names in order of first appearance.
func distinctTables(statements []Statement) []string {
	seen := make(map[string]struct{})
	tables := make([]string, 0)
	for _, stmt := range statements {
		if stmt.Table == "" {
			continue
		}
		if _, ok := seen[stmt.Table]; ok {
			continue
		}
		seen[stmt.Table] = struct{}{}
		tables = append(tables, stmt.Table)
	}
	return tables
}
