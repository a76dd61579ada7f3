// Package dumpsql ingests SQL dump scripts from heterogeneous
// relational dialects into an embedded SQLite database.
//
// dumpsql converts raw script text into a structured, inspectable
// statement list and table catalog, then executes a filtered,
// dialect-normalized subset against a local SQLite file under
// transactional batching with partial-failure control and progress
// reporting.
//
// # Features
//
//   - Statement splitting with line-number tracking and a configurable delimiter
//   - Heuristic statement classification (DDL/DML/DCL, operation tag, target table)
//   - Read-only catalog extraction: columns, indexes, constraints, approximate row counts
//   - Filtering by schema/data, table allow/deny lists and per-operation toggles
//   - Best-effort MySQL and PostgreSQL dialect translation as an execution fallback
//   - Batched transactional execution with skip-errors fault isolation
//   - UTF-8, UTF-16LE and Latin-1 sources; gzip, bzip2, xz and zstd compressed dumps
//
// # Basic Usage
//
// Analyze a dump without touching any database:
//
//	result, err := dumpsql.ParseFile(ctx, "dump.sql", dumpsql.NewConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Tables)
//
// Import a dump into a SQLite file:
//
//	cfg := dumpsql.NewConfig().
//	    WithDialect(dumpsql.DialectMySQL).
//	    WithSkipErrors(true).
//	    WithExcludeTables("audit_log")
//
//	execResult, err := dumpsql.IngestFile(ctx, "dump.sql.gz", "app.db", cfg, func(ev dumpsql.ProgressEvent) {
//	    fmt.Printf("\r%.0f%%", ev.PercentComplete)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(execResult.TablesCreated)
//
// # Parsing model
//
// The parser is statement-shape heuristic, not a validating SQL
// grammar. Statements are split on the literal delimiter, so a
// delimiter character inside a quoted string literal incorrectly
// splits the statement; configure a custom delimiter for dumps that
// rely on this. Unrecognized statements are classified as OTHER and
// passed through rather than rejected.
//
// # Execution model
//
// Statements execute in source order in batches of at most
// Config.BatchSize, one transaction per batch. Without skip-errors
// mode the first failure rolls back its batch and stops the run;
// previously committed batches are unaffected. With skip-errors mode
// failures are recorded and the successful statements of the same
// batch still commit. Concurrent executions against the same store
// path are not coordinated; serialize them in the caller.
package dumpsql
