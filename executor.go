package dumpsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Embedded store driver. The executor addresses the store through
	// database/sql only.
	_ "modernc.org/sqlite"

	"github.com/nao1215/dumpsql/domain/model"
)

// storeDriverName is the database/sql driver name of the embedded store.
const storeDriverName = "sqlite"

// ExecutionResult aggregates the outcome of one execution call. It is
// mutated incrementally while batches run and returned frozen at
// completion.
type ExecutionResult struct {
	// Success is true when no errors occurred or skip-errors mode
	// tolerated all of them.
	Success bool
	// RecordsProcessed counts successfully executed and committed
	// INSERT statements.
	RecordsProcessed int
	// TablesCreated lists tables whose CREATE TABLE statement executed
	// and committed without error, in execution order.
	TablesCreated []string
	// Errors holds one message per failed statement or aborted batch.
	Errors []string
	// Warnings mirrors skip-mode failures and carries non-fatal notes.
	Warnings []string
}

// executor runs filtered statements against the embedded store in
// size-bounded transactional batches. It holds no mutable state across
// calls; one executor value may be shared freely.
type executor struct {
	cfg      Config
	progress ProgressFunc
}

// batchOutcome collects per-batch tallies that are merged into the
// result only after the batch transaction commits. Statements in an
// aborted batch must not count.
type batchOutcome struct {
	inserts       int
	tablesCreated []string
}

// execute opens the store, runs every batch in order and closes the
// store on every exit path. A non-skip statement failure aborts the
// containing batch and stops the run; earlier committed batches are
// unaffected and the partial result is returned together with the
// error.
func (e executor) execute(ctx context.Context, statements []model.Statement, storePath string) (*ExecutionResult, error) {
	result := &ExecutionResult{Success: true}
	if len(statements) == 0 {
		result.Warnings = append(result.Warnings, "no statements to execute")
		return result, nil
	}

	db, err := sql.Open(storeDriverName, storePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenStore, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenStore, err)
	}

	total := len(statements)
	processed := 0
	for start := 0; start < total; start += e.cfg.BatchSize {
		end := start + e.cfg.BatchSize
		if end > total {
			end = total
		}
		if err := e.runBatch(ctx, db, statements[start:end], result, &processed, total); err != nil {
			result.Success = false
			result.Errors = append(result.Errors, err.Error())
			return result, err
		}
	}

	result.Success = len(result.Errors) == 0 || e.cfg.SkipErrors
	e.emit(ProgressEvent{
		Stage:            StageCompleted,
		PercentComplete:  100,
		Message:          fmt.Sprintf("executed %d statements", processed),
		RecordsProcessed: result.RecordsProcessed,
		TotalRecords:     total,
		CurrentRecord:    processed,
	})
	return result, nil
}

// runBatch executes one batch inside a single transaction. In
// skip-errors mode individual failures are recorded and the rest of
// the batch still runs and commits; otherwise the first failure rolls
// the whole batch back.
func (e executor) runBatch(ctx context.Context, db *sql.DB, batch []model.Statement, result *ExecutionResult, processed *int, total int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", ErrBatchAborted, err)
	}

	var outcome batchOutcome
	for _, stmt := range batch {
		// Cancellation is honored between statements, never mid-statement.
		if err := ctx.Err(); err != nil {
			return rollback(tx, fmt.Errorf("%w: %w", ErrBatchAborted, err))
		}

		execErr := e.execStatement(ctx, tx, stmt)
		*processed++

		if execErr != nil {
			if !e.cfg.SkipErrors {
				return rollback(tx, fmt.Errorf("%w: line %d: %w", ErrBatchAborted, stmt.LineNumber, execErr))
			}
			msg := fmt.Sprintf("line %d: %v", stmt.LineNumber, execErr)
			result.Errors = append(result.Errors, msg)
			result.Warnings = append(result.Warnings, msg)
		} else {
			switch stmt.Operation {
			case model.OperationInsert:
				outcome.inserts++
			case model.OperationCreateTable:
				if stmt.Table != "" {
					outcome.tablesCreated = append(outcome.tablesCreated, stmt.Table)
				}
			}
		}

		e.emit(ProgressEvent{
			Stage:            StageExecuting,
			PercentComplete:  float64(*processed) / float64(total) * 100,
			Message:          progressMessage(stmt, execErr),
			RecordsProcessed: result.RecordsProcessed + outcome.inserts,
			TotalRecords:     total,
			CurrentRecord:    *processed,
		})
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrBatchAborted, err)
	}
	result.RecordsProcessed += outcome.inserts
	result.TablesCreated = append(result.TablesCreated, outcome.tablesCreated...)
	return nil
}

// execStatement runs one statement, falling back to a single
// translate-and-retry attempt when direct execution fails and the
// source dialect is not the store's native dialect. A no-op
// translation re-raises the original error rather than retrying.
func (e executor) execStatement(ctx context.Context, tx *sql.Tx, stmt model.Statement) error {
	_, err := tx.ExecContext(ctx, stmt.Text)
	if err == nil {
		return nil
	}
	if e.cfg.Dialect == model.DialectSQLite {
		return err
	}

	translated, changed := translateStatement(stmt.Text, e.cfg.Dialect)
	if !changed {
		return err
	}
	if _, retryErr := tx.ExecContext(ctx, translated); retryErr != nil {
		return errors.Join(err, fmt.Errorf("after %s translation: %w", e.cfg.Dialect, retryErr))
	}
	return nil
}

// emit delivers a progress event when a sink is configured.
func (e executor) emit(event ProgressEvent) {
	if e.progress != nil {
		e.progress(event)
	}
}

// rollback discards the transaction and returns the triggering error,
// joined with the rollback error if that fails too.
func rollback(tx *sql.Tx, cause error) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return errors.Join(cause, fmt.Errorf("rollback failed: %w", err))
	}
	return cause
}

// progressMessage produces a short per-statement description.
func progressMessage(stmt model.Statement, execErr error) string {
	if execErr != nil {
		return fmt.Sprintf("statement at line %d failed: %v", stmt.LineNumber, execErr)
	}
	if stmt.Table != "" {
		return fmt.Sprintf("executed %s on %s", stmt.Operation, stmt.Table)
	}
	return fmt.Sprintf("executed %s statement", stmt.Kind)
}
