package dumpsql

// ProgressStage identifies the phase an execution call is in when a
// progress event is emitted.
type ProgressStage string

const (
	// StageExecuting is reported while statements run inside a batch
	StageExecuting ProgressStage = "executing"
	// StageCompleted is reported once after the final batch commits
	StageCompleted ProgressStage = "completed"
)

// ProgressEvent is a transient snapshot of execution progress. Events
// are delivered synchronously on the caller's execution path, one per
// processed statement; they are never buffered or persisted.
type ProgressEvent struct {
	// Stage is the execution phase.
	Stage ProgressStage
	// PercentComplete is processed statements over total, 0-100.
	PercentComplete float64
	// Message is a short human-readable description.
	Message string
	// RecordsProcessed is the running count of successful inserts,
	// including inserts in the uncommitted in-flight batch.
	RecordsProcessed int
	// TotalRecords is the total number of filtered statements.
	TotalRecords int
	// CurrentRecord is the 1-based index of the statement just processed.
	CurrentRecord int
}

// ProgressFunc receives progress events during execution. A nil
// ProgressFunc disables progress reporting.
type ProgressFunc func(ProgressEvent)
