package dumpsql

import "errors"

// Standard error values returned by the dumpsql package.
var (
	// ErrReadSource indicates the source script could not be opened or read
	ErrReadSource = errors.New("dumpsql: failed to read source")

	// ErrDecodeSource indicates the source bytes could not be decoded
	ErrDecodeSource = errors.New("dumpsql: failed to decode source")

	// ErrOpenStore indicates the embedded store could not be opened
	ErrOpenStore = errors.New("dumpsql: failed to open store")

	// ErrBatchAborted indicates a batch transaction was rolled back
	ErrBatchAborted = errors.New("dumpsql: batch aborted")

	// ErrInvalidConfig indicates an ingest configuration is not usable
	ErrInvalidConfig = errors.New("dumpsql: invalid configuration")
)
