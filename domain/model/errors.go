package model

import "errors"

// ErrUnknownEncoding is returned when a source encoding selector is not recognized
var ErrUnknownEncoding = errors.New("unknown source encoding")

// ErrUnknownDialect is returned when a source dialect tag is not recognized
var ErrUnknownDialect = errors.New("unknown source dialect")
