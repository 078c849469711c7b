package edittrace

import "errors"

// Sentinel errors for edittrace operations. Build and Distance are
// total over all finite inputs and never fail.
var (
	// ErrOutOfRange indicates Backtrace was given coordinates outside
	// the cost table's bounds.
	ErrOutOfRange = errors.New("edittrace: cell coordinates out of table range")
)
