package dlx

import "errors"

// Sentinel errors returned by Matrix construction and lookup methods.
// All of them are construction-time or pre-search conditions; the search
// itself has no recoverable error path.
var (
	ErrInvalidColumnSpec = errors.New("dlx: invalid column spec")
	ErrBuilderClosed     = errors.New("dlx: builder closed, cannot add rows")
	ErrIndexOutOfRange   = errors.New("dlx: column index out of range")
	ErrEmptyMatrix       = errors.New("dlx: matrix has no primary columns")
)
