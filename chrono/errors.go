package chrono

import "errors"

// define error types surfaced by calendar operations
var (
	ErrInvalidZone      = errors.New("invalid zone")
	ErrTemporalOverflow = errors.New("temporal overflow")
	ErrInvalidPattern   = errors.New("invalid pattern")
	ErrNilInput         = errors.New("nil input")
)
