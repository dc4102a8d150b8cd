package usecase

import "errors"

// Validation rejections surfaced to the caller before any write happens.
// Handlers match these with errors.Is to pick the HTTP status.
var (
	ErrMissingField    = errors.New("missing required fields")
	ErrInvalidInput    = errors.New("invalid date or time")
	ErrNonBookableDay  = errors.New("date is not bookable")
	ErrNoValidServices = errors.New("no valid services selected")
	ErrWorkdayOverflow = errors.New("job does not fit working hours")
	ErrNotFound        = errors.New("not found")
)
