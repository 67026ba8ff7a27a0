package engine

import "errors"

var (
	// ErrEmptySchedule means a schedule was queried before any breakpoint was added.
	ErrEmptySchedule = errors.New("schedule has no breakpoints")
	// ErrNoActiveSnapshot means the query time precedes every snapshot in the series.
	ErrNoActiveSnapshot = errors.New("time precedes every settings snapshot")
	// ErrProfileIncomplete means a derived quantity was requested before its
	// constituent setting series were added.
	ErrProfileIncomplete = errors.New("profile is missing a required setting series")
	// ErrInvalidInterval means an event was constructed with an inverted
	// interval or a negative magnitude.
	ErrInvalidInterval = errors.New("invalid event interval or magnitude")
	// ErrOverlappingOverride means two basal override intervals overlap in a
	// way that has no defined precedence.
	ErrOverlappingOverride = errors.New("overlapping basal override intervals")
)
