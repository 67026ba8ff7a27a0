package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource conflict")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidEvent        = errors.New("invalid event payload")
	ErrSettingsIncomplete  = errors.New("settings history incomplete for requested time")
	ErrOverlappingOverride = errors.New("overlapping basal overrides in window")
)
