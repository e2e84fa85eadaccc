// Package apperr defines sentinel errors shared across the service layers.
package apperr

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrNoSnapshot        = errors.New("no item snapshot loaded")
	ErrReadOnly          = errors.New("field type is read-only")
	ErrMissingIdentifier = errors.New("missing required identifier")
	ErrFetch             = errors.New("host fetch failed")
	ErrUpdate            = errors.New("host update failed")
	ErrExport            = errors.New("export failed")
)
