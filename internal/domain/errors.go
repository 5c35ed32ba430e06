package domain

import "errors"

// ErrNotFound is returned when a requested catalog entity does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule (e.g. a
// malformed date, a drop-off not after the pickup).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrCatalogUnavailable is returned when the catalog provider cannot be
// reached or has not answered yet. It means "not yet known", never
// "known empty" — callers must not treat it as an empty catalog.
// Handlers should map this to HTTP 503.
var ErrCatalogUnavailable = errors.New("catalog unavailable")
