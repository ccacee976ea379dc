package domain

import "errors"

// ErrNotFound is returned by repositories when a lookup key (slug or ID)
// matches no record. Callers decide the fallback; repositories never
// substitute a default record.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateSlug is returned when creating or updating a record would
// violate slug uniqueness within its collection.
var ErrDuplicateSlug = errors.New("slug already in use")
