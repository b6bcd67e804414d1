package asteroids

import "errors"

// ErrNotFound is returned when an operation refers to an entity that was
// never spawned or has already been removed.
var ErrNotFound = errors.New("asteroids: entity not found")
