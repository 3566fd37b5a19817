package perm

import "errors"

// ErrOutOfRange is returned when a value or position is above the generator's max.
var ErrOutOfRange = errors.New("perm: value out of range")
