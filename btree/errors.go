package btree

import "errors"

var (
	ErrInvalidDegree = errors.New("minimum degree must be at least 2")
	ErrNilLess       = errors.New("less function cannot be nil")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrCorrupt       = errors.New("tree invariant violated")
)
