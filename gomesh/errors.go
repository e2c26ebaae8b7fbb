package gomesh

import "github.com/pkg/errors"

// Errors
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrSlotOccupied      = errors.New("facet orientation slot already occupied")
	ErrAmbiguousBoundary = errors.New("cannot determine an unambiguous boundary")
	ErrStaleReference    = errors.New("stale or foreign entity reference")
	ErrInconsistent      = errors.New("inconsistent mesh graph")
	ErrNotFound          = errors.New("mesh not found")
	ErrReadOnly          = errors.New("catalog is read-only")
	ErrBadCatalogParam   = errors.New("bad catalog param")
	ErrUnmarshal         = errors.New("unmarshal failed")
	ErrUnknownFunc       = errors.New("unknown editor function")
)
