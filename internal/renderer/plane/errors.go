package plane

import "errors"

// Errors returned by plane operations.
var (
	// ErrDestroyed indicates an operation on a destroyed plane or reader.
	ErrDestroyed = errors.New("plane destroyed")

	// ErrInvalidDims indicates a non-positive width or height.
	ErrInvalidDims = errors.New("invalid plane dimensions")

	// ErrOutOfBounds indicates a coordinate outside the plane.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrReaderAttached indicates a plane still hosts a live reader.
	// Readers must be destroyed before their host plane.
	ErrReaderAttached = errors.New("plane hosts a live reader")

	// ErrRootPlane indicates an operation that needs a parent was applied
	// to a root plane.
	ErrRootPlane = errors.New("operation not valid on a root plane")
)
