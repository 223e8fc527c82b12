package distance

import "errors"

// Every message is prefixed with "distance: ". Returned errors may wrap these
// sentinels with context; match them with errors.Is.
var (
	// ErrEmptyName is returned for a location name that is empty after normalization.
	ErrEmptyName = errors.New("distance: empty location name")

	// ErrDuplicateName is returned when two locations share a (normalized) name.
	ErrDuplicateName = errors.New("distance: duplicate location name")

	// ErrUnknownLocation is returned when a name is not part of the matrix.
	ErrUnknownLocation = errors.New("distance: unknown location")

	// ErrSelfDistance is returned when setting a distance from a location to itself.
	ErrSelfDistance = errors.New("distance: self distance")

	// ErrInvalidDistance is returned for NaN, ±Inf or negative values.
	ErrInvalidDistance = errors.New("distance: invalid distance value")

	// ErrShape is returned when a table does not match the location count.
	ErrShape = errors.New("distance: table shape mismatch")

	// ErrTooFewLocations is returned when fewer than one location is supplied.
	ErrTooFewLocations = errors.New("distance: no locations")
)

// ErrDocument is returned for a structurally invalid Document.
var ErrDocument = errors.New("distance: malformed document")
