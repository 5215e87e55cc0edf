package ndcube

import "errors"

// Sentinel errors for the ndcube package.
var (
	// Construction errors
	ErrDimsTooSmall = errors.New("ndcube: dimension count must be at least 3")

	// Parsing errors
	ErrInvalidNotation = errors.New("ndcube: invalid rotation notation")

	// Validation errors
	ErrInvalidRotation = errors.New("ndcube: invalid rotation")
	ErrInvalidCoords   = errors.New("ndcube: invalid coordinates")
)
