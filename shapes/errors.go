package shapes

import "errors"

var (
	ErrEmptyDocument      = errors.New("document is empty")
	ErrUnsupportedFormat  = errors.New("unsupported document format")
	ErrMissingField       = errors.New("missing field")
	ErrInvalidField       = errors.New("invalid field")
	ErrUnknownFixtureType = errors.New("unknown fixture type")
	ErrTooManyVertices    = errors.New("too many polygon vertices")
)
