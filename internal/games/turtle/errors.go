package turtle

import "errors"

// Construction errors. Constructors wrap them with the offending value,
// so callers should compare with errors.Is.
var (
	ErrInvalidSize   = errors.New("turtle: size must be positive")
	ErrInvalidSpeed  = errors.New("turtle: speed must be positive")
	ErrInvalidLevel  = errors.New("turtle: level must be positive")
	ErrInvalidScreen = errors.New("turtle: screen dimensions must be positive")
	ErrInvalidColor  = errors.New("turtle: unknown color")
	ErrInvalidConfig = errors.New("turtle: invalid configuration")
)
