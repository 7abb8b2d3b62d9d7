package drill

import "errors"

// Sentinel errors for the drill package.
// Use errors.Is to check: errors.Is(err, drill.ErrInvalidLevel)
var (
	ErrEmptySecret   = errors.New("drill: empty secret")
	ErrInvalidSecret = errors.New("drill: secret is not valid UTF-8")
	ErrInvalidLevel  = errors.New("drill: invalid level")
	ErrInvalidState  = errors.New("drill: invalid state")
	ErrInvalidConfig = errors.New("drill: invalid config")
)
