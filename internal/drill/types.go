// internal/drill/types.go
//
// Core type definitions for the password drill.
// Defines:
//   - State:  the (difficulty, attempts) pair threaded through each round.
//   - Event:  what a round's transition did (retry/raised/lowered/complete).
//   - Config: tuning knobs for the difficulty controller.

package drill

import (
	"encoding"
	"fmt"
)

// State is the per-session training state. It is owned by the driver and
// replaced, never mutated, by Controller.Advance.
type State struct {
	Difficulty int // Number of character positions hidden in the hint.
	Attempts   int // Remaining misses before the difficulty steps down.
}

// Event reports the effect of a single transition.
type Event int

const (
	Retry    Event = iota + 1 // Miss; difficulty unchanged.
	Raised                    // Hit below full difficulty; difficulty went up.
	Lowered                   // Miss with no attempts left; difficulty went down.
	Complete                  // Hit at full difficulty; training is over.
)

var eventNames = [...]string{Retry: "Retry", Raised: "Raised", Lowered: "Lowered", Complete: "Complete"}

// Compile-time interface checks.
var (
	_ fmt.Stringer           = Event(0)
	_ encoding.TextMarshaler = Event(0)
)

// IsValid reports whether e is one of the four defined events.
func (e Event) IsValid() bool {
	return e >= Retry && e <= Complete
}

// String returns the event name. For invalid values it returns "Event(n)".
func (e Event) String() string {
	if e.IsValid() {
		return eventNames[e]
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// MarshalText implements encoding.TextMarshaler.
func (e Event) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return nil, fmt.Errorf("drill: invalid event: %d", int(e))
	}
	return []byte(eventNames[e]), nil
}

// Config holds the difficulty controller's tuning constants.
type Config struct {
	// MaxAttempts is the attempt budget granted whenever the difficulty changes.
	MaxAttempts int
	// StartingAttempts is the attempt budget of the very first level.
	StartingAttempts int
	// StartingDifficulty is the fraction of the secret hidden at the start.
	StartingDifficulty float64
	// MaxDifficultyIncrease is the fraction of the secret a single success
	// can add when no attempts were spent.
	MaxDifficultyIncrease float64
}

// DefaultConfig mirrors the stock drill: five attempts per level, two on the
// first level, start at 20% hidden, jump by up to 20% per success.
var DefaultConfig = Config{
	MaxAttempts:           5,
	StartingAttempts:      2,
	StartingDifficulty:    0.2,
	MaxDifficultyIncrease: 0.2,
}

// Validate checks that every field is within its allowed range.
func (c Config) Validate() error {
	switch {
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts %d < 1", ErrInvalidConfig, c.MaxAttempts)
	case c.StartingAttempts < 0 || c.StartingAttempts > c.MaxAttempts:
		return fmt.Errorf("%w: starting attempts %d outside [0, %d]", ErrInvalidConfig, c.StartingAttempts, c.MaxAttempts)
	case !inUnit(c.StartingDifficulty):
		return fmt.Errorf("%w: starting difficulty %g outside [0, 1]", ErrInvalidConfig, c.StartingDifficulty)
	case !inUnit(c.MaxDifficultyIncrease):
		return fmt.Errorf("%w: max difficulty increase %g outside [0, 1]", ErrInvalidConfig, c.MaxDifficultyIncrease)
	}
	return nil
}

// inUnit also rejects NaN.
func inUnit(f float64) bool {
	return f >= 0 && f <= 1
}
