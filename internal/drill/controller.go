// internal/drill/controller.go
//
// Difficulty controller for a single training session.
// Responsibilities:
//   - Compute the starting state from the secret length.
//   - Apply one guess outcome and return the next state plus an Event.
//   - Scale the difficulty jump on success by the attempts still unspent.
//
// Notes:
//   - Advance is a pure function of (State, correct); the caller owns the state.
//   - At difficulty 0 or 1 a miss costs nothing. This keeps the hint from ever
//     falling back to the full, unobscured secret.
package drill

import (
	"fmt"
	"math"
)

// Controller applies the adaptive-difficulty rules for one secret length.
type Controller struct {
	cfg       Config
	secretLen int
}

// NewController validates cfg and returns a controller for a secret of
// secretLen characters.
func NewController(secretLen int, cfg Config) (*Controller, error) {
	if secretLen < 1 {
		return nil, ErrEmptySecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{cfg: cfg, secretLen: secretLen}, nil
}

// SecretLen returns the secret length the controller was built for.
func (c *Controller) SecretLen() int { return c.secretLen }

// Start returns the initial state: floor(len * StartingDifficulty) hidden
// characters and StartingAttempts attempts. Short secrets may start at 0.
func (c *Controller) Start() State {
	d := int(math.Floor(float64(c.secretLen) * c.cfg.StartingDifficulty))
	return State{
		Difficulty: min(d, c.secretLen),
		Attempts:   c.cfg.StartingAttempts,
	}
}

// Jump returns how many levels a success is worth with the given attempts
// remaining: ceil(len * MaxDifficultyIncrease * attempts / MaxAttempts).
// The result may be 0; Advance always raises by at least one.
func (c *Controller) Jump(attempts int) int {
	frac := c.cfg.MaxDifficultyIncrease * float64(attempts) / float64(c.cfg.MaxAttempts)
	// Products that are integers on paper can land a few ulps above them.
	return int(math.Ceil(float64(c.secretLen)*frac - jumpEpsilon))
}

const jumpEpsilon = 1e-9

// Advance applies one guess outcome to s.
//
// Correct guesses:
//   - At full difficulty → Complete, state returned unchanged.
//   - Otherwise → Raised, difficulty += max(Jump(attempts), 1) capped at the
//     secret length, attempts reset to MaxAttempts.
//
// Incorrect guesses:
//   - Difficulty > 1 with attempts left → Retry, attempts - 1.
//   - Difficulty > 1 with no attempts → Lowered, difficulty - 1, attempts reset.
//   - Difficulty ≤ 1 → Retry, state unchanged.
func (c *Controller) Advance(s State, correct bool) (State, Event, error) {
	if err := c.check(s); err != nil {
		return s, 0, err
	}

	if correct {
		if s.Difficulty == c.secretLen {
			return s, Complete, nil
		}
		next := max(s.Difficulty+c.Jump(s.Attempts), s.Difficulty+1)
		return State{
			Difficulty: min(c.secretLen, next),
			Attempts:   c.cfg.MaxAttempts,
		}, Raised, nil
	}

	if s.Difficulty <= 1 {
		return s, Retry, nil
	}
	if s.Attempts == 0 {
		return State{
			Difficulty: s.Difficulty - 1,
			Attempts:   c.cfg.MaxAttempts,
		}, Lowered, nil
	}
	s.Attempts--
	return s, Retry, nil
}

// check rejects states no sequence of transitions can reach.
func (c *Controller) check(s State) error {
	if s.Difficulty < 0 || s.Difficulty > c.secretLen {
		return fmt.Errorf("%w: difficulty %d outside [0, %d]", ErrInvalidState, s.Difficulty, c.secretLen)
	}
	if s.Attempts < 0 || s.Attempts > c.cfg.MaxAttempts {
		return fmt.Errorf("%w: attempts %d outside [0, %d]", ErrInvalidState, s.Attempts, c.cfg.MaxAttempts)
	}
	return nil
}
