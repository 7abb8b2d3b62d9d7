// internal/history/recorder.go
//
// In-memory record of the rounds played in one training session.
// Used for the end-of-session summary; nothing here is persisted.
//
// Characteristics:
//   - One Round per guess, appended in order.
//   - Owned by the driver loop; not safe for concurrent use.
//   - State is lost when the process exits.

package history

import "github.com/robalobadob/passtrain/internal/drill"

// Round is one guess-and-feedback cycle.
type Round struct {
	Number     int         // 1-based round number.
	Difficulty int         // Hidden characters when the guess was made.
	Attempts   int         // Attempts remaining when the guess was made.
	Correct    bool        // Whether the guess matched the secret.
	Event      drill.Event // Transition the controller reported.
}

// Summary aggregates a session's rounds.
type Summary struct {
	Rounds         int
	Correct        int
	PeakDifficulty int
	SecretLen      int
	Completed      bool
}

// Recorder accumulates rounds for a secret of a fixed length.
type Recorder struct {
	secretLen int
	rounds    []Round
	peak      int
}

// NewRecorder constructs an empty Recorder.
func NewRecorder(secretLen int) *Recorder {
	return &Recorder{secretLen: secretLen}
}

// Record appends a round played at state before that moved to after.
func (r *Recorder) Record(before, after drill.State, correct bool, ev drill.Event) Round {
	round := Round{
		Number:     len(r.rounds) + 1,
		Difficulty: before.Difficulty,
		Attempts:   before.Attempts,
		Correct:    correct,
		Event:      ev,
	}
	r.rounds = append(r.rounds, round)
	r.peak = max(r.peak, before.Difficulty, after.Difficulty)
	return round
}

// Summary reports totals over every recorded round.
func (r *Recorder) Summary() Summary {
	s := Summary{
		Rounds:         len(r.rounds),
		PeakDifficulty: r.peak,
		SecretLen:      r.secretLen,
	}
	for _, round := range r.rounds {
		if round.Correct {
			s.Correct++
		}
		if round.Event == drill.Complete {
			s.Completed = true
		}
	}
	return s
}
