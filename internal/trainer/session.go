// internal/trainer/session.go
//
// Driver loop for one password-training session.
// Responsibilities:
//   - Capture the secret, re-prompting while it is empty.
//   - Each round: render status + obscured hint, read a guess, advance the
//     difficulty controller, render feedback, ask whether to continue.
//   - Record every round for the closing summary.
//
// Notes:
//   - The session owns drill.State and threads it through Controller.Advance.
//   - Guesses are compared case-sensitively and byte-for-byte.
//   - The secret and guesses never reach the logger.
package trainer

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/passtrain/internal/drill"
	"github.com/robalobadob/passtrain/internal/history"
	"github.com/robalobadob/passtrain/internal/messages"
)

// Prompter is the blocking input side of the terminal.
type Prompter interface {
	PromptLine(message string) (string, error)
	PromptKeyQuit() (bool, error)
}

// Renderer shows one line of feedback.
type Renderer interface {
	Render(message string)
}

// secretPrompter is implemented by prompters that can read without echo.
type secretPrompter interface {
	PromptSecret(message string) (string, error)
}

// screenClearer is implemented by renderers that can wipe the screen.
type screenClearer interface {
	Clear()
}

// Outcome says how a session ended.
type Outcome int

const (
	Completed Outcome = iota + 1 // Correct guess at full difficulty.
	Quit                         // User asked to stop.
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Options configures a Session.
type Options struct {
	Config      drill.Config
	Rand        drill.Source      // Defaults to drill.NewRand().
	Printer     *messages.Printer // Defaults to the base locale.
	ClearScreen bool
}

// Session runs the training loop for a single secret.
type Session struct {
	ID string

	secret string
	ctrl   *drill.Controller
	rng    drill.Source
	in     Prompter
	out    Renderer
	msg    *messages.Printer
	rec    *history.Recorder
	clear  bool
	log    zerolog.Logger
}

// CaptureSecret prompts for the secret until a non-empty, valid UTF-8 one
// is entered.
func CaptureSecret(in Prompter, out Renderer, msg *messages.Printer) (string, error) {
	read := in.PromptLine
	if sp, ok := in.(secretPrompter); ok {
		read = sp.PromptSecret
	}
	for {
		secret, err := read(msg.Sprintf(messages.KeySecretPrompt))
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		switch {
		case secret == "":
			out.Render(msg.Sprintf(messages.KeyEmptySecret))
		case !utf8.ValidString(secret):
			out.Render(msg.Sprintf(messages.KeyBadSecret))
		default:
			return secret, nil
		}
	}
}

// New constructs a Session. It fails with drill.ErrEmptySecret for an empty
// secret, drill.ErrInvalidSecret for invalid UTF-8 and drill.ErrInvalidConfig
// for bad settings.
func New(secret string, in Prompter, out Renderer, opts Options) (*Session, error) {
	if !utf8.ValidString(secret) {
		return nil, drill.ErrInvalidSecret
	}
	secretLen := len([]rune(secret))
	ctrl, err := drill.NewController(secretLen, opts.Config)
	if err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		r, err := drill.NewRand()
		if err != nil {
			return nil, err
		}
		rng = r
	}
	msg := opts.Printer
	if msg == nil {
		if msg, err = messages.Load(messages.BaseLocale.String()); err != nil {
			return nil, err
		}
	}

	id := randomID()
	return &Session{
		ID:     id,
		secret: secret,
		ctrl:   ctrl,
		rng:    rng,
		in:     in,
		out:    out,
		msg:    msg,
		rec:    history.NewRecorder(secretLen),
		clear:  opts.ClearScreen,
		log:    log.With().Str("session", id).Logger(),
	}, nil
}

// Run plays rounds from the controller's starting state until training
// completes or the user quits. I/O failures end the session with an error.
func (s *Session) Run() (Outcome, error) {
	state := s.ctrl.Start()
	s.log.Info().
		Int("length", s.ctrl.SecretLen()).
		Int("difficulty", state.Difficulty).
		Int("attempts", state.Attempts).
		Msg("session started")

	for {
		next, ev, err := s.Round(state)
		if err != nil {
			s.log.Error().Err(err).Msg("round failed")
			return 0, err
		}
		state = next
		if ev == drill.Complete {
			return s.finish(Completed), nil
		}

		s.out.Render(s.msg.Sprintf(messages.KeyContinue))
		quit, err := s.in.PromptKeyQuit()
		if err != nil {
			s.log.Error().Err(err).Msg("read keypress")
			return 0, fmt.Errorf("read keypress: %w", err)
		}
		if quit {
			return s.finish(Quit), nil
		}
	}
}

// Round plays one guess at state and returns the controller's transition.
func (s *Session) Round(state drill.State) (drill.State, drill.Event, error) {
	if s.clear {
		if c, ok := s.out.(screenClearer); ok {
			c.Clear()
		}
	}
	s.out.Render(s.msg.Sprintf(messages.KeyStatus, state.Difficulty, s.ctrl.SecretLen(), state.Attempts))

	hint, err := drill.Obscure(s.rng, s.secret, state.Difficulty)
	if err != nil {
		return state, 0, err
	}
	guess, err := s.in.PromptLine(s.msg.Sprintf(messages.KeyGuessPrompt, hint))
	if err != nil {
		return state, 0, fmt.Errorf("read guess: %w", err)
	}

	correct := guess == s.secret
	next, ev, err := s.ctrl.Advance(state, correct)
	if err != nil {
		return state, 0, err
	}
	round := s.rec.Record(state, next, correct, ev)
	s.log.Debug().
		Int("round", round.Number).
		Int("guess_len", len([]rune(guess))).
		Bool("correct", correct).
		Stringer("event", ev).
		Int("difficulty", next.Difficulty).
		Int("attempts", next.Attempts).
		Msg("round played")

	s.renderEvent(ev, guess)
	return next, ev, nil
}

// Summary reports the rounds played so far.
func (s *Session) Summary() history.Summary { return s.rec.Summary() }

// RenderSummary writes the closing summary line.
func (s *Session) RenderSummary() {
	sum := s.rec.Summary()
	s.out.Render(s.msg.Sprintf(messages.KeySummary, sum.Rounds, sum.Correct, sum.PeakDifficulty, sum.SecretLen))
}

func (s *Session) renderEvent(ev drill.Event, guess string) {
	switch ev {
	case drill.Complete:
		s.out.Render(s.msg.Sprintf(messages.KeySuccess))
		s.out.Render(s.msg.Sprintf(messages.KeyComplete))
	case drill.Raised:
		s.out.Render(s.msg.Sprintf(messages.KeySuccess))
		s.out.Render(s.msg.Sprintf(messages.KeyRaised))
	case drill.Lowered:
		s.out.Render(s.msg.Sprintf(messages.KeyIncorrect, guess))
		s.out.Render(s.msg.Sprintf(messages.KeyLowered))
	case drill.Retry:
		s.out.Render(s.msg.Sprintf(messages.KeyIncorrect, guess))
	}
}

func (s *Session) finish(o Outcome) Outcome {
	sum := s.rec.Summary()
	s.log.Info().
		Stringer("outcome", o).
		Int("rounds", sum.Rounds).
		Int("correct", sum.Correct).
		Int("peak_difficulty", sum.PeakDifficulty).
		Msg("session finished")
	return o
}

// randomID returns a compact 16-hex-char identifier for log correlation.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
