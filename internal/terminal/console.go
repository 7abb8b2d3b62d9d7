// internal/terminal/console.go
//
// Line and single-key terminal I/O for the drill.
// Responsibilities:
//   - Prompt for a line of text (optionally without echo).
//   - Read one keypress in raw mode and report whether it asked to quit.
//   - Render feedback lines and clear the screen between rounds.
//
// Notes:
//   - Raw mode is only ever held for the duration of one key read, and is
//     restored on every return path. Close restores any mode still held,
//     for exits that bypass the normal path (signals).
//   - When input is not a terminal (pipes, tests) key reads fall back to
//     reading a line and inspecting its first character.

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/term"
)

// ErrClosed is returned when the input stream ends before a read completes.
var ErrClosed = errors.New("terminal: input closed")

const (
	clearScreen = "\x1b[2J\x1b[H"
	ctrlC       = 0x03
	ctrlD       = 0x04
)

// Console reads prompts from in and writes to out. fd is the file
// descriptor behind in, used for terminal mode changes.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	fd    int
	isTTY bool

	// HideSecret reads PromptSecret input without echo on a terminal.
	HideSecret bool

	mu    sync.Mutex // guards saved
	saved *term.State
}

// New constructs a Console. Pass fd -1 when in is not backed by a file.
func New(in io.Reader, out io.Writer, fd int) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		fd:    fd,
		isTTY: fd >= 0 && term.IsTerminal(fd),
	}
}

// NewStdio constructs a Console over the process's stdin and stdout.
func NewStdio() *Console {
	return New(os.Stdin, os.Stdout, int(os.Stdin.Fd()))
}

// IsTerminal reports whether input is an interactive terminal.
func (c *Console) IsTerminal() bool { return c.isTTY }

// PromptLine writes message and reads one line, without its line ending.
func (c *Console) PromptLine(message string) (string, error) {
	fmt.Fprint(c.out, message+" ")
	return c.readLine()
}

// PromptSecret is PromptLine, except that input is not echoed when
// HideSecret is set and input is a terminal.
func (c *Console) PromptSecret(message string) (string, error) {
	if !c.HideSecret || !c.isTTY {
		return c.PromptLine(message)
	}
	fmt.Fprint(c.out, message+" ")
	b, err := term.ReadPassword(c.fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", fmt.Errorf("read hidden line: %w", err)
	}
	return string(b), nil
}

// PromptKeyQuit blocks for one keypress and reports whether it was q or Q.
// Ctrl-C and Ctrl-D also count as quit, since raw mode swallows the signal.
func (c *Console) PromptKeyQuit() (bool, error) {
	if !c.isTTY {
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		r, _ := utf8.DecodeRuneInString(line)
		return r == 'q' || r == 'Q', nil
	}

	var quit bool
	err := c.withRaw(func() error {
		r, _, err := c.in.ReadRune()
		if err != nil {
			return closedErr(err)
		}
		// Escape sequences (arrows, function keys) arrive as several
		// bytes; their tail must not leak into the next line read.
		_, _ = c.in.Discard(c.in.Buffered())
		quit = r == 'q' || r == 'Q' || r == ctrlC || r == ctrlD
		return nil
	})
	return quit, err
}

// Render writes one line of feedback.
func (c *Console) Render(message string) {
	fmt.Fprintln(c.out, message)
}

// Clear wipes the screen and homes the cursor. It is a no-op off-terminal.
func (c *Console) Clear() {
	if c.isTTY {
		fmt.Fprint(c.out, clearScreen)
	}
}

// Close restores the terminal mode if raw mode is still held.
func (c *Console) Close() error {
	return c.restore()
}

// withRaw runs fn with the terminal in raw mode and restores it afterwards,
// whether fn returns normally, fails or panics.
func (c *Console) withRaw(fn func() error) error {
	st, err := term.MakeRaw(c.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	c.mu.Lock()
	c.saved = st
	c.mu.Unlock()
	defer c.restore()
	return fn()
}

func (c *Console) restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.saved == nil {
		return nil
	}
	st := c.saved
	c.saved = nil
	if err := term.Restore(c.fd, st); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", closedErr(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func closedErr(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrClosed, err)
	}
	return err
}
