// Package prompt abstracts interactive line input so the session and pager
// can be driven by readline in production and by scripted input in tests.
package prompt

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader reads one line of user input at a time.
type LineReader interface {
	// ReadLine displays prompt and returns the entered line without the
	// trailing newline. Interrupt and EOF surface as errors.
	ReadLine(prompt string) (string, error)

	// ReadPassword reads a line without echoing it.
	ReadPassword(prompt string) (string, error)
}

// ErrInterrupt is returned when the user interrupts input.
var ErrInterrupt = readline.ErrInterrupt

// Readline is the readline-backed LineReader used by the live session.
type Readline struct {
	rl *readline.Instance
}

// NewReadline builds a readline instance with history stored at historyFile
// (empty disables history).
func NewReadline(historyFile string) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize input: %w", err)
	}
	return &Readline{rl: rl}, nil
}

// ReadLine reads one line with the given prompt.
func (r *Readline) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

// ReadPassword reads a line without echo.
func (r *Readline) ReadPassword(prompt string) (string, error) {
	b, err := r.rl.ReadPassword(prompt)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Close releases the terminal.
func (r *Readline) Close() error {
	return r.rl.Close()
}

// WithDefault prompts with a stated default and returns the default when the
// user enters nothing.
func WithDefault(in LineReader, label, def string) (string, error) {
	s, err := in.ReadLine(fmt.Sprintf("%s [%s]: ", label, def))
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return s, nil
}
