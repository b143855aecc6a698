package testutil

import "io"

// ScriptReader feeds predetermined input lines to interactive components.
// It satisfies the prompt.LineReader interface and returns io.EOF once the
// script is exhausted.
type ScriptReader struct {
	Lines []string

	// Prompts records every prompt shown, in order.
	Prompts []string

	next int
}

// ReadLine returns the next scripted line.
func (r *ScriptReader) ReadLine(prompt string) (string, error) {
	r.Prompts = append(r.Prompts, prompt)
	if r.next >= len(r.Lines) {
		return "", io.EOF
	}
	line := r.Lines[r.next]
	r.next++
	return line, nil
}

// ReadPassword returns the next scripted line, as ReadLine does.
func (r *ScriptReader) ReadPassword(prompt string) (string, error) {
	return r.ReadLine(prompt)
}
