// Package prompt asks the user for the base name of a new file.
package prompt

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/confname/pkg/binder"
	"github.com/arthur-debert/confname/pkg/logging"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

var log = logging.GetLogger("prompt")

// Static answers every prompt with a fixed name. An empty name counts as
// a dismissed prompt.
type Static struct {
	Name string
}

// PromptForBaseName returns the fixed name
func (s Static) PromptForBaseName(string) (string, bool, error) {
	return s.Name, strings.TrimSpace(s.Name) != "", nil
}

// Terminal prompts with an interactive input field
type Terminal struct{}

// PromptForBaseName shows a single-line input. Ctrl+C dismisses it.
func (Terminal) PromptForBaseName(title string) (string, bool, error) {
	var name string
	err := huh.NewInput().
		Title(title).
		Prompt("Name: ").
		Value(&name).
		Run()
	if stderrors.Is(err, huh.ErrUserAborted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read base name: %w", err)
	}
	return name, true, nil
}

// Line reads the name from one line of input, for piped use
type Line struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// PromptForBaseName writes title and reads a line. End of input without
// any text dismisses the prompt.
func (l *Line) PromptForBaseName(title string) (string, bool, error) {
	if l.reader == nil {
		l.reader = bufio.NewReader(l.In)
	}
	if l.Out != nil {
		fmt.Fprintf(l.Out, "%s: ", title)
	}

	line, err := l.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, fmt.Errorf("failed to read base name: %w", err)
	}
	if err == io.EOF && line == "" {
		return "", false, nil
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// ForTerminal picks Terminal when in is a terminal and Line otherwise
func ForTerminal(in *os.File, out io.Writer) binder.Prompter {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		log.Debug().Msg("Using interactive prompt")
		return Terminal{}
	}
	log.Debug().Msg("Input is not a terminal, reading base name from a line")
	return &Line{In: in, Out: out}
}
