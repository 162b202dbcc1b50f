package practice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/openkcm/interview-manager/internal/openapi"
)

var ErrNotTerminal = errors.New("practice needs an interactive terminal")

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Run drives a practice session until the candidate quits or the
// interview ends.
func Run(ctx context.Context, api API, req openapi.StartRequest, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		NewModel(ctx, api, req),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running practice session: %w", err)
	}

	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}

	return nil
}
