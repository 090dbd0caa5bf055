// Package app runs an example as a Bubble Tea program and carries the
// environment every example is built with.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/termtour/internal/logging"
	"github.com/Makepad-fr/termtour/internal/widget"
)

// Env is handed to every example constructor.
type Env struct {
	Logger        *log.Logger
	NotifyTimeout time.Duration
}

// Log never returns nil.
func (e Env) Log() *log.Logger {
	if e.Logger == nil {
		return logging.Discard()
	}
	return e.Logger
}

func (e Env) Notifier() widget.Notifier {
	return widget.NewNotifier(e.NotifyTimeout)
}

// Example is one entry of the tour.
type Example struct {
	Name    string
	Title   string
	Summary string
	New     func(Env) tea.Model
	// Intro is printed before the program starts, Outro after it exits.
	Intro []string
	Outro string
}

type Options struct {
	AltScreen bool
	Input     io.Reader
	Output    io.Writer
}

// Run blocks until the program quits or ctx is cancelled. Cancellation
// and SIGINT count as a normal exit.
func Run(ctx context.Context, m tea.Model, opt Options) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opt.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if opt.Input != nil {
		opts = append(opts, tea.WithInput(opt.Input))
	}
	if opt.Output != nil {
		opts = append(opts, tea.WithOutput(opt.Output))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || (ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled)) {
			return final, nil
		}
		return final, fmt.Errorf("run program: %w", err)
	}
	return final, nil
}
