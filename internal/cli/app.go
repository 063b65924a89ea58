package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/logging"
	"github.com/dmitrijs2005/tripdesk/internal/masters"
)

// screenSet is what the console needs from the screen registry.
type screenSet interface {
	Screens() []masters.Screen
	Get(key string) (crud.Session, bool)
}

type App struct {
	screens screenSet
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp builds a console reading commands from in and writing to out.
func NewApp(screens screenSet, in io.Reader, out io.Writer, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &App{screens: screens, logger: logger, reader: bufio.NewReader(in), out: out}
}

// Run blocks until exit or end of input.
func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "console started", "screens", len(a.screens.Screens()))
	a.root(ctx)
	a.logger.Info(ctx, "console stopped")
}
