package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/gridcal/pkg/store"
	"tableflip.dev/gridcal/pkg/tui/app"
)

type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("the ui needs an interactive terminal")
	}
	return app.Run(ctx, u.Persistence)
}
