package remove

import (
	"context"

	"github.com/fatih/color"

	"tableflip.dev/gridcal/pkg/store"
)

type Remove struct {
	ID string

	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	if err := r.Persistence.Delete(ctx, r.ID); err != nil {
		return err
	}
	f := color.New(color.Faint)
	_, _ = f.Println("removed", r.ID)
	return nil
}
