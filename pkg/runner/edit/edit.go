package edit

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/gridcal/pkg/event"
	"tableflip.dev/gridcal/pkg/palette"
	"tableflip.dev/gridcal/pkg/printers"
	"tableflip.dev/gridcal/pkg/recurrence"
	"tableflip.dev/gridcal/pkg/schedule"
	"tableflip.dev/gridcal/pkg/store"
)

// Edit rebuilds an event record from its stored value plus the provided
// overrides and replaces it wholesale. Nil fields keep the stored value; the
// id never changes.
type Edit struct {
	ID          string
	Title       *string
	On          *time.Time
	From        *string
	To          *string
	Color       *palette.Color
	Description *string
	Recurrence  *recurrence.Pattern
	Force       bool

	Persistence store.Persistence
}

func (ed *Edit) Do(ctx context.Context) error {
	current, err := ed.Persistence.Get(ctx, ed.ID)
	if err != nil {
		return err
	}

	updated := current
	if ed.Title != nil {
		updated.Title = *ed.Title
	}
	if ed.On != nil {
		updated.Date = event.On(*ed.On)
	}
	if ed.From != nil {
		updated.Start = *ed.From
	}
	if ed.To != nil {
		updated.End = *ed.To
	}
	if ed.Color != nil {
		updated.Color = *ed.Color
	}
	if ed.Description != nil {
		updated.Description = *ed.Description
	}
	if ed.Recurrence != nil {
		updated.Recurrence = *ed.Recurrence
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	existing := ed.Persistence.List(ctx)
	if clash, found := schedule.FindConflict(updated, existing, updated.ID); found && !ed.Force {
		return fmt.Errorf("%q overlaps %q (%s-%s) on %s; re-run with --force to save anyway",
			updated.Title, clash.Title, clash.Start, clash.End, clash.Date)
	}

	if err := ed.Persistence.Update(updated); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Day(updated.Date.Time, ed.Persistence.List(ctx))
	return nil
}
