package add

import (
	"context"
	"fmt"

	"tableflip.dev/gridcal/pkg/event"
	"tableflip.dev/gridcal/pkg/printers"
	"tableflip.dev/gridcal/pkg/schedule"
	"tableflip.dev/gridcal/pkg/store"
)

type Add struct {
	Event event.Event
	Force bool

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	if err := a.Event.Validate(); err != nil {
		return err
	}

	existing := a.Persistence.List(ctx)
	if clash, found := schedule.FindConflict(a.Event, existing, a.Event.ID); found && !a.Force {
		return fmt.Errorf("%q overlaps %q (%s-%s) on %s; re-run with --force to save anyway",
			a.Event.Title, clash.Title, clash.Start, clash.End, clash.Date)
	}

	if err := a.Persistence.Create(&a.Event); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Day(a.Event.Date.Time, a.Persistence.List(ctx))
	return nil
}
