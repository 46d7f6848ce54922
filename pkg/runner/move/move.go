package move

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/gridcal/pkg/printers"
	"tableflip.dev/gridcal/pkg/schedule"
	"tableflip.dev/gridcal/pkg/store"
)

// Move is the drag-to-reschedule path: shift an event's anchor to a target
// day, keeping its times and recurrence pattern.
type Move struct {
	ID    string
	To    time.Time
	Force bool

	Persistence store.Persistence
}

func (m *Move) Do(ctx context.Context) error {
	ev, err := m.Persistence.Get(ctx, m.ID)
	if err != nil {
		return err
	}

	existing := m.Persistence.List(ctx)
	rel := schedule.Relocate(ev, m.To, existing)
	if rel.Conflict && !m.Force {
		clash := rel.ClashesWith
		return fmt.Errorf("moving %q overlaps %q (%s-%s); re-run with --force to move anyway",
			ev.Title, clash.Title, clash.Start, clash.End)
	}

	if err := m.Persistence.Update(rel.Updated); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Day(rel.Updated.Date.Time, m.Persistence.List(ctx))
	return nil
}
