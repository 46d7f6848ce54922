package cal

import (
	"context"
	"time"

	"tableflip.dev/gridcal/pkg/printers"
	"tableflip.dev/gridcal/pkg/store"
)

type Cal struct {
	// Month is any day inside the month to render.
	Month time.Time
	// Span is how many consecutive months to print, at least one.
	Span int

	Persistence store.Persistence
}

func (c *Cal) Do(ctx context.Context) error {
	all := c.Persistence.List(ctx)

	pp := printers.PrettyPrint{}
	month := c.Month
	span := c.Span
	if span < 1 {
		span = 1
	}
	for i := 0; i < span; i++ {
		pp.Calendar(month, all)
		month = printers.NextMonth(month)
	}
	return nil
}
