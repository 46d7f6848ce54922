package get

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/gridcal/pkg/printers"
	"tableflip.dev/gridcal/pkg/store"
)

type Get struct {
	// On limits output to the events occurring on a single day. When nil,
	// every stored event is listed.
	On     *time.Time
	JSON   bool
	ShowID bool

	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	all := g.Persistence.List(ctx)

	if g.On != nil {
		all = printers.OccurringOn(*g.On, all)
	}

	if g.JSON {
		b, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	if g.On != nil {
		pp.Day(*g.On, all)
		return nil
	}
	pp.List(all)
	return nil
}
