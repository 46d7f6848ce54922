package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/gridcal/pkg/event"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// Day prints the events active on the given day, sorted by start time. The
// occurrence check walks every event once, the same pass the month grid does
// per visible day.
func (pp *PrettyPrint) Day(on time.Time, events []event.Event) {
	active := OccurringOn(on, events)

	pp.Title(on.Format("Monday, January 2, 2006"))
	if len(active) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range active {
		row := []interface{}{fmt.Sprintf("%s-%s", e.Start, e.End), e.Color.Sprint(e.Title)}
		if pp.ShowID {
			row = append([]interface{}{color.New(color.FgHiYellow, color.Faint).Sprint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// List prints every stored event with its anchor date and recurrence kind.
func (pp *PrettyPrint) List(events []event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	header := color.New(color.Bold)
	if pp.ShowID {
		tbl.AddRow(header.Sprint("ID"), header.Sprint("Date"), header.Sprint("Time"), header.Sprint("Repeats"), header.Sprint("Title"))
	} else {
		tbl.AddRow(header.Sprint("Date"), header.Sprint("Time"), header.Sprint("Repeats"), header.Sprint("Title"))
	}
	for _, e := range events {
		row := []interface{}{
			e.Date.String(),
			fmt.Sprintf("%s-%s", e.Start, e.End),
			string(e.Recurrence.Get().Type()),
			e.Color.Sprint(e.Title),
		}
		if pp.ShowID {
			row = append([]interface{}{color.New(color.FgHiYellow, color.Faint).Sprint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// OccurringOn filters events to those active on the given day, preserving
// the store's ordering.
func OccurringOn(on time.Time, events []event.Event) []event.Event {
	active := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.OccursOn(on) {
			active = append(active, e)
		}
	}
	return active
}
