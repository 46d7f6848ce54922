// Package app hosts the interactive month-view program: navigate days,
// inspect and add events, and move an event to another day with an explicit
// confirmation when the move would overlap an existing event.
package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/gridcal/pkg/event"
	"tableflip.dev/gridcal/pkg/printers"
	"tableflip.dev/gridcal/pkg/schedule"
	"tableflip.dev/gridcal/pkg/store"
	"tableflip.dev/gridcal/pkg/timeutil"
	"tableflip.dev/gridcal/pkg/tui/calendar"
)

type mode int

const (
	modeBrowse mode = iota
	modeMove
	modeConfirmMove
	modeAdd
)

// Model is the top-level bubbletea model.
type Model struct {
	ctx context.Context
	p   store.Persistence

	events   []event.Event
	selected time.Time // day under the cursor
	dayIndex int       // highlighted event within the selected day

	mode    mode
	moving  event.Event         // event being relocated in modeMove
	pending schedule.Relocation // awaiting confirmation in modeConfirmMove
	add     *addModel

	status     string
	termWidth  int
	termHeight int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

func New(ctx context.Context, p store.Persistence) *Model {
	return &Model{
		ctx:      ctx,
		p:        p,
		selected: timeutil.Midnight(time.Now()),
	}
}

type eventsLoadedMsg struct {
	events []event.Event
}

type errMsg struct {
	err error
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Init loads initial data and starts the change watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadEvents(), m.startWatch())
}

func (m *Model) loadEvents() tea.Cmd {
	return func() tea.Msg {
		return eventsLoadedMsg{events: m.p.List(m.ctx)}
	}
}

func (m *Model) startWatch() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(m.ctx)
		ch, err := m.p.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case eventsLoadedMsg:
		m.events = msg.events
		m.clampDayIndex()
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "ERR: watch " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		cmds = append(cmds, m.loadEvents())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, m.startWatch())
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	default:
		if m.mode == modeAdd && m.add != nil {
			cmds = append(cmds, m.add.Update(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.mode {
	case modeAdd:
		m.handleAddKey(msg, cmds)
	case modeMove:
		m.handleMoveKey(msg, cmds)
	case modeConfirmMove:
		m.handleConfirmKey(msg, cmds)
	default:
		m.handleBrowseKey(msg, cmds)
	}
}

func (m *Model) handleBrowseKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.stopWatch()
		*cmds = append(*cmds, tea.Quit)
	case "left", "h":
		m.moveSelection(-1)
	case "right", "l":
		m.moveSelection(1)
	case "up", "k":
		m.moveSelection(-7)
	case "down", "j":
		m.moveSelection(7)
	case "[", "pgup":
		m.selected = m.selected.AddDate(0, -1, 0)
		m.dayIndex = 0
	case "]", "pgdown":
		m.selected = m.selected.AddDate(0, 1, 0)
		m.dayIndex = 0
	case "t":
		m.selected = timeutil.Midnight(time.Now())
		m.dayIndex = 0
	case "tab":
		if n := len(m.dayEvents()); n > 0 {
			m.dayIndex = (m.dayIndex + 1) % n
		}
	case "a":
		m.add = newAddModel(m.selected)
		m.mode = modeAdd
		m.status = ""
		*cmds = append(*cmds, m.add.Focus())
	case "m":
		if ev, ok := m.currentEvent(); ok {
			// Only anchor-day events can be moved; a recurring occurrence
			// shown on another day still belongs to its anchor.
			m.moving = ev
			m.mode = modeMove
			m.status = fmt.Sprintf("Moving %q · Enter drops it on the highlighted day · Esc cancels", ev.Title)
		}
	case "x", "delete":
		if ev, ok := m.currentEvent(); ok {
			id := ev.ID
			*cmds = append(*cmds, func() tea.Msg {
				if err := m.p.Delete(m.ctx, id); err != nil {
					return errMsg{err}
				}
				return eventsLoadedMsg{events: m.p.List(m.ctx)}
			})
		}
	}
}

func (m *Model) handleMoveKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeBrowse
		m.status = "Move cancelled"
	case "left", "h":
		m.moveSelection(-1)
	case "right", "l":
		m.moveSelection(1)
	case "up", "k":
		m.moveSelection(-7)
	case "down", "j":
		m.moveSelection(7)
	case "[", "pgup":
		m.selected = m.selected.AddDate(0, -1, 0)
	case "]", "pgdown":
		m.selected = m.selected.AddDate(0, 1, 0)
	case "enter":
		rel := schedule.Relocate(m.moving, m.selected, m.events)
		if rel.Conflict {
			m.pending = rel
			m.mode = modeConfirmMove
			m.status = fmt.Sprintf("%q overlaps %q (%s-%s) · y moves anyway · n cancels",
				rel.Updated.Title, rel.ClashesWith.Title, rel.ClashesWith.Start, rel.ClashesWith.End)
			return
		}
		m.commitMove(rel, cmds)
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.commitMove(m.pending, cmds)
	case "n", "esc", "q":
		m.mode = modeBrowse
		m.status = "Move cancelled"
	}
}

func (m *Model) handleAddKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if m.add == nil {
		m.mode = modeBrowse
		return
	}
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.add = nil
		m.status = "Add cancelled"
	case "enter":
		ev, err := m.add.Build()
		if err != nil {
			m.add.errorMsg = err.Error()
			return
		}
		if clash, found := schedule.FindConflict(ev, m.events, ev.ID); found && !m.add.overrideConflict {
			m.add.overrideConflict = true
			m.add.errorMsg = fmt.Sprintf("overlaps %q (%s-%s) · Enter again saves anyway",
				clash.Title, clash.Start, clash.End)
			return
		}
		m.mode = modeBrowse
		m.add = nil
		*cmds = append(*cmds, func() tea.Msg {
			if err := m.p.Create(&ev); err != nil {
				return errMsg{err}
			}
			return eventsLoadedMsg{events: m.p.List(m.ctx)}
		})
	default:
		m.add.overrideConflict = false
		*cmds = append(*cmds, m.add.Update(msg))
	}
}

func (m *Model) commitMove(rel schedule.Relocation, cmds *[]tea.Cmd) {
	m.mode = modeBrowse
	m.status = fmt.Sprintf("Moved %q to %s", rel.Updated.Title, rel.Updated.Date)
	updated := rel.Updated
	*cmds = append(*cmds, func() tea.Msg {
		if err := m.p.Update(updated); err != nil {
			return errMsg{err}
		}
		return eventsLoadedMsg{events: m.p.List(m.ctx)}
	})
}

func (m *Model) moveSelection(days int) {
	m.selected = m.selected.AddDate(0, 0, days)
	m.dayIndex = 0
}

func (m *Model) dayEvents() []event.Event {
	return printers.OccurringOn(m.selected, m.events)
}

func (m *Model) clampDayIndex() {
	if n := len(m.dayEvents()); m.dayIndex >= n {
		m.dayIndex = 0
	}
}

// currentEvent resolves the highlighted occurrence back to its stored record.
func (m *Model) currentEvent() (event.Event, bool) {
	active := m.dayEvents()
	if len(active) == 0 {
		return event.Event{}, false
	}
	if m.dayIndex >= len(active) {
		m.dayIndex = 0
	}
	return active[m.dayIndex], true
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	paneStyle   = lipgloss.NewStyle().PaddingLeft(2)
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
)

// View renders the month grid beside the selected day's events.
func (m *Model) View() string {
	grid := m.renderGrid()
	pane := m.renderDayPane()
	if m.mode == modeAdd && m.add != nil {
		pane = m.add.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, grid, paneStyle.Render(pane))

	header := titleStyle.Render(m.selected.Format("January 2006"))
	status := statusStyle.Render(m.status)
	help := helpStyle.Render("arrows move · [/] month · a add · m move · tab cycle · x delete · q quit")

	return header + "\n" + body + "\n" + status + "\n" + help
}

func (m *Model) renderGrid() string {
	now := time.Now()
	days := make([]calendar.Day, 0, calendar.DaysIn(m.selected))
	for i := 1; i <= calendar.DaysIn(m.selected); i++ {
		day := time.Date(m.selected.Year(), m.selected.Month(), i, 12, 0, 0, 0, time.Local)
		d := calendar.Day{
			Day:        i,
			HasEvent:   len(printers.OccurringOn(day, m.events)) > 0,
			IsToday:    timeutil.SameDay(day, now),
			IsSelected: i == m.selected.Day(),
		}
		if m.mode == modeMove || m.mode == modeConfirmMove {
			d.IsTarget = d.IsSelected
			d.IsSelected = false
		}
		days = append(days, d)
	}
	return calendar.Render(m.selected, days, calendar.DefaultOptions())
}

func (m *Model) renderDayPane() string {
	active := m.dayEvents()

	out := titleStyle.Render(m.selected.Format("Monday, January 2")) + "\n"
	if len(active) == 0 {
		return out + statusStyle.Render("no events")
	}

	width := m.termWidth / 2
	if width < 24 {
		width = 24
	}

	for i, e := range active {
		line := fmt.Sprintf("%s-%s  %s", e.Start, e.End, e.Title)
		if i == m.dayIndex {
			line = cursorStyle.Render(line)
		}
		out += line + "\n"
		if i == m.dayIndex && e.Description != "" {
			out += statusStyle.Render(wordwrap.String(e.Description, width)) + "\n"
		}
	}
	return out
}

// Run launches the interactive month view.
func Run(ctx context.Context, p store.Persistence) error {
	prog := tea.NewProgram(New(ctx, p), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
