package app

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/gridcal/pkg/event"
)

type addField int

const (
	fieldTitle addField = iota
	fieldFrom
	fieldTo
	fieldCount
)

var (
	labelStyle = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// addModel is the inline form for creating an event on the selected day.
type addModel struct {
	day    time.Time
	focus  addField
	inputs [fieldCount]textinput.Model

	errorMsg string
	// overrideConflict is set after the first Enter surfaced a conflict, so
	// the next Enter is an explicit decision to save anyway.
	overrideConflict bool
}

func newAddModel(day time.Time) *addModel {
	m := &addModel{day: day}

	title := textinput.New()
	title.Placeholder = "Event title…"
	title.Prompt = ""
	m.inputs[fieldTitle] = title

	from := textinput.New()
	from.Placeholder = "09:00"
	from.Prompt = ""
	from.CharLimit = 5
	m.inputs[fieldFrom] = from

	to := textinput.New()
	to.Placeholder = "10:00"
	to.Prompt = ""
	to.CharLimit = 5
	m.inputs[fieldTo] = to

	return m
}

func (m *addModel) Focus() tea.Cmd {
	return m.inputs[m.focus].Focus()
}

func (m *addModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.cycle(1)
		case "shift+tab", "up":
			return m.cycle(-1)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *addModel) cycle(dir int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = addField((int(m.focus) + dir + int(fieldCount)) % int(fieldCount))
	return m.inputs[m.focus].Focus()
}

// Build assembles and validates the event the form describes.
func (m *addModel) Build() (event.Event, error) {
	ev := event.New(
		m.inputs[fieldTitle].Value(),
		m.day,
		m.inputs[fieldFrom].Value(),
		m.inputs[fieldTo].Value(),
	)
	if err := ev.Validate(); err != nil {
		return event.Event{}, err
	}
	return ev, nil
}

func (m *addModel) View() string {
	out := titleStyle.Render("New event · "+m.day.Format("Monday, January 2")) + "\n"

	labels := [fieldCount]string{"Title", "From ", "To   "}
	for f := addField(0); f < fieldCount; f++ {
		label := labelStyle.Render(labels[f])
		if f == m.focus {
			label = focusStyle.Render(labels[f])
		}
		out += label + " " + m.inputs[f].View() + "\n"
	}

	if m.errorMsg != "" {
		out += errStyle.Render(m.errorMsg) + "\n"
	}
	out += helpStyle.Render("Enter saves · Tab next field · Esc cancels")
	return out
}
