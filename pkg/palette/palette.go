package palette

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color is an event's display category. It is a fixed enumeration; anything
// outside it normalizes to Default.
type Color int

const (
	Default Color = iota
	Red
	Green
	Blue
	Yellow
	Purple
)

// Swatch describes a single category: its canonical name, aliases accepted on
// the command line, and the terminal attributes used to render it.
type Swatch struct {
	Color   Color
	Name    string
	Aliases []string
	Attrs   []color.Attribute
}

func DefaultSwatches() []Swatch {
	return []Swatch{
		{Default, "default", []string{"none", "gray", "grey"}, []color.Attribute{color.FgWhite}},
		{Red, "red", []string{"r"}, []color.Attribute{color.FgRed}},
		{Green, "green", []string{"g"}, []color.Attribute{color.FgGreen}},
		{Blue, "blue", []string{"b"}, []color.Attribute{color.FgBlue}},
		{Yellow, "yellow", []string{"y"}, []color.Attribute{color.FgYellow}},
		{Purple, "purple", []string{"p", "magenta"}, []color.Attribute{color.FgMagenta}},
	}
}

func (c Color) Swatch() Swatch {
	for _, s := range DefaultSwatches() {
		if s.Color == c {
			return s
		}
	}
	return DefaultSwatches()[0]
}

func (c Color) String() string {
	return c.Swatch().Name
}

// Sprint renders s in the category's terminal style.
func (c Color) Sprint(s string) string {
	return color.New(c.Swatch().Attrs...).Sprint(s)
}

// ForName resolves a category by canonical name or alias.
func ForName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default, nil
	}
	for _, s := range DefaultSwatches() {
		if s.Name == name {
			return s.Color, nil
		}
		for _, a := range s.Aliases {
			if a == name {
				return s.Color, nil
			}
		}
	}
	return Default, fmt.Errorf("unknown color %q", name)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	// Unknown names fall back to Default rather than failing a load.
	parsed, _ := ForName(string(b))
	*c = parsed
	return nil
}
