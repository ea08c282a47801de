// Package theme defines the spacing and color tokens consumed by card layouts.
//
// A Theme is a plain value. Components receive it explicitly and never mutate
// it, so one theme can be shared by any number of concurrent renders.
package theme

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultSpacingUnit is the base spacing step in CSS pixels.
const DefaultSpacingUnit = 8

// ErrInvalidTheme is returned when a theme fails validation.
var ErrInvalidTheme = errors.New("invalid theme")

// PrimaryColors are the brand colors of the design system.
type PrimaryColors struct {
	Brick   string `toml:"brick"`
	Comet   string `toml:"comet"`
	Mirage  string `toml:"mirage"`
	Selago  string `toml:"selago"`
	White   string `toml:"white"`
	Concord string `toml:"concord"`
}

// StateColors signal status in cards and badges.
type StateColors struct {
	Error    string `toml:"error"`
	Positive string `toml:"positive"`
	Warning  string `toml:"warning"`
}

// Palette groups every color token a theme supplies.
type Palette struct {
	Primary PrimaryColors `toml:"primary"`
	State   StateColors   `toml:"state"`
}

// Theme supplies spacing units and color tokens to components.
type Theme struct {
	// SpacingUnit is the pixel size of one spacing step.
	SpacingUnit int     `toml:"spacing_unit"`
	Palette     Palette `toml:"palette"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		SpacingUnit: DefaultSpacingUnit,
		Palette: Palette{
			Primary: PrimaryColors{
				Brick:   "#1E5BF0",
				Comet:   "#545F77",
				Mirage:  "#171B25",
				Selago:  "#F4F7FD",
				White:   "#FFFFFF",
				Concord: "#7B7B7B",
			},
			State: StateColors{
				Error:    "#E36168",
				Positive: "#31BF56",
				Warning:  "#F2B039",
			},
		},
	}
}

// Spacing returns n spacing steps as a CSS pixel length.
func (t Theme) Spacing(n int) string {
	return strconv.Itoa(n*t.SpacingUnit) + "px"
}

// Validate reports whether every token is usable.
func (t Theme) Validate() error {
	if t.SpacingUnit <= 0 {
		return fmt.Errorf("%w: spacing unit must be positive, got %d", ErrInvalidTheme, t.SpacingUnit)
	}
	for _, token := range t.colorTokens() {
		if !isHexColor(token.value) {
			return fmt.Errorf("%w: %s must be a hex color, got %q", ErrInvalidTheme, token.name, token.value)
		}
	}
	return nil
}

type colorToken struct {
	name  string
	value string
}

func (t Theme) colorTokens() []colorToken {
	p := t.Palette
	return []colorToken{
		{name: "primary.brick", value: p.Primary.Brick},
		{name: "primary.comet", value: p.Primary.Comet},
		{name: "primary.mirage", value: p.Primary.Mirage},
		{name: "primary.selago", value: p.Primary.Selago},
		{name: "primary.white", value: p.Primary.White},
		{name: "primary.concord", value: p.Primary.Concord},
		{name: "state.error", value: p.State.Error},
		{name: "state.positive", value: p.State.Positive},
		{name: "state.warning", value: p.State.Warning},
	}
}

func isHexColor(value string) bool {
	if len(value) != 4 && len(value) != 7 {
		return false
	}
	if value[0] != '#' {
		return false
	}
	for _, r := range value[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
