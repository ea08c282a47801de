// Package termlayout renders card title rows for terminal output.
//
// It mirrors the HTML rows in shared/layout: an optional icon glyph, the
// label, and for filter rows a right-aligned filter text.
package termlayout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/louisbranch/cardrow/internal/platform/theme"
)

// TitleRowProps are the inputs of TitleRow.
type TitleRowProps struct {
	// Icon is an optional glyph.
	Icon  string
	Label string
}

// TitleFilterRowProps are the inputs of TitleFilterRow.
type TitleFilterRowProps struct {
	Icon   string
	Label  string
	Filter func() string
}

type styles struct {
	icon  lipgloss.Style
	label lipgloss.Style
}

func newStyles(th theme.Theme) styles {
	return styles{
		icon:  lipgloss.NewStyle().Foreground(lipgloss.Color(th.Palette.Primary.Comet)).MarginRight(1),
		label: lipgloss.NewStyle(),
	}
}

// TitleRow renders the icon glyph (when set) followed by the label.
func TitleRow(th theme.Theme, props TitleRowProps) string {
	return titleContent(newStyles(th), props.Icon, props.Label)
}

// TitleFilterRow renders a row of the given width with the label group on the
// left and the filter output right-aligned. When the content does not fit,
// the filter follows the label after a single space.
func TitleFilterRow(th theme.Theme, width int, props TitleFilterRowProps) string {
	left := titleContent(newStyles(th), props.Icon, props.Label)
	if props.Filter == nil {
		return lipgloss.PlaceHorizontal(width, lipgloss.Left, left)
	}
	right := props.Filter()
	if right == "" {
		return lipgloss.PlaceHorizontal(width, lipgloss.Left, left)
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right)
}

func titleContent(s styles, icon, label string) string {
	label = s.label.Render(label)
	if strings.TrimSpace(icon) == "" {
		return label
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, s.icon.Render(icon), label)
}
