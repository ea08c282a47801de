// Package layout renders card chrome shared by dashboard pages.
package layout

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/cardrow/internal/platform/theme"
)

// Icon renders an icon carrying the given class.
type Icon func(class string) templ.Component

// Filter produces the filter control shown at the end of a title row.
type Filter func() templ.Component

// TitleRowProps are the inputs of TitleRow.
type TitleRowProps struct {
	// Icon is optional.
	Icon  Icon
	Label string
}

// TitleFilterRowProps are the inputs of TitleFilterRow.
type TitleFilterRowProps struct {
	Icon  Icon
	Label string
	// Filter is optional and invoked once per render.
	Filter Filter
}

// TitleRow renders a vertically centered row with an optional icon and a label.
//
// Classes refer to Styles(th); pages must render that style sheet once.
func TitleRow(th theme.Theme, props TitleRowProps) templ.Component {
	styles := Styles(th)
	return titleRow(styles, iconNode(styles, props.Icon), props.Label)
}

// TitleFilterRow renders a title row whose label group fills the width and
// whose filter control stays right-aligned at its natural size.
func TitleFilterRow(th theme.Theme, props TitleFilterRowProps) templ.Component {
	styles := Styles(th)
	return titleFilterRow(styles, iconNode(styles, props.Icon), props.Label, props.Filter)
}

func iconNode(styles StyleSheet, icon Icon) templ.Component {
	if icon == nil {
		return nil
	}
	return icon(styles.TitleIcon.Class)
}

// filterNode invokes filter while the row renders. A missing filter or a nil
// result leaves the right region empty.
func filterNode(filter Filter) templ.Component {
	if filter == nil {
		return templ.NopComponent
	}
	if node := filter(); node != nil {
		return node
	}
	return templ.NopComponent
}
