// Package grid provides the flex row primitives card layouts are built from.
package grid

import "strings"

// Alignment is a CSS align-items value for a container.
type Alignment string

const (
	AlignCenter    Alignment = "center"
	AlignStart     Alignment = "flex-start"
	AlignEnd       Alignment = "flex-end"
	AlignStretch   Alignment = "stretch"
	AlignBaseline  Alignment = "baseline"
	alignUnchanged Alignment = ""
)

// ContainerClass and ItemClass are always present on rendered grid elements.
const (
	ContainerClass = "grid-container"
	ItemClass      = "grid-item"
	GrowClass      = "grid-item-grow"
)

const (
	containerBaseStyle = "display:flex;flex-wrap:wrap;box-sizing:border-box;width:100%"
	itemFixedStyle     = "box-sizing:border-box;flex:0 0 auto"
	itemGrowStyle      = "box-sizing:border-box;flex:1 1 0;max-width:100%"
)

// ContainerOptions configures a grid row.
type ContainerOptions struct {
	AlignItems Alignment
	// Class appends extra class names.
	Class string
}

// ItemOptions configures a grid cell.
type ItemOptions struct {
	// Grow makes the cell take the remaining row width.
	Grow  bool
	Class string
}

func containerStyle(align Alignment) string {
	if align = containerAlignment(align); align != alignUnchanged {
		return containerBaseStyle + ";align-items:" + string(align)
	}
	return containerBaseStyle
}

func containerAlignment(align Alignment) Alignment {
	switch align {
	case AlignCenter, AlignStart, AlignEnd, AlignStretch, AlignBaseline:
		return align
	default:
		return alignUnchanged
	}
}

func itemClasses(opts ItemOptions) []string {
	if opts.Grow {
		return classNames(ItemClass, GrowClass, opts.Class)
	}
	return classNames(ItemClass, opts.Class)
}

func itemStyle(grow bool) string {
	if grow {
		return itemGrowStyle
	}
	return itemFixedStyle
}

// classNames drops blank names so the class attribute never carries stray spaces.
func classNames(names ...string) []string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			parts = append(parts, name)
		}
	}
	return parts
}
