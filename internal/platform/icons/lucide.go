package icons

import (
	"maps"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

const (
	lucideSymbolPrefix = "lucide-"
	defaultLucideName  = "sparkle"
)

var lucideIconNames = map[ID]string{
	IDGeneric:    "sparkle",
	IDDevices:    "cpu",
	IDGateway:    "router",
	IDNetwork:    "network",
	IDAlert:      "bell",
	IDSubscriber: "users",
	IDPolicy:     "shield",
	IDAPN:        "globe",
	IDEquipment:  "server",
	IDDashboard:  "layout-dashboard",
	IDFilter:     "funnel",
}

// LucideName returns the Lucide icon name for an icon identifier.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the icon ID is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return defaultLucideName
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// Lucide returns an icon renderer referencing the sprite symbol for id.
//
// The result has the shape card title rows expect: it receives the class
// computed by their style sheet.
func Lucide(id ID) func(class string) templ.Component {
	symbol := LucideSymbolID(LucideNameOrDefault(id))
	return func(class string) templ.Component {
		return lucideIcon(id, strings.TrimSpace(class), symbol)
	}
}

func spriteNames() []string {
	return slices.Sorted(maps.Keys(lucideSymbols))
}
