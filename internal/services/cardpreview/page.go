package cardpreview

import (
	"maps"
	"slices"

	"github.com/a-h/templ"
	"github.com/louisbranch/cardrow/internal/services/shared/layout"
)

type styleClass struct {
	Key   string
	Class string
}

type pageData struct {
	Lang   string
	Title  string
	Styles layout.StyleSheet
	Cards  []templ.Component
	// StyleClasses lists the generated class behind each style key.
	StyleClasses []styleClass
	StylesTitle  string
}

// pageComponent renders the full preview document around cards.
func (v view) pageComponent(cards []Card) templ.Component {
	styles := layout.Styles(v.theme)
	d := pageData{
		Lang:        v.loc.Lang(),
		Title:       v.loc.Text("page.title"),
		Styles:      styles,
		Cards:       make([]templ.Component, 0, len(cards)),
		StylesTitle: v.loc.Text("page.styles.title"),
	}
	for _, card := range cards {
		d.Cards = append(d.Cards, v.cardComponent(card))
	}
	for _, key := range slices.Sorted(maps.Keys(styles.Classes())) {
		d.StyleClasses = append(d.StyleClasses, styleClass{Key: key, Class: styles.Class(key)})
	}
	return document(d)
}
