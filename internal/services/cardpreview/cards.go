package cardpreview

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/cardrow/internal/platform/icons"
	"github.com/louisbranch/cardrow/internal/platform/theme"
	"github.com/louisbranch/cardrow/internal/services/shared/layout"
	"github.com/louisbranch/cardrow/internal/services/shared/termlayout"
)

// ErrUnknownCard is returned when a card name is not registered.
var ErrUnknownCard = errors.New("unknown card")

// TimeRange is a dropdown filter value.
type TimeRange string

const (
	RangeHour  TimeRange = "1h"
	RangeDay   TimeRange = "24h"
	RangeWeek  TimeRange = "7d"
	rangeParam           = "range"
)

var timeRanges = []TimeRange{RangeHour, RangeDay, RangeWeek}

// ParseTimeRange returns the range named by value, falling back to RangeDay.
func ParseTimeRange(value string) TimeRange {
	value = strings.TrimSpace(value)
	for _, r := range timeRanges {
		if string(r) == value {
			return r
		}
	}
	return RangeDay
}

// Card describes one preview card.
type Card struct {
	Name     string
	TitleKey string
	// Icon is empty for cards without an icon.
	Icon icons.ID
	// Glyph is the icon used by terminal output.
	Glyph string
	// Filterable cards render a time range dropdown in their title row.
	Filterable bool
}

// DefaultCards returns the cards shown on the preview page in display order.
func DefaultCards() []Card {
	return []Card{
		{Name: "devices", TitleKey: "card.devices.title", Icon: icons.IDDevices, Glyph: "▣", Filterable: true},
		{Name: "gateways", TitleKey: "card.gateways.title", Icon: icons.IDGateway, Glyph: "◉"},
		{Name: "alerts", TitleKey: "card.alerts.title"},
	}
}

func findCard(cards []Card, name string) (Card, error) {
	for _, card := range cards {
		if card.Name == name {
			return card, nil
		}
	}
	return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, name)
}

// view carries the per-request inputs shared by every card.
type view struct {
	theme theme.Theme
	loc   Localizer
	rng   TimeRange
}

func (v view) cardComponent(card Card) templ.Component {
	label := v.loc.Text(card.TitleKey)
	var icon layout.Icon
	if card.Icon != "" {
		icon = icons.Lucide(card.Icon)
	}

	var title templ.Component
	if card.Filterable {
		title = layout.TitleFilterRow(v.theme, layout.TitleFilterRowProps{
			Icon:   icon,
			Label:  label,
			Filter: func() templ.Component { return v.rangeDropdown(card) },
		})
	} else {
		title = layout.TitleRow(v.theme, layout.TitleRowProps{Icon: icon, Label: label})
	}
	body := v.loc.Text("card.body.range", v.loc.Text(rangeKey(v.rng)))
	return cardSection(cardElementID(card), title, body)
}

type rangeOption struct {
	Value    TimeRange
	Label    string
	Selected bool
}

type rangeSelectData struct {
	Label string
	// URL reloads the card fragment in the current language.
	URL string
	// Target is the CSS selector of the card element to replace.
	Target  string
	Options []rangeOption
}

func (v view) rangeDropdown(card Card) templ.Component {
	d := rangeSelectData{
		Label:   v.loc.Text("filter.range.label"),
		URL:     "/cards/" + url.PathEscape(card.Name) + "?lang=" + url.QueryEscape(v.loc.Lang()),
		Target:  "#" + cardElementID(card),
		Options: make([]rangeOption, 0, len(timeRanges)),
	}
	for _, r := range timeRanges {
		d.Options = append(d.Options, rangeOption{Value: r, Label: v.loc.Text(rangeKey(r)), Selected: r == v.rng})
	}
	return rangeSelect(d)
}

func (v view) cardText(card Card, width int) string {
	label := v.loc.Text(card.TitleKey)
	var title string
	if card.Filterable {
		title = termlayout.TitleFilterRow(v.theme, width, termlayout.TitleFilterRowProps{
			Icon:   card.Glyph,
			Label:  label,
			Filter: func() string { return "[" + v.loc.Text(rangeKey(v.rng)) + "]" },
		})
	} else {
		title = termlayout.TitleRow(v.theme, termlayout.TitleRowProps{Icon: card.Glyph, Label: label})
	}
	return title + "\n" + v.loc.Text("card.body.range", v.loc.Text(rangeKey(v.rng))) + "\n"
}

func rangeKey(r TimeRange) string {
	return "filter.range." + string(r)
}

// cardElementID keeps ids usable as bare CSS selectors: characters outside
// [A-Za-z0-9_-] become underscores.
func cardElementID(card Card) string {
	return "card-" + strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, card.Name)
}
