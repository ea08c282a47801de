package layout

import (
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"github.com/louisbranch/cardrow/internal/platform/theme"
)

// Style keys produced by Styles.
const (
	KeyCardTitleRow  = "cardTitleRow"
	KeyCardTitleIcon = "cardTitleIcon"
)

const cardTitleMinHeight = "36px"

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a class name with its declarations.
type Rule struct {
	Class        string
	Declarations []Declaration
}

// StyleSheet holds the rules used by the card title rows.
type StyleSheet struct {
	TitleRow  Rule
	TitleIcon Rule
}

// Styles derives the card title style sheet from a theme.
//
// Class names carry a hash of their declarations, so the same theme always
// produces the same classes and distinct themes never share one.
func Styles(th theme.Theme) StyleSheet {
	return StyleSheet{
		TitleRow: newRule("cardrow-title-row", []Declaration{
			{Property: "margin-bottom", Value: th.Spacing(1)},
			{Property: "min-height", Value: cardTitleMinHeight},
		}),
		TitleIcon: newRule("cardrow-title-icon", []Declaration{
			{Property: "fill", Value: th.Palette.Primary.Comet},
			{Property: "margin-right", Value: th.Spacing(1)},
		}),
	}
}

// Class returns the class name for a style key, or "" when the key is unknown.
func (s StyleSheet) Class(key string) string {
	switch key {
	case KeyCardTitleRow:
		return s.TitleRow.Class
	case KeyCardTitleIcon:
		return s.TitleIcon.Class
	default:
		return ""
	}
}

// Classes returns the style key to class name mapping.
func (s StyleSheet) Classes() map[string]string {
	return map[string]string{
		KeyCardTitleRow:  s.TitleRow.Class,
		KeyCardTitleIcon: s.TitleIcon.Class,
	}
}

// CSS renders every rule in a stable order.
func (s StyleSheet) CSS() string {
	var b strings.Builder
	for _, rule := range []Rule{s.TitleRow, s.TitleIcon} {
		b.WriteString(rule.css())
		b.WriteByte('\n')
	}
	return b.String()
}

func newRule(prefix string, decls []Declaration) Rule {
	h := fnv.New32a()
	for _, d := range decls {
		_, _ = io.WriteString(h, d.Property+":"+d.Value+";")
	}
	return Rule{
		Class:        fmt.Sprintf("%s-%08x", prefix, h.Sum32()),
		Declarations: decls,
	}
}

func (r Rule) css() string {
	parts := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		parts = append(parts, sanitizeCSS(d.Property)+":"+sanitizeCSS(d.Value))
	}
	return "." + r.Class + "{" + strings.Join(parts, ";") + "}"
}

// sanitizeCSS drops characters that would end a declaration or the element.
func sanitizeCSS(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '"', '\'', '\\':
			return -1
		}
		return r
	}, s)
}
