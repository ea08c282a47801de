package cardpreview

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var tagMatcher = language.NewMatcher(supportedTags)

var translations = map[language.Tag]map[string]string{
	language.AmericanEnglish: {
		"page.title":          "Cards",
		"page.styles.title":   "Style classes",
		"card.devices.title":  "Devices",
		"card.gateways.title": "Gateways",
		"card.alerts.title":   "Alerts",
		"filter.range.label":  "Time range",
		"filter.range.1h":     "Last hour",
		"filter.range.24h":    "Last 24 hours",
		"filter.range.7d":     "Last 7 days",
		"card.body.range":     "Showing %s",
	},
	language.BrazilianPortuguese: {
		"page.title":          "Cartões",
		"page.styles.title":   "Classes de estilo",
		"card.devices.title":  "Dispositivos",
		"card.gateways.title": "Gateways",
		"card.alerts.title":   "Alertas",
		"filter.range.label":  "Período",
		"filter.range.1h":     "Última hora",
		"filter.range.24h":    "Últimas 24 horas",
		"filter.range.7d":     "Últimos 7 dias",
		"card.body.range":     "Exibindo %s",
	},
}

func init() {
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := message.SetString(tag, key, msg); err != nil {
				panic("register message " + key + ": " + err.Error())
			}
		}
	}
}

// Localizer formats preview strings for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

func newLocalizer(tag language.Tag) Localizer {
	return Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

// Lang returns the BCP 47 tag of the localizer.
func (l Localizer) Lang() string {
	return l.tag.String()
}

// Text returns the translation of key formatted with args.
func (l Localizer) Text(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// resolveLocalizer picks the language from the lang query parameter, then
// Accept-Language, then the default.
func resolveLocalizer(r *http.Request) Localizer {
	return newLocalizer(resolveTag(r))
}

func resolveTag(r *http.Request) language.Tag {
	if r == nil {
		return supportedTags[0]
	}
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, err := language.Parse(value); err == nil {
			return matchTags(tag)
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return matchTags(tags...)
		}
	}
	return supportedTags[0]
}

func matchTags(tags ...language.Tag) language.Tag {
	_, index, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return supportedTags[0]
	}
	return supportedTags[index]
}
