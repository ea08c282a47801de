package cardpreview

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/cardrow/internal/platform/icons"
	"github.com/louisbranch/cardrow/internal/platform/theme"
	"github.com/louisbranch/cardrow/internal/services/cardpreview/httpx"
	"github.com/louisbranch/cardrow/internal/services/shared/htmx"
)

const (
	defaultTextWidth = 48
	maxTextWidth     = 200
)

type handlers struct {
	theme  theme.Theme
	cards  []Card
	logger *log.Logger
}

func (h handlers) view(r *http.Request) view {
	return view{
		theme: h.theme,
		loc:   resolveLocalizer(r),
		rng:   ParseTimeRange(r.URL.Query().Get(rangeParam)),
	}
}

func (h handlers) page(w http.ResponseWriter, r *http.Request) {
	v := h.view(r)
	full := v.pageComponent(h.cards)
	if err := htmx.RenderPage(w, r, htmx.Page{Full: full, Title: v.loc.Text("page.title")}); err != nil {
		h.logger.Printf("render page path=%s err=%v", r.URL.Path, err)
	}
}

func (h handlers) card(w http.ResponseWriter, r *http.Request) {
	card, err := findCard(h.cards, r.PathValue(httpx.CardPathValue))
	if errors.Is(err, ErrUnknownCard) {
		http.NotFound(w, r)
		return
	}
	v := h.view(r)
	page := htmx.Page{
		Fragment: v.cardComponent(card),
		Full:     v.pageComponent([]Card{card}),
		Title:    v.loc.Text(card.TitleKey),
	}
	if err := htmx.RenderPage(w, r, page); err != nil {
		h.logger.Printf("render card name=%s err=%v", card.Name, err)
	}
}

func (h handlers) cardText(w http.ResponseWriter, r *http.Request) {
	card, err := findCard(h.cards, r.PathValue(httpx.CardPathValue))
	if errors.Is(err, ErrUnknownCard) {
		http.NotFound(w, r)
		return
	}
	width, err := parseWidth(r.URL.Query().Get("width"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, h.view(r).cardText(card, width)); err != nil {
		h.logger.Printf("write card text name=%s err=%v", card.Name, err)
	}
}

// iconCatalog serves the markdown table of every catalog icon and its glyph.
func (h handlers) iconCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, icons.CatalogMarkdown()); err != nil {
		h.logger.Printf("write icon catalog path=%s err=%v", r.URL.Path, err)
	}
}

var errInvalidWidth = errors.New("width must be an integer between 1 and 200")

func parseWidth(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultTextWidth, nil
	}
	width, err := strconv.Atoi(value)
	if err != nil || width < 1 || width > maxTextWidth {
		return 0, errInvalidWidth
	}
	return width, nil
}
