package cardpreview

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/cardrow/internal/platform/theme"
	"github.com/louisbranch/cardrow/internal/services/shared/htmx"
	"github.com/louisbranch/cardrow/internal/services/shared/layout"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	h, err := NewHandler(Config{Theme: theme.Default(), Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewHandler() = %v", err)
	}
	return h
}

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestPageRendersEveryCard(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	styles := layout.Styles(theme.Default())
	for _, want := range []string{
		`<html lang="en-US">`,
		"<title>Cards</title>",
		"." + styles.TitleRow.Class + "{",
		`id="lucide-cpu"`,
		`<section id="card-devices" class="card">`,
		`<section id="card-gateways" class="card">`,
		`<section id="card-alerts" class="card">`,
		">Devices</span>",
		">Gateways</span>",
		">Alerts</span>",
		`<select name="range"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in page body", want)
		}
	}
	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Fatal("expected request id header")
	}
}

func TestCardFragmentForHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/cards/devices?range=7d", nil)
	req.Header.Set(htmx.RequestHeaderKey, "true")
	rr := serve(t, newTestHandler(t), req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, `<title>Devices</title><section id="card-devices" class="card">`) {
		t.Fatalf("unexpected fragment %q", body)
	}
	if strings.Contains(body, "<html") {
		t.Fatalf("expected fragment without document, got %q", body)
	}
	if !strings.Contains(body, `<option value="7d" selected>`) {
		t.Fatalf("expected 7d selected, got %q", body)
	}
	if !strings.Contains(body, "Showing Last 7 days") {
		t.Fatalf("expected range body text, got %q", body)
	}
	if strings.Index(body, ">Devices</span>") > strings.Index(body, "<select") {
		t.Fatalf("expected label before filter, got %q", body)
	}
}

func TestCardFullPageWithoutHTMX(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), httptest.NewRequest(http.MethodGet, "/cards/gateways", nil))
	body := rr.Body.String()
	if !strings.HasPrefix(body, "<!doctype html>") {
		t.Fatalf("expected full document, got %q", body)
	}
	if strings.Contains(body, `id="card-devices"`) {
		t.Fatalf("expected only the requested card, got %q", body)
	}
	if !strings.Contains(body, `<use href="#lucide-router"></use>`) {
		t.Fatalf("expected gateway icon, got %q", body)
	}
}

func TestCardWithoutIconOrFilter(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/cards/alerts", nil)
	req.Header.Set(htmx.RequestHeaderKey, "true")
	body := serve(t, newTestHandler(t), req).Body.String()
	if strings.Contains(body, "<svg") || strings.Contains(body, "<select") {
		t.Fatalf("expected label-only title row, got %q", body)
	}
	if !strings.Contains(body, ">Alerts</span>") {
		t.Fatalf("expected alerts label, got %q", body)
	}
}

func TestUnknownRangeFallsBackToDay(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/cards/devices?range=year", nil)
	req.Header.Set(htmx.RequestHeaderKey, "true")
	body := serve(t, newTestHandler(t), req).Body.String()
	if !strings.Contains(body, `<option value="24h" selected>`) {
		t.Fatalf("expected 24h selected, got %q", body)
	}
}

func TestLocalizedLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		accept string
	}{
		{name: "query param", target: "/?lang=pt-BR"},
		{name: "accept language", target: "/", accept: "pt;q=0.9, en;q=0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			body := serve(t, newTestHandler(t), req).Body.String()
			for _, want := range []string{`<html lang="pt-BR">`, ">Dispositivos</span>", "Últimas 24 horas"} {
				if !strings.Contains(body, want) {
					t.Fatalf("expected %q in body", want)
				}
			}
		})
	}
}

func TestUnknownCardIsNotFound(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	for _, target := range []string{"/cards/missing", "/cards/missing/text", "/nope"} {
		rr := serve(t, h, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want %d", target, rr.Code, http.StatusNotFound)
		}
	}
}

func TestNonGetIsMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), httptest.NewRequest(http.MethodPost, "/cards/devices", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
}

func TestCardText(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := serve(t, h, httptest.NewRequest(http.MethodGet, "/cards/devices/text?width=40&range=1h", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	lines := strings.Split(rr.Body.String(), "\n")
	if !strings.Contains(lines[0], "Devices") || !strings.HasSuffix(lines[0], "[Last hour]") {
		t.Fatalf("unexpected title line %q", lines[0])
	}
	if lines[1] != "Showing Last hour" {
		t.Fatalf("unexpected body line %q", lines[1])
	}

	bad := serve(t, h, httptest.NewRequest(http.MethodGet, "/cards/devices/text?width=wide", nil))
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", bad.Code, http.StatusBadRequest)
	}
}

func TestRequestsAreLogged(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h, err := NewHandler(Config{Theme: theme.Default(), Logger: log.New(&logs, "", 0)})
	if err != nil {
		t.Fatalf("NewHandler() = %v", err)
	}
	serve(t, h, httptest.NewRequest(http.MethodGet, "/cards/alerts", nil))
	if !strings.Contains(logs.String(), "method=GET path=/cards/alerts status=200 route=/cards/{name} card=alerts") {
		t.Fatalf("unexpected logs %q", logs.String())
	}
}

func TestPageListsStyleClasses(t *testing.T) {
	t.Parallel()

	body := serve(t, newTestHandler(t), httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	styles := layout.Styles(theme.Default())
	want := "<summary>Style classes</summary><dl>" +
		"<dt>" + layout.KeyCardTitleIcon + "</dt><dd>" + styles.TitleIcon.Class + "</dd>" +
		"<dt>" + layout.KeyCardTitleRow + "</dt><dd>" + styles.TitleRow.Class + "</dd></dl>"
	if !strings.Contains(body, want) {
		t.Fatalf("expected style class legend %q in page body", want)
	}
}

func TestIconCatalogIsServedAsMarkdown(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), httptest.NewRequest(http.MethodGet, "/icons.md", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/markdown; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, "# Icon Catalog\n") || !strings.Contains(body, "| Icon ID | Lucide | Name | Description |") {
		t.Fatalf("unexpected catalog %q", body)
	}
}

func TestHeadIsAllowed(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), httptest.NewRequest(http.MethodHead, "/cards/devices", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestNewHandlerRejectsInvalidTheme(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	th.SpacingUnit = -1
	if _, err := NewHandler(Config{Theme: th}); !errors.Is(err, theme.ErrInvalidTheme) {
		t.Fatalf("NewHandler() = %v, want ErrInvalidTheme", err)
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{HTTPAddr: " ", Theme: theme.Default()}); err == nil {
		t.Fatal("expected missing address error")
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(Config{HTTPAddr: "127.0.0.1:0", Theme: theme.Default(), Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewServer() = %v", err)
	}
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestNilServerIsSafe(t *testing.T) {
	t.Parallel()

	var srv *Server
	srv.Close()
	if srv.Addr() != "" {
		t.Fatal("expected empty address for nil server")
	}
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected nil server error")
	}
}
