package htmx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type testComponent struct {
	body string
	err  error
}

func (c testComponent) Render(_ context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, c.body); err != nil {
		return err
	}
	return c.err
}

func TestIsHTMXRequest(t *testing.T) {
	t.Run("missing_request_is_not_htmx", func(t *testing.T) {
		t.Parallel()
		if got := IsHTMXRequest(nil); got {
			t.Fatalf("IsHTMXRequest(nil) = true, want false")
		}
	})

	t.Run("true_request_is_htmx", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/cards/devices", nil)
		r.Header.Set(RequestHeaderKey, "TRUE")
		if got := IsHTMXRequest(r); !got {
			t.Fatalf("IsHTMXRequest(request) = false, want true")
		}
	})
}

func TestTitleTag(t *testing.T) {
	t.Parallel()
	got := TitleTag(`Cards <Admin>`)
	want := "<title>Cards &lt;Admin&gt;</title>"
	if got != want {
		t.Fatalf("TitleTag(...) = %q, want %q", got, want)
	}
	if got := TitleTag("  "); got != "" {
		t.Fatalf("TitleTag(blank) = %q, want empty", got)
	}
}

func TestRenderPageForNonHTMXUsesFullRender(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/cards/devices", nil)
	w := httptest.NewRecorder()

	err := RenderPage(w, r, Page{
		Fragment: testComponent{body: "<section>fragment</section>"},
		Full:     testComponent{body: "<html><body>full</body></html>"},
		Title:    "Devices",
	})
	if err != nil {
		t.Fatalf("RenderPage() = %v", err)
	}
	if got := w.Body.String(); got != "<html><body>full</body></html>" {
		t.Fatalf("rendered body = %q, want full page body", got)
	}
	if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
}

func TestRenderPageForHTMXInjectsMissingTitle(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/cards/devices", nil)
	r.Header.Set(RequestHeaderKey, "true")
	w := httptest.NewRecorder()

	err := RenderPage(w, r, Page{
		Fragment: testComponent{body: "<section>fragment</section>"},
		Full:     testComponent{body: "<html>full</html>"},
		Title:    "Devices",
	})
	if err != nil {
		t.Fatalf("RenderPage() = %v", err)
	}
	if got := w.Body.String(); got != "<title>Devices</title><section>fragment</section>" {
		t.Fatalf("rendered body = %q", got)
	}
}

func TestRenderPageForHTMXPreservesExistingTitle(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/cards/devices", nil)
	r.Header.Set(RequestHeaderKey, "true")
	w := httptest.NewRecorder()

	err := RenderPage(w, r, Page{
		Fragment: testComponent{body: "<TITLE>Set</TITLE><section>fragment</section>"},
		Title:    "Injected",
	})
	if err != nil {
		t.Fatalf("RenderPage() = %v", err)
	}
	if strings.Contains(w.Body.String(), "Injected") {
		t.Fatalf("expected existing title preserved, got %q", w.Body.String())
	}
}

func TestRenderPageFallsBackBetweenPaths(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	if err := RenderPage(w, r, Page{Fragment: testComponent{body: "fragment"}}); err != nil {
		t.Fatalf("RenderPage() = %v", err)
	}
	if w.Body.String() != "fragment" {
		t.Fatalf("expected fragment fallback, got %q", w.Body.String())
	}

	hr := httptest.NewRequest(http.MethodGet, "/", nil)
	hr.Header.Set(RequestHeaderKey, "true")
	hw := httptest.NewRecorder()
	if err := RenderPage(hw, hr, Page{Full: testComponent{body: "full"}}); err != nil {
		t.Fatalf("RenderPage() = %v", err)
	}
	if hw.Body.String() != "full" {
		t.Fatalf("expected full fallback, got %q", hw.Body.String())
	}
}

func TestRenderPageUsesStatusCode(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	err := RenderPage(w, httptest.NewRequest(http.MethodGet, "/", nil), Page{
		Full:       testComponent{body: "missing"},
		StatusCode: http.StatusNotFound,
	})
	if err != nil {
		t.Fatalf("RenderPage() = %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRenderPageRenderErrorWritesInternalError(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	boom := errors.New("boom")
	err := RenderPage(w, httptest.NewRequest(http.MethodGet, "/", nil), Page{
		Full: testComponent{body: "<html>partial", err: boom},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("RenderPage() = %v, want %v", err, boom)
	}
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "partial") {
		t.Fatalf("expected no partial body, got %q", w.Body.String())
	}
}

func TestRenderPageRequiresComponent(t *testing.T) {
	t.Parallel()
	if err := RenderPage(httptest.NewRecorder(), nil, Page{}); err == nil {
		t.Fatal("expected error for empty page")
	}
}
