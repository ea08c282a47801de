// Package htmx renders pages that are either swapped in by HTMX or loaded in full.
package htmx

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

// Page is one response with both render paths.
type Page struct {
	// Fragment is written for HTMX requests. Nil falls back to Full.
	Fragment templ.Component
	// Full is written for regular navigation. Nil falls back to Fragment.
	Full templ.Component
	// Title is prepended to HTMX responses that carry no <title> of their own.
	Title string
	// StatusCode defaults to 200.
	StatusCode int
}

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage renders the fragment for HTMX requests and the full page otherwise.
//
// Output is buffered, so a render failure produces a 500 without a partial body.
func RenderPage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return fmt.Errorf("response writer is required")
	}
	partial := IsHTMXRequest(r)
	target := page.Full
	if partial || target == nil {
		target = page.Fragment
	}
	if target == nil {
		target = page.Full
	}
	if target == nil {
		return fmt.Errorf("page has nothing to render")
	}

	var body bytes.Buffer
	if err := target.Render(requestContext(r), &body); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("render page: %w", err)
	}
	out := body.Bytes()
	if partial {
		out = addTitleIfMissing(out, TitleTag(page.Title))
	}

	status := page.StatusCode
	if status <= 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(out)
	return err
}

func addTitleIfMissing(body []byte, title string) []byte {
	if title == "" {
		return body
	}
	if bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		return body
	}
	return append([]byte(title), body...)
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
