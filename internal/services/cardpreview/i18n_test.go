package cardpreview

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{name: "default", target: "/", want: "en-US"},
		{name: "query wins over header", target: "/?lang=en-US", accept: "pt-BR", want: "en-US"},
		{name: "query portuguese", target: "/?lang=pt", want: "pt-BR"},
		{name: "invalid query falls back to header", target: "/?lang=%21%21", accept: "pt-BR", want: "pt-BR"},
		{name: "unsupported language", target: "/", accept: "ja", want: "en-US"},
		{name: "malformed header", target: "/", accept: ";;;", want: "en-US"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			if got := resolveTag(req).String(); got != tt.want {
				t.Fatalf("resolveTag() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	t.Parallel()

	if got := resolveTag(nil).String(); got != "en-US" {
		t.Fatalf("resolveTag(nil) = %q, want %q", got, "en-US")
	}
}

func TestTranslationsShareKeys(t *testing.T) {
	t.Parallel()

	base := translations[supportedTags[0]]
	for _, tag := range supportedTags[1:] {
		messages := translations[tag]
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Errorf("locale %s missing key %q", tag, key)
			}
		}
		if len(messages) != len(base) {
			t.Errorf("locale %s has %d keys, want %d", tag, len(messages), len(base))
		}
	}
}

func TestLocalizerFormatsArguments(t *testing.T) {
	t.Parallel()

	loc := newLocalizer(supportedTags[1])
	if got := loc.Text("card.body.range", "7 dias"); got != "Exibindo 7 dias" {
		t.Fatalf("Text() = %q, want %q", got, "Exibindo 7 dias")
	}
}
