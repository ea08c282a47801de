package icons

import (
	"context"
	"strings"
	"testing"
)

func TestLucideNamesHaveSpriteSymbols(t *testing.T) {
	for id, name := range lucideIconNames {
		if _, ok := lucideSymbols[name]; !ok {
			t.Errorf("icon %s maps to %q which has no sprite symbol", id, name)
		}
	}
}

func TestLucideNameOrDefault(t *testing.T) {
	if got := LucideNameOrDefault(IDGateway); got != "router" {
		t.Fatalf("LucideNameOrDefault(gateway) = %q, want %q", got, "router")
	}
	if got := LucideNameOrDefault(ID("unknown")); got != "sparkle" {
		t.Fatalf("LucideNameOrDefault(unknown) = %q, want %q", got, "sparkle")
	}
}

func TestLucideRendersClassAndSymbol(t *testing.T) {
	var b strings.Builder
	if err := Lucide(IDDevices)("card-icon").Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `class="card-icon"`) {
		t.Fatalf("expected class attribute, got %q", got)
	}
	if !strings.Contains(got, `<use href="#lucide-cpu"></use>`) {
		t.Fatalf("expected cpu symbol reference, got %q", got)
	}
}

func TestLucideOmitsEmptyClass(t *testing.T) {
	var b strings.Builder
	if err := Lucide(IDAlert)(" ").Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if strings.Contains(b.String(), "class=") {
		t.Fatalf("expected no class attribute, got %q", b.String())
	}
}

func TestLucideEscapesIconID(t *testing.T) {
	var b strings.Builder
	if err := Lucide(ID(`x"><script>`))("card-icon").Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	got := b.String()
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected escaped data-icon, got %q", got)
	}
	if !strings.Contains(got, `<use href="#lucide-sparkle"></use>`) {
		t.Fatalf("expected default symbol for unknown id, got %q", got)
	}
}

func renderSprite(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	if err := Sprite().Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	return b.String()
}

func TestSpriteIsStable(t *testing.T) {
	first := renderSprite(t)
	if first != renderSprite(t) {
		t.Fatal("expected sprite output to be stable")
	}
	if got := strings.Count(first, "<symbol "); got != len(lucideSymbols) {
		t.Fatalf("sprite symbols = %d, want %d", got, len(lucideSymbols))
	}
	if !strings.HasPrefix(first, `<svg xmlns="http://www.w3.org/2000/svg" style="display:none"><symbol id="`) {
		t.Fatalf("unexpected sprite prefix %q", first)
	}
	if !strings.Contains(first, `<symbol id="lucide-router" viewBox="0 0 24 24"`) {
		t.Fatalf("expected router symbol in sprite")
	}
}
