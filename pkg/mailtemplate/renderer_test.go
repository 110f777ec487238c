package mailtemplate

import (
	"strings"
	"testing"
)

func TestRenderSubstitutesTokens(t *testing.T) {
	r := NewRenderer(DefaultRules())
	ctx := Context{Name: "Ann", WebsiteURL: "https://w.example", CoupleNames: "Liam & Mia"}

	got := r.Render("Hi {name}, visit {website_url}", ctx)
	want := "Hi Ann, visit https://w.example"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderTokenCoverage(t *testing.T) {
	r := NewRenderer(DefaultRules())
	ctx := Context{Name: "Bo", WebsiteURL: "https://w.example", CoupleNames: "Ava & Max"}

	got := r.Render("Dear {name}, {name}! RSVP at {website_url} or {website_url}.", ctx)
	if strings.Contains(got, "{name}") || strings.Contains(got, "{website_url}") {
		t.Fatalf("raw token survived rendering: %q", got)
	}
}

func TestRenderIsIdempotentAcrossCalls(t *testing.T) {
	r := NewRenderer(DefaultRules())
	ctx := Context{Name: "Ann", WebsiteURL: "https://w.example", CoupleNames: "Ava & Max"}
	template := "Hi {name}, love Liam & Mia, see liam-mia-wedding.lovable.app"

	first := r.Render(template, ctx)
	second := r.Render(template, ctx)
	if first != second {
		t.Fatalf("Render not deterministic: %q vs %q", first, second)
	}
}

func TestRenderWebsiteURLFallback(t *testing.T) {
	r := NewRenderer(DefaultRules())
	got := r.Render("RSVP at {website_url}", Context{Name: "Ann"})
	if strings.Contains(got, "{website_url}") {
		t.Fatalf("raw token left without configured URL: %q", got)
	}
	if !strings.Contains(got, "our wedding website") {
		t.Fatalf("fallback phrase missing: %q", got)
	}
}

func TestRenderLegacyCoupleNames(t *testing.T) {
	r := NewRenderer(DefaultRules())
	ctx := Context{Name: "Ann", WebsiteURL: "https://w.example", CoupleNames: "Ava & Max"}

	tests := []struct {
		name     string
		template string
	}{
		{"ampersand", "With love, Liam & Mia"},
		{"and", "With love, Liam and Mia"},
		{"plus", "With love, Liam + Mia"},
		{"mixed case", "with love, LIAM AND MIA"},
		{"extra spaces", "With love, Liam  &  Mia"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Render(tt.template, ctx)
			if !strings.Contains(got, "Ava & Max") {
				t.Fatalf("couple names not rewritten: %q", got)
			}
			if strings.Contains(strings.ToLower(got), "liam") {
				t.Fatalf("legacy couple reference survived: %q", got)
			}
		})
	}
}

func TestRenderLegacyHosts(t *testing.T) {
	r := NewRenderer(DefaultRules())
	ctx := Context{Name: "Ann", WebsiteURL: "https://liamandmia.wedding", CoupleNames: "Liam & Mia"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			"full url",
			"RSVP: https://liam-mia-wedding.lovable.app",
			"RSVP: https://liamandmia.wedding",
		},
		{
			"http url",
			"RSVP: http://liam-mia-wedding.lovable.app",
			"RSVP: https://liamandmia.wedding",
		},
		{
			"bare host",
			"Find us at liam-mia-wedding.lovable.app today",
			"Find us at liamandmia.wedding today",
		},
		{
			"preview host",
			"See id-preview--liam-mia-wedding.lovable.app",
			"See liamandmia.wedding",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Render(tt.template, ctx); got != tt.want {
				t.Fatalf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderPassesUnknownTokens(t *testing.T) {
	r := NewRenderer(DefaultRules())
	got := r.Render("Hello {nickname}", Context{Name: "Ann", WebsiteURL: "https://w.example"})
	if got != "Hello {nickname}" {
		t.Fatalf("unknown token altered: %q", got)
	}
}

func TestToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unix newlines", "a\nb\nc", "a<br>b<br>c"},
		{"windows newlines", "a\r\nb", "a<br>b"},
		{"no newlines", "plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHTML(tt.in); got != tt.want {
				t.Fatalf("ToHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
