package ui

import (
	"strings"
	"testing"
)

func TestIconUsesSpriteForUnknownGlyph(t *testing.T) {
	got := Icon("Phone", 13, 13, IconOptions{Class: "mt-1"}).String()

	for _, want := range []string{`class="mt-1"`, `width="13"`, `height="13"`, `<use href="/sprites.svg#Phone"></use>`} {
		if !strings.Contains(got, want) {
			t.Fatalf("icon markup missing %q: %s", want, got)
		}
	}
}

func TestIconCustomSpriteAndEscaping(t *testing.T) {
	got := Icon(`x"><script>`, 0, 0, IconOptions{SpriteURL: "/assets/icons.svg"}).String()
	if strings.Contains(got, "<script>") {
		t.Fatalf("icon id was not escaped: %s", got)
	}
	if !strings.Contains(got, `href="/assets/icons.svg#x&#34;&gt;&lt;script&gt;"`) {
		t.Fatalf("unexpected sprite reference: %s", got)
	}
}

func TestIconInlinesBuiltinGlyph(t *testing.T) {
	got := Icon(IconDeco, 60, 20, IconOptions{StrokeWidth: 0.01}).String()
	if strings.Contains(got, "<use") {
		t.Fatalf("built-in glyph should be inlined: %s", got)
	}
	if !strings.Contains(got, `stroke-width="0.01"`) || !strings.Contains(got, `viewBox="0 0 60 20"`) {
		t.Fatalf("unexpected deco icon: %s", got)
	}
}

func TestIconBlankID(t *testing.T) {
	if got := Icon("  ", 10, 10, IconOptions{}); got != "" {
		t.Fatalf("expected empty fragment, got %q", got)
	}
}

func TestRegisterGlyphSanitizes(t *testing.T) {
	if err := RegisterGlyph("TestCart", "0 0 10 10", `<path d="M0 0h10v10z"></path><script>alert(1)</script>`); err != nil {
		t.Fatalf("register glyph: %v", err)
	}
	got := Icon("TestCart", 10, 10, IconOptions{}).String()
	if strings.Contains(got, "script") {
		t.Fatalf("glyph body not sanitised: %s", got)
	}
	if !strings.Contains(got, `<path d="M0 0h10v10z">`) {
		t.Fatalf("glyph path missing: %s", got)
	}

	if err := RegisterGlyph("Empty", "", `<script>alert(1)</script>`); err == nil {
		t.Fatalf("expected error for glyph without markup")
	}
	if err := RegisterGlyph(" ", "", `<path d="M0 0"></path>`); err == nil {
		t.Fatalf("expected error for blank id")
	}
}

func TestTextClasses(t *testing.T) {
	cases := []struct {
		variant, tone string
		extra         []string
		want          string
	}{
		{VariantTextFooter, ToneBlack, nil, "font-text-footer text-text-footer text-black"},
		{VariantHeadingFooter, ToneBlack, []string{"mb-[15px]  font-semibold"}, "font-heading-footer text-heading-footer text-black mb-[15px] font-semibold"},
		{"caption", "", nil, "text-caption"},
		{"", "", []string{"", "block"}, "block"},
	}
	for _, tc := range cases {
		if got := TextClasses(tc.variant, tc.tone, tc.extra...); got != tc.want {
			t.Fatalf("TextClasses(%q, %q, %v) = %q, want %q", tc.variant, tc.tone, tc.extra, got, tc.want)
		}
	}
}
