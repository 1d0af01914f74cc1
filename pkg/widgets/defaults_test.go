package widgets

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-footer/pkg/model"
)

func TestPaymentSystemsRendersBadges(t *testing.T) {
	blob := model.Blob{
		"title": "Pague com",
		"items": []any{
			map[string]any{"label": "Visa", "image": "/img/visa.svg"},
			map[string]any{"label": "Pix", "icon": "Pix"},
			"Boleto",
			42,
		},
	}

	out, err := PaymentSystems(context.Background(), blob, Env{SpriteURL: "/icons.svg"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		`class="footer-payment-systems flex flex-col gap-2.5 pt-5"`,
		`>Pague com</span>`,
		`<img src="/img/visa.svg" alt="Visa" loading="lazy">`,
		`<use href="/icons.svg#Pix"></use>`,
		`<li class="flex items-center">Boleto</li>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "<li") != 3 {
		t.Fatalf("expected 3 badges, got:\n%s", got)
	}
}

func TestSocialNetworksLinksOpenExternally(t *testing.T) {
	blob := model.Blob{"items": []any{
		map[string]any{"label": "Instagram", "href": "https://instagram.com/store", "icon": "Instagram"},
	}}
	out, err := SocialNetworks(context.Background(), blob, Env{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		`href="https://instagram.com/store"`,
		`aria-label="Instagram"`,
		`target="_blank"`,
		`rel="noopener noreferrer"`,
		`>Follow us</span>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSecuritySystemsEscapesLabels(t *testing.T) {
	blob := model.Blob{"title": "", "items": []any{"<b>Safe</b>"}}
	out, err := SecuritySystems(context.Background(), blob, Env{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out.String(), "<b>") {
		t.Fatalf("label should be escaped: %s", out)
	}
}

func TestNewsletterDefaults(t *testing.T) {
	out, err := Newsletter(context.Background(), nil, Env{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := out.String()
	for _, want := range []string{`action="/newsletter"`, `type="email"`, `name="email"`, `>Subscribe</button>`, " required"} {
		if !strings.Contains(got, want) {
			t.Fatalf("newsletter missing %q:\n%s", want, got)
		}
	}
}

func TestNewsletterCustomConfig(t *testing.T) {
	out, err := Newsletter(context.Background(), model.Blob{"action": "/api/subscribe", "buttonText": "Cadastrar"}, Env{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), `action="/api/subscribe"`) || !strings.Contains(out.String(), ">Cadastrar<") {
		t.Fatalf("custom config ignored: %s", out)
	}
}
