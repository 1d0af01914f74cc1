package widgets

import (
	"context"
	"strings"

	g "github.com/maragudk/gomponents"
	h "github.com/maragudk/gomponents/html"

	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/ui"
)

// Newsletter renders the sign-up form. Recognised keys: title, action,
// placeholder, buttonText.
// Defaults for missing keys go through env.T.
func Newsletter(_ context.Context, config model.Blob, env Env) (model.HTML, error) {
	title := blobStringOr(config, "title", env.T(KeyNewsletterTitle, "Sign up for our newsletter"))
	action := blobStringOr(config, "action", "/newsletter")
	placeholder := blobStringOr(config, "placeholder", env.T(KeyNewsletterPlaceholder, "Enter your email"))
	button := blobStringOr(config, "buttonText", env.T(KeyNewsletterButton, "Subscribe"))

	node := h.Div(
		h.Class("footer-newsletter w-full bg-newsletter p-2.5"),
		h.Div(
			h.Class("max-w-[1300px] mx-auto flex flex-col sm:flex-row items-center justify-between gap-4"),
			h.Span(h.Class(ui.TextClasses(ui.VariantHeadingFooter, ui.ToneBlack, "font-semibold")), g.Text(title)),
			g.El("form",
				h.Class("flex w-full sm:w-auto gap-2"),
				h.Action(action),
				h.Method("post"),
				h.Input(
					h.Class("flex-grow h-10 px-3 border border-lightgray"),
					h.Type("email"),
					h.Name("email"),
					h.Placeholder(placeholder),
					g.Attr("aria-label", placeholder),
					g.Attr("required"),
				),
				h.Button(h.Class("h-10 px-5 bg-black text-white"), h.Type("submit"), g.Text(button)),
			),
		),
	)
	return renderNode(node)
}

// Translation keys for built-in widget phrases.
const (
	KeyNewsletterTitle       = "footer.newsletter.title"
	KeyNewsletterPlaceholder = "footer.newsletter.placeholder"
	KeyNewsletterButton      = "footer.newsletter.button"
	KeyPaymentSystemsTitle   = "footer.payment_systems.title"
	KeySecuritySystemsTitle  = "footer.security_systems.title"
	KeySocialNetworksTitle   = "footer.social_networks.title"
)

// PaymentSystems renders the accepted payment methods row.
func PaymentSystems(_ context.Context, config model.Blob, env Env) (model.HTML, error) {
	return badgeRow("footer-payment-systems", env.T(KeyPaymentSystemsTitle, "Payment methods"), config, env, false)
}

// SecuritySystems renders the security seal row.
func SecuritySystems(_ context.Context, config model.Blob, env Env) (model.HTML, error) {
	return badgeRow("footer-security-systems", env.T(KeySecuritySystemsTitle, "Security"), config, env, false)
}

// SocialNetworks renders the social profile links. Links open in a new tab.
func SocialNetworks(_ context.Context, config model.Blob, env Env) (model.HTML, error) {
	return badgeRow("footer-social-networks", env.T(KeySocialNetworksTitle, "Follow us"), config, env, true)
}

func badgeRow(class, fallbackTitle string, config model.Blob, env Env, external bool) (model.HTML, error) {
	title := blobStringOr(config, "title", fallbackTitle)
	badges := blobBadges(config)

	items := make([]g.Node, 0, len(badges))
	for _, b := range badges {
		items = append(items, h.Li(h.Class("flex items-center"), badgeNode(b, env, external)))
	}

	node := h.Div(
		h.Class(ui.JoinClasses(class, "flex flex-col gap-2.5 pt-5")),
		g.If(title != "", h.Span(h.Class(ui.TextClasses(ui.VariantHeadingFooter, ui.ToneBlack, "font-semibold")), g.Text(title))),
		h.Ul(h.Class("flex flex-wrap items-center gap-2"), g.Group(items)),
	)
	return renderNode(node)
}

func badgeNode(b badge, env Env, external bool) g.Node {
	var content g.Node
	switch {
	case b.Image != "":
		content = h.Img(h.Src(b.Image), h.Alt(b.Label), g.Attr("loading", "lazy"))
	case b.Icon != "":
		content = g.Raw(ui.Icon(b.Icon, 24, 24, ui.IconOptions{SpriteURL: env.SpriteURL}).String())
	default:
		content = g.Text(b.Label)
	}

	if b.Href == "" {
		return content
	}
	return h.A(
		h.Href(b.Href),
		g.If(b.Label != "" && (b.Image != "" || b.Icon != ""), g.Attr("aria-label", b.Label)),
		g.If(external, g.Attr("target", "_blank")),
		g.If(external, g.Attr("rel", "noopener noreferrer")),
		content,
	)
}

func renderNode(node g.Node) (model.HTML, error) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		return "", err
	}
	return model.HTML(b.String()), nil
}
