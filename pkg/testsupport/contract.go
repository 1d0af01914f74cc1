package testsupport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-footer/pkg/content"
	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/render"
	"github.com/goliatone/go-footer/pkg/widgets"
)

// RendererContract checks the output shape every footer renderer must share.
func RendererContract(t *testing.T, renderer render.Renderer) {
	t.Helper()

	t.Run("sections per layout", func(t *testing.T) {
		rec := &WidgetRecorder{}
		out, err := renderer.Render(Context(), LoadProps(t, "footer.yaml"), render.RenderOptions{Widgets: RecordingWidgets(rec)})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		doc := ParseHTML(t, out)

		want := []string{"Help", "Atendimento", "Institucional"}
		for _, mode := range model.Layouts() {
			sections := LayoutSections(t, doc, mode)
			var got []string
			for _, section := range sections {
				got = append(got, SectionHeading(section))
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("%s sections mismatch (-want +got):\n%s", mode, diff)
			}

			widgetsBySection := [][]string{
				{widgets.WidgetPaymentSystems},
				{widgets.WidgetSocialNetworks},
				{widgets.WidgetSecuritySystems},
			}
			for i, section := range sections {
				if diff := cmp.Diff(widgetsBySection[i], SectionWidgets(section)); diff != "" {
					t.Fatalf("%s section %d widgets mismatch (-want +got):\n%s", mode, i, diff)
				}
			}
		}

		if got := len(rec.Named(widgets.WidgetNewsletter)); got != 1 {
			t.Fatalf("newsletter rendered %d times", got)
		}
		if FindFirst(doc, ByTag("footer")) == nil {
			t.Fatalf("footer landmark missing")
		}
	})

	t.Run("help example", func(t *testing.T) {
		rec := &WidgetRecorder{}
		out, err := renderer.Render(Context(), LoadProps(t, "footer.json"), render.RenderOptions{Widgets: RecordingWidgets(rec)})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		doc := ParseHTML(t, out)

		for _, mode := range model.Layouts() {
			sections := LayoutSections(t, doc, mode)
			if len(sections) != 1 || SectionHeading(sections[0]) != "Help" {
				t.Fatalf("%s: expected one Help section", mode)
			}
			items := SectionItems(sections[0])
			if len(items) != 1 {
				t.Fatalf("%s: expected one item, got %d", mode, len(items))
			}
			link := FindFirst(items[0], ByTag("a"))
			if href, _ := Attr(link, "href"); href != "/faq" || Text(link) != "FAQ" {
				t.Fatalf("%s: unexpected link %q -> %q", mode, Text(link), href)
			}
		}

		payments := rec.Named(widgets.WidgetPaymentSystems)
		if len(payments) != 2 {
			t.Fatalf("expected payment widget once per layout, got %d", len(payments))
		}
		for _, call := range payments {
			if diff := cmp.Diff(model.Blob{"foo": float64(1)}, call.Config); diff != "" {
				t.Fatalf("payment blob mismatch (-want +got):\n%s", diff)
			}
		}
		if len(rec.Named(widgets.WidgetSecuritySystems))+len(rec.Named(widgets.WidgetSocialNetworks)) != 0 {
			t.Fatalf("unflagged widgets rendered: %+v", rec.Calls())
		}
	})

	t.Run("item variants", func(t *testing.T) {
		props := model.Props{Sections: []model.Section{{
			Label: "Mixed",
			Children: []model.Item{
				model.LinkItem("<b>Sale</b> & more", "/sale"),
				model.IconLinkItem("Phone", model.Trusted("<strong>0800</strong>"), "tel:0800"),
				model.AdvancedItem(model.Trusted("<p class=\"note\">Hours</p>")),
				{Label: "no href"},
			},
		}}}
		out, err := renderer.Render(Context(), props, render.RenderOptions{Layouts: []model.LayoutMode{model.LayoutDesktop}})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		doc := ParseHTML(t, out)

		if FindFirst(doc, ByAttr("data-layout", string(model.LayoutMobile))) != nil {
			t.Fatalf("mobile layout should be skipped")
		}
		items := SectionItems(LayoutSections(t, doc, model.LayoutDesktop)[0])
		if len(items) != 4 {
			t.Fatalf("expected 4 items, got %d", len(items))
		}

		plain := FindFirst(items[0], ByTag("a"))
		if FindFirst(plain, ByTag("b")) != nil || Text(plain) != "<b>Sale</b> & more" {
			t.Fatalf("plain label not escaped: %q", Text(plain))
		}

		icon := FindFirst(items[1], ByTag("a"))
		if href, _ := Attr(icon, "href"); href != "tel:0800" {
			t.Fatalf("icon href = %q", href)
		}
		var kids []string
		for c := icon.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				kids = append(kids, c.Data)
			}
		}
		if diff := cmp.Diff([]string{"svg", "div"}, kids); diff != "" {
			t.Fatalf("icon anchor children mismatch (-want +got):\n%s", diff)
		}
		if FindFirst(icon, ByTag("strong")) == nil {
			t.Fatalf("icon label markup not inserted raw")
		}

		advanced := FindFirst(items[2], ByClass(render.AdvancedItemClass))
		if advanced == nil || FindFirst(advanced, ByClass("note")) == nil {
			t.Fatalf("advanced markup not inserted raw")
		}

		missing := FindFirst(items[3], ByTag("a"))
		if href, ok := Attr(missing, "href"); !ok || href != "" {
			t.Fatalf("missing href should render empty, got %q (present=%v)", href, ok)
		}
	})

	t.Run("shape decides variant", func(t *testing.T) {
		raw := []byte(`{"sections":[{"label":"Mixed","children":[
			{"kind":"link","text":"<em>rich</em>","label":"plain","href":"/c"},
			{"kind":"advanced","icon":"Phone","label":"call","href":"tel:1"}
		]}]}`)
		props, err := content.MustNewDocument(content.SourceFromFS("inline.json"), raw).Props(content.PolicyTrusted)
		if err != nil {
			t.Fatalf("props: %v", err)
		}
		out, err := renderer.Render(Context(), props, render.RenderOptions{Layouts: []model.LayoutMode{model.LayoutDesktop}})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		doc := ParseHTML(t, out)
		items := SectionItems(LayoutSections(t, doc, model.LayoutDesktop)[0])
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}

		advanced := FindFirst(items[0], ByClass(render.AdvancedItemClass))
		if advanced == nil || FindFirst(advanced, ByTag("em")) == nil {
			t.Fatalf("text item not rendered as raw markup")
		}
		if FindFirst(items[0], ByTag("a")) != nil {
			t.Fatalf("text item rendered a link")
		}
		if FindFirst(items[1], ByTag("svg")) == nil {
			t.Fatalf("icon item rendered without icon")
		}
	})

	t.Run("bottom bar", func(t *testing.T) {
		props := model.Props{Copyright: model.Trusted("<p>© Store</p>")}
		out, err := renderer.Render(Context(), props, render.RenderOptions{})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		doc := ParseHTML(t, out)

		copyright := FindFirst(doc, ByClass("text-copyright"))
		if copyright == nil || FindFirst(copyright, ByTag("p")) == nil {
			t.Fatalf("copyright markup missing")
		}
		credit := FindFirst(doc, ByAttr("aria-label", "powered by https://www.deco.cx"))
		if href, _ := Attr(credit, "href"); href != "https://www.deco.cx" {
			t.Fatalf("attribution link = %q", href)
		}
		if b := FindFirst(doc, ByTag("b")); Text(b) != "Time 19" {
			t.Fatalf("attribution team = %q", Text(b))
		}
		for _, mode := range model.Layouts() {
			if n := len(LayoutSections(t, doc, mode)); n != 0 {
				t.Fatalf("%s: expected no sections, got %d", mode, n)
			}
		}
	})
}
