package nodes_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/render"
	"github.com/goliatone/go-footer/pkg/renderers/nodes"
	"github.com/goliatone/go-footer/pkg/renderers/vanilla"
	"github.com/goliatone/go-footer/pkg/testsupport"
	"github.com/goliatone/go-footer/pkg/widgets"
)

func TestRenderer_Contract(t *testing.T) {
	testsupport.RendererContract(t, nodes.New())
}

func TestRenderer_MatchesVanillaStructure(t *testing.T) {
	vanillaRenderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new vanilla: %v", err)
	}
	props := testsupport.LoadProps(t, "footer.yaml")

	fromNodes, err := nodes.New().Render(testsupport.Context(), props, render.RenderOptions{})
	if err != nil {
		t.Fatalf("nodes render: %v", err)
	}
	fromTemplates, err := vanillaRenderer.Render(testsupport.Context(), props, render.RenderOptions{})
	if err != nil {
		t.Fatalf("vanilla render: %v", err)
	}

	a := testsupport.ParseHTML(t, fromNodes)
	b := testsupport.ParseHTML(t, fromTemplates)
	for _, tag := range []string{"footer", "ul", "li", "a", "svg", "form"} {
		na := len(testsupport.FindAll(a, testsupport.ByTag(tag)))
		nb := len(testsupport.FindAll(b, testsupport.ByTag(tag)))
		if na != nb {
			t.Fatalf("<%s> count differs: nodes=%d vanilla=%d", tag, na, nb)
		}
	}
}

func TestRenderer_WidgetErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	reg := widgets.NewDefault().Clone()
	reg.MustRegister(widgets.WidgetNewsletter, func(context.Context, model.Blob, widgets.Env) (model.HTML, error) {
		return "", boom
	})

	_, err := nodes.New().Render(testsupport.Context(), model.Props{}, render.RenderOptions{Widgets: reg})
	if !errors.Is(err, boom) {
		t.Fatalf("expected widget error, got %v", err)
	}
}

func TestFooter_EmptyView(t *testing.T) {
	var buf bytes.Buffer
	if err := nodes.Footer(render.View{FooterClass: render.FooterClass}).Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := testsupport.ParseHTML(t, buf.Bytes())
	footer := testsupport.FindFirst(doc, testsupport.ByTag("footer"))
	if got, _ := testsupport.Attr(footer, "class"); got != render.FooterClass {
		t.Fatalf("footer class = %q", got)
	}
	if _, ok := testsupport.Attr(footer, "style"); ok {
		t.Fatalf("style attribute should be omitted without a theme")
	}
}
