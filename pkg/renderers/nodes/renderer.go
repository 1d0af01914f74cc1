// Package nodes renders the footer as a gomponents node tree. The markup
// matches the vanilla template renderer element for element.
package nodes

import (
	"context"
	"fmt"
	"strings"

	g "github.com/maragudk/gomponents"
	h "github.com/maragudk/gomponents/html"

	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/render"
)

// Name is the registry identifier of the node renderer.
const Name = "nodes"

// Renderer serialises render.View through gomponents.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the node renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, props model.Props, opts render.RenderOptions) ([]byte, error) {
	view, err := render.BuildView(ctx, props, opts)
	if err != nil {
		return nil, fmt.Errorf("nodes renderer: %w", err)
	}

	var b strings.Builder
	if err := Footer(view).Render(&b); err != nil {
		return nil, fmt.Errorf("nodes renderer: write: %w", err)
	}
	return []byte(b.String()), nil
}

// Footer builds the node tree for a prepared view.
func Footer(view render.View) g.Node {
	layouts := make([]g.Node, 0, len(view.Layouts))
	for _, layout := range view.Layouts {
		layouts = append(layouts, Layout(layout))
	}

	return h.Footer(
		h.Class(view.FooterClass),
		g.If(view.Style != "", g.Attr("style", view.Style)),
		g.If(view.ThemeName != "", g.Attr("data-theme", view.ThemeName)),
		g.If(view.ThemeVariant != "", g.Attr("data-theme-variant", view.ThemeVariant)),
		raw(view.Newsletter),
		h.Div(h.Class(view.ContainerClass), g.Group(layouts)),
		bottomBar(view),
	)
}

// Layout renders one breakpoint's section list.
func Layout(layout render.LayoutView) g.Node {
	sections := make([]g.Node, 0, len(layout.Sections))
	for _, section := range layout.Sections {
		sections = append(sections, Section(section))
	}
	return h.Ul(
		h.Class(layout.Class),
		g.Attr("data-layout", string(layout.Mode)),
		g.Group(sections),
	)
}

// Section renders one labelled group with its items and widgets.
func Section(section render.SectionView) g.Node {
	items := make([]g.Node, 0, len(section.Items))
	for _, item := range section.Items {
		items = append(items, h.Li(h.Class(item.EntryClass), Item(item)))
	}
	attached := make([]g.Node, 0, len(section.Widgets))
	for _, widget := range section.Widgets {
		attached = append(attached, raw(widget.HTML))
	}

	return h.Li(
		h.Class(section.Class),
		h.Span(h.Class(section.HeadingClass), g.Text(section.Label)),
		h.Ul(h.Class(section.ListClass), g.Group(items)),
		g.Group(attached),
	)
}

// Item renders one navigation entry wrapped in its text span.
func Item(item render.ItemView) g.Node {
	var inner g.Node
	switch item.Kind {
	case model.ItemAdvanced:
		inner = h.Div(h.Class(item.InnerClass), raw(item.HTML))
	case model.ItemIcon:
		inner = h.A(
			h.Class(item.LinkClass),
			h.Href(item.Href),
			raw(item.Icon),
			h.Div(h.Class(item.InnerClass), raw(item.HTML)),
		)
	default:
		inner = h.A(h.Href(item.Href), g.Text(item.Label))
	}
	return h.Span(h.Class(item.TextClass), inner)
}

func bottomBar(view render.View) g.Node {
	attr := view.Attribution
	return h.Div(
		h.Class(view.BottomBarClass),
		h.Div(
			h.Class(view.BottomClass),
			h.Div(h.Class(view.CopyrightClass), raw(view.Copyright)),
			h.Span(
				h.Class(attr.Class),
				g.Text(attr.DevelopedWith+" "),
				raw(attr.Heart),
				g.Text(" "+attr.By+" "),
				h.B(g.Text(attr.Team)),
				g.Text(" "+attr.PoweredBy+" "),
				h.A(h.Href(attr.Href), g.Attr("aria-label", attr.AriaLabel), raw(attr.Logo)),
			),
		),
	)
}

func raw(fragment model.HTML) g.Node {
	return g.Raw(fragment.String())
}
