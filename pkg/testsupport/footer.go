package testsupport

import (
	"context"
	"sync"
	"testing"

	"golang.org/x/net/html"

	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/widgets"
)

// WidgetCall records one widget invocation.
type WidgetCall struct {
	Name   string
	Config model.Blob
}

// WidgetRecorder collects widget invocations from RecordingWidgets.
type WidgetRecorder struct {
	mu    sync.Mutex
	calls []WidgetCall
}

// Calls returns a copy of the recorded invocations in call order.
func (r *WidgetRecorder) Calls() []WidgetCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]WidgetCall(nil), r.calls...)
}

// Named returns the recorded invocations of one widget.
func (r *WidgetRecorder) Named(name string) []WidgetCall {
	var out []WidgetCall
	for _, call := range r.Calls() {
		if call.Name == name {
			out = append(out, call)
		}
	}
	return out
}

// RecordingWidgets returns a registry whose widgets record their input and
// render a <div data-widget="name"> marker.
func RecordingWidgets(rec *WidgetRecorder) *widgets.Registry {
	reg := widgets.New()
	for _, name := range []string{
		widgets.WidgetNewsletter,
		widgets.WidgetPaymentSystems,
		widgets.WidgetSecuritySystems,
		widgets.WidgetSocialNetworks,
	} {
		name := name
		reg.MustRegister(name, func(_ context.Context, cfg model.Blob, _ widgets.Env) (model.HTML, error) {
			rec.mu.Lock()
			rec.calls = append(rec.calls, WidgetCall{Name: name, Config: cfg})
			rec.mu.Unlock()
			return model.Trusted(`<div data-widget="` + name + `"></div>`), nil
		})
	}
	return reg
}

// LayoutSections returns the section entries rendered for one layout mode.
func LayoutSections(t *testing.T, doc *html.Node, mode model.LayoutMode) []*html.Node {
	t.Helper()

	list := FindFirst(doc, ByAttr("data-layout", string(mode)))
	if list == nil {
		t.Fatalf("layout %q not rendered", mode)
	}
	return Children(list, ByTag("li"))
}

// SectionHeading returns the heading text of a section entry.
func SectionHeading(section *html.Node) string {
	spans := Children(section, ByTag("span"))
	if len(spans) == 0 {
		return ""
	}
	return Text(spans[0])
}

// SectionItems returns the item entries of a section.
func SectionItems(section *html.Node) []*html.Node {
	lists := Children(section, ByTag("ul"))
	if len(lists) == 0 {
		return nil
	}
	return Children(lists[0], ByTag("li"))
}

// SectionWidgets returns the data-widget markers attached to a section.
func SectionWidgets(section *html.Node) []string {
	var names []string
	for _, n := range FindAll(section, func(n *html.Node) bool {
		_, ok := Attr(n, "data-widget")
		return ok
	}) {
		name, _ := Attr(n, "data-widget")
		names = append(names, name)
	}
	return names
}
