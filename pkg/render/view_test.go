package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/widgets"
)

type widgetCall struct {
	name   string
	config model.Blob
}

func recordingWidgets(calls *[]widgetCall) *widgets.Registry {
	reg := widgets.New()
	for _, name := range []string{widgets.WidgetNewsletter, widgets.WidgetPaymentSystems, widgets.WidgetSecuritySystems, widgets.WidgetSocialNetworks} {
		name := name
		reg.MustRegister(name, func(_ context.Context, cfg model.Blob, _ widgets.Env) (model.HTML, error) {
			*calls = append(*calls, widgetCall{name: name, config: cfg})
			return model.HTML("<" + name + "/>"), nil
		})
	}
	return reg
}

func sampleProps() model.Props {
	return model.Props{
		PaymentSystem:  model.Blob{"foo": 1},
		SecuritySystem: model.Blob{"seal": "ssl"},
		SocialNetwork:  model.Blob{"items": []any{"ig"}},
		Copyright:      model.Trusted("<p>© Store</p>"),
		Sections: []model.Section{
			{
				Label:              "Help",
				Children:           []model.Item{model.LinkItem("FAQ", "/faq")},
				ShowPaymentSystems: true,
			},
			{
				Label: "Contact",
				Children: []model.Item{
					model.IconLinkItem("Phone", "<b>0800</b>", "tel:0800"),
					model.AdvancedItem("<p>Mon-Fri</p>"),
				},
				ShowSocialNetworks: true,
				ShowGrid:           true,
			},
			{Label: "Empty"},
		},
	}
}

func TestBuildView_SectionsPerLayoutPreserveOrder(t *testing.T) {
	var calls []widgetCall
	view, err := BuildView(context.Background(), sampleProps(), RenderOptions{Widgets: recordingWidgets(&calls)})
	if err != nil {
		t.Fatalf("build view: %v", err)
	}

	if len(view.Layouts) != 2 {
		t.Fatalf("expected 2 layouts, got %d", len(view.Layouts))
	}
	if view.Layouts[0].Mode != model.LayoutDesktop || view.Layouts[1].Mode != model.LayoutMobile {
		t.Fatalf("unexpected layout order: %s, %s", view.Layouts[0].Mode, view.Layouts[1].Mode)
	}

	for _, layout := range view.Layouts {
		var labels []string
		for _, section := range layout.Sections {
			labels = append(labels, section.Label)
		}
		if diff := cmp.Diff([]string{"Help", "Contact", "Empty"}, labels); diff != "" {
			t.Fatalf("%s section order mismatch (-want +got):\n%s", layout.Mode, diff)
		}
	}
}

func TestBuildView_WidgetsReceiveSharedBlobPerLayout(t *testing.T) {
	var calls []widgetCall
	props := sampleProps()
	view, err := BuildView(context.Background(), props, RenderOptions{Widgets: recordingWidgets(&calls)})
	if err != nil {
		t.Fatalf("build view: %v", err)
	}

	want := []widgetCall{
		{name: widgets.WidgetNewsletter},
		{name: widgets.WidgetPaymentSystems, config: model.Blob{"foo": 1}},
		{name: widgets.WidgetSocialNetworks, config: model.Blob{"items": []any{"ig"}}},
		{name: widgets.WidgetPaymentSystems, config: model.Blob{"foo": 1}},
		{name: widgets.WidgetSocialNetworks, config: model.Blob{"items": []any{"ig"}}},
	}
	if diff := cmp.Diff(want, calls, cmp.AllowUnexported(widgetCall{})); diff != "" {
		t.Fatalf("widget calls mismatch (-want +got):\n%s", diff)
	}

	for _, layout := range view.Layouts {
		if got := len(layout.Sections[0].Widgets); got != 1 || layout.Sections[0].Widgets[0].Name != widgets.WidgetPaymentSystems {
			t.Fatalf("%s: expected payment widget on first section, got %+v", layout.Mode, layout.Sections[0].Widgets)
		}
		if len(layout.Sections[2].Widgets) != 0 {
			t.Fatalf("%s: section without flags should have no widgets", layout.Mode)
		}
	}
}

func TestBuildView_ItemVariants(t *testing.T) {
	view, err := BuildView(context.Background(), sampleProps(), RenderOptions{Layouts: []model.LayoutMode{model.LayoutMobile}})
	if err != nil {
		t.Fatalf("build view: %v", err)
	}
	if len(view.Layouts) != 1 {
		t.Fatalf("expected only the mobile layout, got %d", len(view.Layouts))
	}

	link := view.Layouts[0].Sections[0].Items[0]
	if link.Kind != model.ItemLink || link.Label != "FAQ" || link.Href != "/faq" {
		t.Fatalf("unexpected link view: %+v", link)
	}

	icon := view.Layouts[0].Sections[1].Items[0]
	if icon.Kind != model.ItemIcon || icon.HTML != "<b>0800</b>" || icon.Icon == "" || icon.LinkClass != IconLinkClass {
		t.Fatalf("unexpected icon view: %+v", icon)
	}

	advanced := view.Layouts[0].Sections[1].Items[1]
	if advanced.Kind != model.ItemAdvanced || advanced.HTML != "<p>Mon-Fri</p>" || advanced.InnerClass != AdvancedItemClass {
		t.Fatalf("unexpected advanced view: %+v", advanced)
	}
}

func TestBuildView_LayoutClasses(t *testing.T) {
	view, err := BuildView(context.Background(), sampleProps(), RenderOptions{})
	if err != nil {
		t.Fatalf("build view: %v", err)
	}
	desktop, mobile := view.Layouts[0], view.Layouts[1]

	if got := desktop.Sections[0].Class; got != "pt-5 pb-10 flex flex-col justify-between h-full pl-5 sm:pl-0" {
		t.Fatalf("first desktop entry class: %q", got)
	}
	if got := desktop.Sections[1].Class; got != "pt-5 pb-10 flex flex-col justify-between h-full pl-5" {
		t.Fatalf("second desktop entry class: %q", got)
	}
	if got := desktop.Sections[1].ListClass; got != "flex flex-grow flex-col" {
		t.Fatalf("desktop ignores showGrid, got %q", got)
	}
	if got := mobile.Sections[1].ListClass; got != "flex flex-grow flex-col grid grid-cols-[1fr_1fr] sm:flex" {
		t.Fatalf("mobile grid class: %q", got)
	}
	if got := mobile.Sections[0].ListClass; got != "flex flex-grow flex-col" {
		t.Fatalf("mobile list class without grid: %q", got)
	}
}

func TestBuildView_ThemeStyleAndSprite(t *testing.T) {
	cfg := &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		CSSVars: map[string]string{"--footer-bg": "#000", "--brand": "#123456"},
		AssetURL: func(key string) string {
			if key == ThemeAssetSprite {
				return "/themes/acme/sprites.svg"
			}
			return ""
		},
	}
	view, err := BuildView(context.Background(), sampleProps(), RenderOptions{Theme: cfg})
	if err != nil {
		t.Fatalf("build view: %v", err)
	}
	if view.Style != "--brand: #123456; --footer-bg: #000;" {
		t.Fatalf("unexpected style: %q", view.Style)
	}
	if view.ThemeName != "acme" || view.ThemeVariant != "dark" {
		t.Fatalf("theme identity not propagated: %s/%s", view.ThemeName, view.ThemeVariant)
	}
	icon := view.Layouts[0].Sections[1].Items[0].Icon.String()
	if want := `href="/themes/acme/sprites.svg#Phone"`; !strings.Contains(icon, want) {
		t.Fatalf("icon did not use theme sprite: %s", icon)
	}
}

func TestBuildView_WidgetErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	reg := widgets.New()
	reg.MustRegister(widgets.WidgetPaymentSystems, func(context.Context, model.Blob, widgets.Env) (model.HTML, error) {
		return "", boom
	})
	_, err := BuildView(context.Background(), sampleProps(), RenderOptions{Widgets: reg})
	if !errors.Is(err, boom) {
		t.Fatalf("expected widget error, got %v", err)
	}
}

func TestBuildView_EmptyPropsRenders(t *testing.T) {
	view, err := BuildView(context.Background(), model.Props{}, RenderOptions{})
	if err != nil {
		t.Fatalf("build view: %v", err)
	}
	if view.Newsletter == "" {
		t.Fatalf("newsletter should render unconditionally")
	}
	for _, layout := range view.Layouts {
		if len(layout.Sections) != 0 {
			t.Fatalf("expected no sections, got %d", len(layout.Sections))
		}
	}
	if view.Attribution.Team != "Time 19" {
		t.Fatalf("default attribution missing: %+v", view.Attribution)
	}
}
