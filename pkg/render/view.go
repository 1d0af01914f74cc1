package render

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/ui"
	"github.com/goliatone/go-footer/pkg/widgets"
)

// Class lists shared by every renderer. They target the storefront's utility
// CSS and are part of the output contract.
const (
	FooterClass         = "w-full bg-footer flex flex-col"
	ContainerClass      = "max-w-[1300px] mx-auto flex justify-between w-full"
	SectionsModifier    = "sm:p-2.5"
	BottomBarClass      = "bg-white border-t-1 border-solid border-lightgray p-2.5"
	BottomModifier      = "flex-col gap-4 sm:gap-0 sm:grid sm:grid-cols-[50%_50%]"
	CopyrightClass      = "font-regular text-default text-xs text-copyright"
	AttributionModifier = "flex items-center gap-1 text-xs text-copyright"
	HeadingModifier     = "mb-[15px] sm:mb-[25px] font-semibold block"
	ItemEntryClass      = "leading-none"
	AdvancedItemClass   = "footer-advanced-item"
	IconLinkClass       = "mb-[15px] flex items-start justify-start"
	IconLabelClass      = "footer-icon-item ml-3 whitespace-break-spaces sm:whitespace-pre transition-colors hover:text-badge"
	IconClass           = "mt-1"
	IconSize            = 13
)

var layoutClasses = map[model.LayoutMode]string{
	model.LayoutDesktop: "hidden sm:flex flex-row gap-20 sm:grid grid-cols-[1fr_0.9fr_0.9fr_1.2fr] divide-x-1",
	model.LayoutMobile:  "px-[30px] py-2.5 flex flex-col sm:items-center sm:hidden sm:flex-row sm:gap-4",
}

// View is the renderer-neutral description of one footer. BuildView is the
// only place props are mapped to layout entries; renderers only serialise it.
type View struct {
	FooterClass    string
	Style          string
	ThemeName      string
	ThemeVariant   string
	Newsletter     model.HTML
	ContainerClass string
	Layouts        []LayoutView
	BottomBarClass string
	BottomClass    string
	CopyrightClass string
	Copyright      model.HTML
	Attribution    AttributionView
}

// LayoutView is the section list for one breakpoint.
type LayoutView struct {
	Mode     model.LayoutMode
	Class    string
	Sections []SectionView
}

// SectionView is one labelled group within a layout.
type SectionView struct {
	Index        int
	Class        string
	Label        string
	HeadingClass string
	ListClass    string
	Items        []ItemView
	Widgets      []WidgetView
}

// WidgetView is a rendered collaborator attached to a section.
type WidgetView struct {
	Name string
	HTML model.HTML
}

// ItemView is one rendered navigation entry.
type ItemView struct {
	Kind       model.ItemKind
	EntryClass string
	TextClass  string
	Href       string
	Label      string
	HTML       model.HTML
	Icon       model.HTML
	LinkClass  string
	InnerClass string
}

// AttributionView is the credit block of the bottom bar.
type AttributionView struct {
	Class         string
	DevelopedWith string
	By            string
	PoweredBy     string
	Team          string
	Href          string
	AriaLabel     string
	Heart         model.HTML
	Logo          model.HTML
}

// BuildView maps props onto the view model. Every requested layout walks the
// same sections slice and invokes section widgets independently. Widget errors
// are returned; malformed content never is.
func BuildView(ctx context.Context, props model.Props, opts RenderOptions) (View, error) {
	registry := opts.Widgets
	if registry == nil {
		registry = defaultWidgets
	}
	env := widgets.Env{SpriteURL: spriteURL(opts), Translate: Localizer(opts)}

	newsletter, err := registry.Render(ctx, widgets.WidgetNewsletter, props.Newsletter, env)
	if err != nil {
		return View{}, err
	}

	view := View{
		FooterClass:    FooterClass,
		Style:          themeStyle(opts),
		Newsletter:     newsletter,
		ContainerClass: ui.JoinClasses(ContainerClass, SectionsModifier),
		BottomBarClass: BottomBarClass,
		BottomClass:    ui.JoinClasses(ContainerClass, BottomModifier),
		CopyrightClass: CopyrightClass,
		Copyright:      props.Copyright,
		Attribution:    buildAttribution(props.ResolvedAttribution(), env),
	}
	if opts.Theme != nil {
		view.ThemeName = opts.Theme.Theme
		view.ThemeVariant = opts.Theme.Variant
	}

	for _, mode := range layoutModes(opts.Layouts) {
		layout, err := buildLayout(ctx, mode, props, registry, env)
		if err != nil {
			return View{}, err
		}
		view.Layouts = append(view.Layouts, layout)
	}

	return view, nil
}

var defaultWidgets = widgets.NewDefault()

func buildLayout(ctx context.Context, mode model.LayoutMode, props model.Props, registry *widgets.Registry, env widgets.Env) (LayoutView, error) {
	layout := LayoutView{
		Mode:     mode,
		Class:    layoutClasses[mode],
		Sections: make([]SectionView, 0, len(props.Sections)),
	}

	for idx, section := range props.Sections {
		sv := SectionView{
			Index:        idx,
			Class:        sectionClass(mode, idx),
			Label:        section.Label,
			HeadingClass: ui.TextClasses(ui.VariantHeadingFooter, ui.ToneBlack, HeadingModifier),
			ListClass:    listClass(mode, section),
			Items:        make([]ItemView, 0, len(section.Children)),
		}
		for _, item := range section.Children {
			sv.Items = append(sv.Items, buildItem(item, env))
		}

		attached := []struct {
			enabled bool
			name    string
			config  model.Blob
		}{
			{section.ShowPaymentSystems, widgets.WidgetPaymentSystems, props.PaymentSystem},
			{section.ShowSecuritySystems, widgets.WidgetSecuritySystems, props.SecuritySystem},
			{section.ShowSocialNetworks, widgets.WidgetSocialNetworks, props.SocialNetwork},
		}
		for _, w := range attached {
			if !w.enabled {
				continue
			}
			out, err := registry.Render(ctx, w.name, w.config, env)
			if err != nil {
				return LayoutView{}, fmt.Errorf("render: %s section %d: %w", mode, idx, err)
			}
			sv.Widgets = append(sv.Widgets, WidgetView{Name: w.name, HTML: out})
		}

		layout.Sections = append(layout.Sections, sv)
	}
	return layout, nil
}

func buildItem(item model.Item, env widgets.Env) ItemView {
	view := ItemView{
		Kind:       item.Variant(),
		EntryClass: ItemEntryClass,
		TextClass:  ui.TextClasses(ui.VariantTextFooter, ui.ToneBlack),
		Href:       item.Href,
	}
	switch view.Kind {
	case model.ItemAdvanced:
		view.HTML = item.Text
		view.InnerClass = AdvancedItemClass
	case model.ItemIcon:
		view.HTML = item.LabelHTML
		view.Icon = ui.Icon(item.Icon, IconSize, IconSize, ui.IconOptions{Class: IconClass, SpriteURL: env.SpriteURL})
		view.LinkClass = IconLinkClass
		view.InnerClass = IconLabelClass
	default:
		view.Label = item.Label
	}
	return view
}

func buildAttribution(attr model.Attribution, env widgets.Env) AttributionView {
	return AttributionView{
		Class:         ui.TextClasses(ui.VariantRegular, ui.ToneDefault, AttributionModifier),
		DevelopedWith: env.T(KeyAttributionDevelopedWith, "Developed with"),
		By:            env.T(KeyAttributionBy, "by"),
		PoweredBy:     env.T(KeyAttributionPoweredBy, "and Powered by"),
		Team:          attr.Team,
		Href:          attr.PoweredByHref,
		AriaLabel:     attr.PoweredByLabel,
		Heart:         ui.Icon(ui.IconHeartFooter, 11, 10, ui.IconOptions{SpriteURL: env.SpriteURL}),
		Logo:          ui.Icon(ui.IconDeco, 60, 20, ui.IconOptions{StrokeWidth: 0.01, SpriteURL: env.SpriteURL}),
	}
}

func sectionClass(mode model.LayoutMode, idx int) string {
	if mode == model.LayoutMobile {
		return "pt-5 flex flex-col justify-between h-full"
	}
	if idx > 0 {
		return "pt-5 pb-10 flex flex-col justify-between h-full pl-5"
	}
	return "pt-5 pb-10 flex flex-col justify-between h-full pl-5 sm:pl-0"
}

func listClass(mode model.LayoutMode, section model.Section) string {
	if mode == model.LayoutMobile && section.ShowGrid {
		return "flex flex-grow flex-col grid grid-cols-[1fr_1fr] sm:flex"
	}
	return "flex flex-grow flex-col"
}

func layoutModes(requested []model.LayoutMode) []model.LayoutMode {
	if len(requested) == 0 {
		return model.Layouts()
	}
	seen := make(map[model.LayoutMode]struct{}, len(requested))
	out := make([]model.LayoutMode, 0, len(requested))
	for _, mode := range requested {
		if !mode.Valid() {
			continue
		}
		if _, dup := seen[mode]; dup {
			continue
		}
		seen[mode] = struct{}{}
		out = append(out, mode)
	}
	return out
}

func spriteURL(opts RenderOptions) string {
	if sprite := strings.TrimSpace(opts.SpriteURL); sprite != "" {
		return sprite
	}
	if opts.Theme != nil && opts.Theme.AssetURL != nil {
		if sprite := strings.TrimSpace(opts.Theme.AssetURL(ThemeAssetSprite)); sprite != "" {
			return sprite
		}
	}
	return ui.DefaultSpriteURL
}

// themeStyle renders the theme CSS variables as an inline style declaration,
// sorted by name.
func themeStyle(opts RenderOptions) string {
	if opts.Theme == nil || len(opts.Theme.CSSVars) == 0 {
		return ""
	}
	vars := opts.Theme.CSSVars
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteByte(';')
	}
	return b.String()
}
