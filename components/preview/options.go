package preview

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-footer/pkg/content"
	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/orchestrator"
	"github.com/goliatone/go-footer/pkg/render"
)

// Generator renders one footer request. *orchestrator.Orchestrator satisfies
// it.
type Generator interface {
	Generate(ctx context.Context, req orchestrator.Request) ([]byte, error)
}

// GuardFunc rejects a request before rendering. Returning an HTTPError picks
// the response status; any other error maps to 403.
type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath     string
	RendererParam string
	ThemeParam    string
	VariantParam  string
	LocaleParam   string
	Guard         GuardFunc

	// Source is loaded on every request so edits show up on reload. Props
	// takes precedence when both are set.
	Source content.Source
	Props  *model.Props

	// RenderOptions seeds every request; query parameters override Locale.
	RenderOptions render.RenderOptions

	Generator Generator
	Logger    zerolog.Logger
	// Metrics is optional; nil disables instrumentation.
	Metrics *Metrics
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:     "/footer",
		RendererParam: "renderer",
		ThemeParam:    "theme",
		VariantParam:  "variant",
		LocaleParam:   "locale",
		Logger:        zerolog.Nop(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/footer"
	}
	if opts.RendererParam == "" {
		opts.RendererParam = "renderer"
	}
	if opts.ThemeParam == "" {
		opts.ThemeParam = "theme"
	}
	if opts.VariantParam == "" {
		opts.VariantParam = "variant"
	}
	if opts.LocaleParam == "" {
		opts.LocaleParam = "locale"
	}
	if opts.Generator == nil {
		opts.Generator = orchestrator.New(orchestrator.WithLogger(opts.Logger))
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithRendererParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RendererParam = name
	}
}

func WithThemeParams(themeParam, variantParam string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ThemeParam = themeParam
		o.VariantParam = variantParam
	}
}

func WithLocaleParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LocaleParam = name
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithSource serves the content document at src.
func WithSource(src content.Source) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Source = src
	}
}

// WithProps serves a fixed set of props.
func WithProps(props model.Props) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Props = &props
	}
}

func WithRenderOptions(ro render.RenderOptions) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RenderOptions = ro
	}
}

// WithGenerator replaces the default orchestrator.
func WithGenerator(gen Generator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Generator = gen
	}
}

func WithLogger(logger zerolog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

// WithMetrics records request counts and render latency on m.
func WithMetrics(m *Metrics) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Metrics = m
	}
}
