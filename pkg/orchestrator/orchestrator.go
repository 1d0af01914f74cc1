package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	internalLoader "github.com/goliatone/go-footer/internal/content/loader"
	"github.com/goliatone/go-footer/pkg/content"
	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/render"
	"github.com/goliatone/go-footer/pkg/renderers/nodes"
	"github.com/goliatone/go-footer/pkg/renderers/vanilla"
	"github.com/goliatone/go-footer/pkg/widgets"
)

const defaultRendererName = vanilla.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom content loader.
func WithLoader(loader content.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithWidgets sets the widget registry used when a request does not carry its
// own.
func WithWidgets(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		o.widgets = registry
	}
}

// WithPolicy sets the markup policy applied when decoding documents.
func WithPolicy(policy content.Policy) Option {
	return func(o *Orchestrator) {
		o.policy = policy
	}
}

// WithLogger attaches a zerolog logger. The default discards output.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from content document to rendered
// footer. It defaults to the vanilla renderer (with nodes also registered) and
// the built-in loader.
type Orchestrator struct {
	loader          content.Loader
	registry        *render.Registry
	defaultRenderer string
	widgets         *widgets.Registry
	policy          content.Policy
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	logger          zerolog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one footer render. Exactly one of Props, Document or
// Source is consulted, in that order.
type Request struct {
	// Props renders already decoded props.
	Props *model.Props

	// Document bypasses the loader.
	Document *content.Document

	// Source identifies where the content document lives.
	Source content.Source

	// Renderer names the renderer to use. Empty falls back to the default.
	Renderer string

	// ThemeName and ThemeVariant are forwarded to the theme selector.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request renderer options. A Theme set here
	// skips theme selection.
	RenderOptions render.RenderOptions
}

// Generate resolves props, theme and renderer, then renders.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	props, err := o.resolveProps(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.Widgets == nil {
		opts.Widgets = o.widgets
	}
	if opts.Theme == nil {
		cfg, err := o.resolveTheme(req)
		if err != nil {
			return nil, err
		}
		opts.Theme = cfg
	}

	output, err := renderer.Render(ctx, props, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	event := o.logger.Debug().
		Str("renderer", renderer.Name()).
		Int("sections", len(props.Sections)).
		Int("bytes", len(output))
	if opts.Theme != nil {
		event = event.Str("theme", opts.Theme.Theme).Str("variant", opts.Theme.Variant)
	}
	event.Msg("footer rendered")

	return output, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveProps(ctx context.Context, req Request) (model.Props, error) {
	if req.Props != nil {
		return *req.Props, nil
	}

	var doc content.Document
	switch {
	case req.Document != nil:
		doc = *req.Document
	case req.Source != nil:
		loaded, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			return model.Props{}, fmt.Errorf("orchestrator: load document: %w", err)
		}
		doc = loaded
	default:
		return model.Props{}, errors.New("orchestrator: props, document or source is required")
	}

	props, err := doc.Props(o.policy)
	if err != nil {
		return model.Props{}, fmt.Errorf("orchestrator: decode document: %w", err)
	}
	o.logger.Debug().
		Str("source", doc.Location()).
		Str("policy", o.policy.String()).
		Msg("content decoded")
	return props, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := strings.TrimSpace(name)
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(content.NewLoaderOptions())
	}
	if o.widgets == nil {
		o.widgets = widgets.NewDefault()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		o.registry.MustRegister(nodes.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
