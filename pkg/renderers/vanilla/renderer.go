package vanilla

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/render"
	rendertemplate "github.com/goliatone/go-footer/pkg/render/template"
	gotemplate "github.com/goliatone/go-footer/pkg/render/template/gotemplate"
)

// Name is the registry identifier of the template renderer.
const Name = "vanilla"

// PartialFooter is the theme partial key that replaces the root template.
const PartialFooter = "footer.root"

// DefaultFooterTemplate is the embedded root template.
const DefaultFooterTemplate = "templates/footer.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inlineStyles     bool
	stylesheets      []string
	templateFuncs    map[string]any
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/footer.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateFuncs registers helpers (for example render.TemplateI18nFuncs)
// on the built-in engine. Ignored when WithTemplateRenderer is used.
func WithTemplateFuncs(funcs map[string]any) Option {
	return func(cfg *config) {
		if len(funcs) == 0 {
			return
		}
		if cfg.templateFuncs == nil {
			cfg.templateFuncs = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			cfg.templateFuncs[name] = fn
		}
	}
}

// WithDefaultStyles prepends the embedded stylesheet in a <style> block.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// WithStylesheet prepends a <link rel="stylesheet"> for each href.
func WithStylesheet(hrefs ...string) Option {
	return func(cfg *config) {
		for _, href := range hrefs {
			if trimmed := strings.TrimSpace(href); trimmed != "" {
				cfg.stylesheets = append(cfg.stylesheets, trimmed)
			}
		}
	}
}

// Renderer renders the footer view through pongo2 templates.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	inlineStyles bool
	stylesheets  []string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithTemplateFunc(cfg.templateFuncs),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		inlineStyles: cfg.inlineStyles,
		stylesheets:  cfg.stylesheets,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render builds the shared view for props and executes the root template with
// it bound to "view". A theme partial under PartialFooter overrides the root
// template path.
func (r *Renderer) Render(ctx context.Context, props model.Props, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	view, err := render.BuildView(ctx, props, opts)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}

	result, err := r.templates.RenderTemplate(rootTemplate(opts), map[string]any{
		"view": view,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}

	var b strings.Builder
	for _, href := range r.stylesheets {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", html.EscapeString(href))
	}
	if r.inlineStyles {
		if css := defaultStylesheet(); css != "" {
			b.WriteString("<style>\n")
			b.WriteString(css)
			b.WriteString("</style>\n")
		}
	}
	b.WriteString(result)
	return []byte(b.String()), nil
}

func rootTemplate(opts render.RenderOptions) string {
	if opts.Theme != nil {
		if partial := strings.TrimSpace(opts.Theme.Partials[PartialFooter]); partial != "" {
			return partial
		}
	}
	return DefaultFooterTemplate
}
