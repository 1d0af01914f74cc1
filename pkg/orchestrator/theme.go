package orchestrator

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-footer/pkg/renderers/vanilla"
)

// ErrThemeSelection wraps selector failures so callers can tell a bad
// theme/variant request apart from rendering errors.
var ErrThemeSelection = errors.New("orchestrator: theme selection failed")

// WithThemeSelector resolves request theme/variant pairs through selector.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeProvider builds a go-theme selector over provider using the given
// defaults for requests that do not name a theme.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		if provider == nil {
			return
		}
		o.themeSelector = theme.Selector{
			Registry:       provider,
			DefaultTheme:   defaultTheme,
			DefaultVariant: defaultVariant,
		}
	}
}

// WithThemeFallbacks sets the partials used when a theme does not override
// them. Entries merge over the built-in fallbacks.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		if len(fallbacks) == 0 {
			return
		}
		if o.themeFallbacks == nil {
			o.themeFallbacks = defaultThemeFallbacks()
		}
		maps.Copy(o.themeFallbacks, fallbacks)
	}
}

func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		vanilla.PartialFooter: vanilla.DefaultFooterTemplate,
	}
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	selection, err := o.themeSelector.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("%w: %q/%q: %w", ErrThemeSelection, req.ThemeName, req.ThemeVariant, err)
	}
	if selection == nil {
		return nil, nil
	}

	fallbacks := o.themeFallbacks
	if fallbacks == nil {
		fallbacks = defaultThemeFallbacks()
	}
	return RendererConfig(selection, fallbacks), nil
}

// RendererConfig flattens a selection into the configuration renderers read:
// variant tokens, templates and asset files override the manifest's, tokens
// become "--name" CSS variables and asset keys resolve under the asset prefix.
func RendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: make(map[string]string, len(fallbacks)),
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}
	maps.Copy(cfg.Partials, fallbacks)

	var (
		prefix string
		files  = map[string]string{}
	)
	if m := selection.Manifest; m != nil {
		maps.Copy(cfg.Tokens, m.Tokens)
		maps.Copy(cfg.Partials, m.Templates)
		prefix = m.Assets.Prefix
		maps.Copy(files, m.Assets.Files)

		if variant, ok := m.Variants[selection.Variant]; ok {
			maps.Copy(cfg.Tokens, variant.Tokens)
			maps.Copy(cfg.Partials, variant.Templates)
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
			maps.Copy(files, variant.Assets.Files)
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
	}
	cfg.AssetURL = assetResolver(prefix, files)
	return cfg
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(prefix, "/")
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.HasPrefix(file, "/") || strings.Contains(file, "://") || prefix == "" {
			return file
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
}
