package widgets

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-footer/pkg/model"
)

// Built-in widget identifiers.
const (
	WidgetNewsletter      = "newsletter"
	WidgetPaymentSystems  = "payment-systems"
	WidgetSecuritySystems = "security-systems"
	WidgetSocialNetworks  = "social-networks"
)

// Env carries render-wide settings widgets may need.
type Env struct {
	// SpriteURL is the icon sprite sheet; empty selects ui.DefaultSpriteURL.
	SpriteURL string
	// Translate localises a built-in phrase. Nil keeps the fallback.
	Translate func(key, fallback string) string
}

// T translates key, returning fallback when no translator is configured.
func (e Env) T(key, fallback string) string {
	if e.Translate == nil {
		return fallback
	}
	return e.Translate(key, fallback)
}

// Renderer produces the markup for one widget invocation. The config blob is
// the caller's value and must not be mutated.
type Renderer func(ctx context.Context, config model.Blob, env Env) (model.HTML, error)

// Registry maps widget names to renderers. Callers can register new widgets or
// override the defaults.
type Registry struct {
	mu      sync.RWMutex
	widgets map[string]Renderer
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{widgets: make(map[string]Renderer)}
}

// NewDefault creates a registry populated with the built-in widgets.
func NewDefault() *Registry {
	reg := New()
	reg.MustRegister(WidgetNewsletter, Newsletter)
	reg.MustRegister(WidgetPaymentSystems, PaymentSystems)
	reg.MustRegister(WidgetSecuritySystems, SecuritySystems)
	reg.MustRegister(WidgetSocialNetworks, SocialNetworks)
	return reg
}

// Clone returns a copy of the registry that can be mutated independently. A
// nil registry clones to an empty one.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return New()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for name, renderer := range r.widgets {
		cloned.widgets[name] = renderer
	}
	return cloned
}

// Register associates a renderer with name. Existing entries are replaced.
func (r *Registry) Register(name string, renderer Renderer) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("widgets: widget name is required")
	}
	if renderer == nil {
		return fmt.Errorf("widgets: renderer for %q is nil", name)
	}
	if r == nil {
		return fmt.Errorf("widgets: registry is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.widgets[name] = renderer
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(name string, renderer Renderer) {
	if err := r.Register(name, renderer); err != nil {
		panic(err)
	}
}

// Renderer fetches the renderer registered under name.
func (r *Registry) Renderer(name string) (Renderer, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.widgets[normalize(name)]
	return renderer, ok
}

// Names returns the registered widget names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Render invokes the named widget. An unregistered widget renders nothing.
func (r *Registry) Render(ctx context.Context, name string, config model.Blob, env Env) (model.HTML, error) {
	renderer, ok := r.Renderer(name)
	if !ok {
		return "", nil
	}
	out, err := renderer(ctx, config, env)
	if err != nil {
		return "", fmt.Errorf("widgets: render %q: %w", normalize(name), err)
	}
	return out, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
