package widgets

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-footer/pkg/model"
)

func TestNewDefaultRegistersBuiltins(t *testing.T) {
	reg := NewDefault()
	want := []string{WidgetNewsletter, WidgetPaymentSystems, WidgetSecuritySystems, WidgetSocialNetworks}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRegisterValidates(t *testing.T) {
	reg := New()
	if err := reg.Register("  ", PaymentSystems); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := reg.Register("payment-systems", nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestRegistryOverrideAndNormalize(t *testing.T) {
	reg := NewDefault()
	var got model.Blob
	reg.MustRegister(" Payment-Systems ", func(_ context.Context, cfg model.Blob, _ Env) (model.HTML, error) {
		got = cfg
		return "<custom/>", nil
	})

	blob := model.Blob{"foo": 1}
	out, err := reg.Render(context.Background(), WidgetPaymentSystems, blob, Env{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<custom/>" {
		t.Fatalf("override not used: %s", out)
	}
	if diff := cmp.Diff(blob, got); diff != "" {
		t.Fatalf("blob not passed through (-want +got):\n%s", diff)
	}
}

func TestRegistryRenderUnknownIsEmpty(t *testing.T) {
	out, err := New().Render(context.Background(), "missing", nil, Env{})
	if err != nil || out != "" {
		t.Fatalf("expected empty output, got %q err=%v", out, err)
	}
}

func TestRegistryRenderWrapsError(t *testing.T) {
	boom := errors.New("boom")
	reg := New()
	reg.MustRegister("broken", func(context.Context, model.Blob, Env) (model.HTML, error) {
		return "", boom
	})
	_, err := reg.Render(context.Background(), "broken", nil, Env{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if !strings.Contains(err.Error(), `"broken"`) {
		t.Fatalf("error should name the widget: %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	base := NewDefault()
	clone := base.Clone()
	clone.MustRegister("extra", Newsletter)

	if _, ok := base.Renderer("extra"); ok {
		t.Fatalf("clone mutation leaked into base registry")
	}
	if _, ok := clone.Renderer(WidgetNewsletter); !ok {
		t.Fatalf("clone lost built-in widget")
	}
}

func TestNilRegistryIsEmpty(t *testing.T) {
	var reg *Registry

	if names := reg.Names(); len(names) != 0 {
		t.Fatalf("expected no names, got %v", names)
	}
	if _, ok := reg.Renderer(WidgetNewsletter); ok {
		t.Fatalf("nil registry should not resolve widgets")
	}
	out, err := reg.Render(context.Background(), WidgetNewsletter, nil, Env{})
	if err != nil || out != "" {
		t.Fatalf("expected empty render, got %q, %v", out, err)
	}
	if err := reg.Register("custom", func(context.Context, model.Blob, Env) (model.HTML, error) { return "", nil }); err == nil {
		t.Fatalf("expected error registering on nil registry")
	}

	cloned := reg.Clone()
	if cloned == nil || len(cloned.Names()) != 0 {
		t.Fatalf("expected empty clone, got %+v", cloned)
	}
	cloned.MustRegister("custom", func(context.Context, model.Blob, Env) (model.HTML, error) { return "ok", nil })
	if diff := cmp.Diff([]string{"custom"}, cloned.Names()); diff != "" {
		t.Fatalf("clone names mismatch (-want +got):\n%s", diff)
	}
}
