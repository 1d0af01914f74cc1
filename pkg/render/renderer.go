package render

import (
	"context"

	"github.com/goliatone/go-footer/pkg/model"
)

// Renderer converts footer props into a byte representation (HTML).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, props model.Props, options RenderOptions) ([]byte, error)
}
