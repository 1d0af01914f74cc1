package footer

import (
	internalLoader "github.com/goliatone/go-footer/internal/content/loader"
	"github.com/goliatone/go-footer/pkg/content"
)

// NewLoader constructs a content loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...content.LoaderOption) content.Loader {
	cfg := content.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
