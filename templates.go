package footer

import (
	"io/fs"

	vanilla "github.com/goliatone/go-footer/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the default footer stylesheet.
//
// Typical mount:
//
//	mux.Handle("/footer/",
//	  http.StripPrefix("/footer/",
//	    http.FileServerFS(footer.EmbeddedAssets()),
//	  ),
//	)
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
