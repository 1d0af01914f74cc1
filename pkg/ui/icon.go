package ui

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-footer/pkg/model"
)

// DefaultSpriteURL is the sprite sheet icons reference when no theme asset is
// configured.
const DefaultSpriteURL = "/sprites.svg"

// Built-in glyph identifiers.
const (
	IconHeartFooter = "HeartFooter"
	IconDeco        = "Deco"
)

// IconOptions customises a single icon.
type IconOptions struct {
	Class       string
	StrokeWidth float64
	SpriteURL   string
}

type glyph struct {
	viewBox string
	body    string
}

var (
	glyphMu sync.RWMutex
	glyphs  = map[string]glyph{
		IconHeartFooter: {
			viewBox: "0 0 11 10",
			body:    `<path d="M5.5 9.5 1.1 5.1A2.6 2.6 0 0 1 4.8 1.4l.7.7.7-.7a2.6 2.6 0 0 1 3.7 3.7z" fill="currentColor"></path>`,
		},
		IconDeco: {
			viewBox: "0 0 60 20",
			body:    `<title>deco.cx</title><path d="M4 4h6a6 6 0 0 1 0 12H4z" fill="currentColor"></path><circle cx="24" cy="10" r="5" fill="currentColor"></circle>`,
		},
	}
)

// RegisterGlyph adds an inline glyph for id. The markup is sanitised with the
// SVG policy; an id whose markup sanitises to nothing is rejected.
func RegisterGlyph(id, viewBox, body string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("ui: glyph id is required")
	}
	cleaned := sanitizeIconMarkup(body)
	if cleaned == "" {
		return fmt.Errorf("ui: glyph %q has no renderable markup", id)
	}
	glyphMu.Lock()
	defer glyphMu.Unlock()
	glyphs[id] = glyph{viewBox: strings.TrimSpace(viewBox), body: cleaned}
	return nil
}

// Icon renders an SVG element for id. Registered glyphs are inlined; any
// other id references the sprite sheet symbol of the same name. A blank id
// yields an empty fragment.
func Icon(id string, width, height int, opts IconOptions) model.HTML {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<svg`)
	if opts.Class != "" {
		writeAttr(&b, "class", opts.Class)
	}
	if width > 0 {
		writeAttr(&b, "width", strconv.Itoa(width))
	}
	if height > 0 {
		writeAttr(&b, "height", strconv.Itoa(height))
	}
	if opts.StrokeWidth > 0 {
		writeAttr(&b, "stroke-width", strconv.FormatFloat(opts.StrokeWidth, 'f', -1, 64))
	}

	glyphMu.RLock()
	g, inline := glyphs[id]
	glyphMu.RUnlock()

	if inline {
		if g.viewBox != "" {
			writeAttr(&b, "viewBox", g.viewBox)
		}
		writeAttr(&b, "aria-hidden", "true")
		b.WriteString(`>`)
		b.WriteString(g.body)
		b.WriteString(`</svg>`)
		return model.HTML(b.String())
	}

	sprite := strings.TrimSpace(opts.SpriteURL)
	if sprite == "" {
		sprite = DefaultSpriteURL
	}
	writeAttr(&b, "aria-hidden", "true")
	b.WriteString(`><use`)
	writeAttr(&b, "href", sprite+"#"+id)
	b.WriteString(`></use></svg>`)
	return model.HTML(b.String())
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}
