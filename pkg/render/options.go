package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/widgets"
)

// ThemeAssetSprite is the theme asset key resolved for the icon sprite sheet.
const ThemeAssetSprite = "icons.sprite"

// RenderOptions describe per-request data renderers use to customise their
// output without touching the props.
type RenderOptions struct {
	// Theme carries the resolved go-theme selection. Tokens become CSS custom
	// properties on the footer element and the sprite sheet URL is resolved
	// through AssetURL when SpriteURL is empty.
	Theme *theme.RendererConfig
	// Widgets overrides the collaborator registry. Nil selects the built-in
	// widgets.
	Widgets *widgets.Registry
	// SpriteURL points icons at a specific sprite sheet.
	SpriteURL string
	// Layouts restricts which breakpoints are rendered. Empty renders every
	// layout in model.Layouts order.
	Layouts []model.LayoutMode
	// Locale selects translations for built-in phrases (attribution line,
	// widget defaults).
	Locale string
	// Translator resolves built-in phrase keys. Nil keeps the English
	// defaults.
	Translator Translator
	// OnMissing overrides the text used for untranslated keys.
	OnMissing MissingTranslationHandler
}
