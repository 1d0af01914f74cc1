package model

// ItemKind discriminates the Item variants.
type ItemKind string

const (
	// ItemLink is a plain anchor with an escaped text label.
	ItemLink ItemKind = "link"
	// ItemIcon is an anchor holding an icon glyph followed by an HTML label.
	ItemIcon ItemKind = "icon"
	// ItemAdvanced is a free-form HTML block.
	ItemAdvanced ItemKind = "advanced"
)

// Valid reports whether k names a known variant.
func (k ItemKind) Valid() bool {
	switch k {
	case ItemLink, ItemIcon, ItemAdvanced:
		return true
	default:
		return false
	}
}

// Item is a single navigation entry. Only the fields relevant to Kind are
// read by renderers: Label/Href for links, Icon/LabelHTML/Href for icon
// entries and Text for advanced blocks.
type Item struct {
	Kind      ItemKind `json:"kind"`
	Label     string   `json:"label,omitempty"`
	LabelHTML HTML     `json:"labelHtml,omitempty"`
	Href      string   `json:"href,omitempty"`
	Icon      string   `json:"icon,omitempty"`
	Text      HTML     `json:"text,omitempty"`
}

// LinkItem builds a plain link entry.
func LinkItem(label, href string) Item {
	return Item{Kind: ItemLink, Label: label, Href: href}
}

// IconLinkItem builds an icon entry.
func IconLinkItem(icon string, label HTML, href string) Item {
	return Item{Kind: ItemIcon, Icon: icon, LabelHTML: label, Href: href}
}

// AdvancedItem builds a free-form HTML entry.
func AdvancedItem(text HTML) Item {
	return Item{Kind: ItemAdvanced, Text: text}
}

// Variant returns the effective kind. A zero Kind renders as a link.
func (i Item) Variant() ItemKind {
	if i.Kind.Valid() {
		return i.Kind
	}
	return ItemLink
}

// Section is a labelled group of navigation items optionally paired with badge
// widgets. Children are rendered in slice order.
type Section struct {
	Label               string `json:"label,omitempty"`
	Children            []Item `json:"children"`
	ShowPaymentSystems  bool   `json:"showPaymentSystems,omitempty"`
	ShowSecuritySystems bool   `json:"showSecuritySystems,omitempty"`
	ShowSocialNetworks  bool   `json:"showSocialNetworks,omitempty"`
	ShowGrid            bool   `json:"showGrid,omitempty"`
}

// Blob is an opaque widget configuration handed to collaborators unchanged.
type Blob map[string]any

// Attribution describes the fixed credit block in the bottom bar.
type Attribution struct {
	Team           string `json:"team,omitempty"`
	PoweredByHref  string `json:"poweredByHref,omitempty"`
	PoweredByLabel string `json:"poweredByLabel,omitempty"`
}

// DefaultAttribution returns the stock credit block.
func DefaultAttribution() Attribution {
	return Attribution{
		Team:           "Time 19",
		PoweredByHref:  "https://www.deco.cx",
		PoweredByLabel: "powered by https://www.deco.cx",
	}
}

// Props is the complete footer configuration. Every field is optional.
type Props struct {
	PaymentSystem  Blob         `json:"paymentSystem,omitempty"`
	SecuritySystem Blob         `json:"securitySystem,omitempty"`
	SocialNetwork  Blob         `json:"socialNetwork,omitempty"`
	Newsletter     Blob         `json:"newsletter,omitempty"`
	Copyright      HTML         `json:"copyright,omitempty"`
	Sections       []Section    `json:"sections,omitempty"`
	Attribution    *Attribution `json:"attribution,omitempty"`
}

// ResolvedAttribution returns the configured attribution with blank fields
// filled from DefaultAttribution.
func (p Props) ResolvedAttribution() Attribution {
	out := DefaultAttribution()
	if p.Attribution == nil {
		return out
	}
	if p.Attribution.Team != "" {
		out.Team = p.Attribution.Team
	}
	if p.Attribution.PoweredByHref != "" {
		out.PoweredByHref = p.Attribution.PoweredByHref
	}
	if p.Attribution.PoweredByLabel != "" {
		out.PoweredByLabel = p.Attribution.PoweredByLabel
	}
	return out
}
