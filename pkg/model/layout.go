package model

// LayoutMode selects the breakpoint a section list is rendered for.
type LayoutMode string

const (
	LayoutDesktop LayoutMode = "desktop"
	LayoutMobile  LayoutMode = "mobile"
)

// Layouts returns every layout in render order.
func Layouts() []LayoutMode {
	return []LayoutMode{LayoutDesktop, LayoutMobile}
}

// Valid reports whether m is a known layout.
func (m LayoutMode) Valid() bool {
	return m == LayoutDesktop || m == LayoutMobile
}
