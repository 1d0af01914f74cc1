package ui

import "strings"

// Text variants used by the footer.
const (
	VariantTextFooter    = "text-footer"
	VariantHeadingFooter = "heading-footer"
	VariantRegular       = "regular"
)

// Text tones used by the footer.
const (
	ToneBlack   = "black"
	ToneDefault = "default"
)

var variantClasses = map[string]string{
	VariantTextFooter:    "font-text-footer text-text-footer",
	VariantHeadingFooter: "font-heading-footer text-heading-footer",
	VariantRegular:       "font-regular text-regular",
}

var toneClasses = map[string]string{
	ToneBlack:   "text-black",
	ToneDefault: "text-default",
}

// TextClasses returns the class list for a Text element of the given variant
// and tone followed by any extra classes. Unknown variants and tones map to a
// "text-<name>" class.
func TextClasses(variant, tone string, extra ...string) string {
	parts := make([]string, 0, 2+len(extra))
	parts = append(parts, lookupClass(variantClasses, variant), lookupClass(toneClasses, tone))
	parts = append(parts, extra...)
	return JoinClasses(parts...)
}

// JoinClasses joins non-empty class fragments with single spaces.
func JoinClasses(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		for _, field := range strings.Fields(part) {
			out = append(out, field)
		}
	}
	return strings.Join(out, " ")
}

func lookupClass(table map[string]string, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if class, ok := table[name]; ok {
		return class
	}
	return "text-" + name
}
