package model

// Classify resolves an untyped item shape to its variant. Shape alone decides:
// a string-typed "text" field selects ItemAdvanced whatever else is present,
// then a string-typed "icon" selects ItemIcon, and anything else is a link.
// An empty string still selects the variant; non-string values are ignored.
func Classify(fields map[string]any) ItemKind {
	if _, ok := fields["text"].(string); ok {
		return ItemAdvanced
	}
	if _, ok := fields["icon"].(string); ok {
		return ItemIcon
	}
	return ItemLink
}
