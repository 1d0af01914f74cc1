package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
)

// defaultFilters returns the footer filters handed to go-template, which
// already ships trim and lowerfirst.
func defaultFilters() map[string]any {
	return map[string]any{
		"classnames": pongo2.FilterFunction(filterClassNames),
	}
}

// filterClassNames joins class tokens from a string or list, collapsing
// whitespace and dropping duplicates. The optional parameter is appended.
//
//	{{ "a  b"|classnames:"c" }} -> "a b c"
func filterClassNames(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var parts []string
	collect := func(v *pongo2.Value) {
		if v == nil || v.IsNil() {
			return
		}
		if v.IsString() {
			parts = append(parts, v.String())
			return
		}
		if v.CanSlice() {
			v.Iterate(func(_, _ int, key, _ *pongo2.Value) bool {
				if key != nil && !key.IsNil() {
					parts = append(parts, key.String())
				}
				return true
			}, func() {})
			return
		}
		parts = append(parts, v.String())
	}
	collect(in)
	collect(param)

	seen := make(map[string]struct{})
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		for _, token := range strings.Fields(part) {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return pongo2.AsValue(strings.Join(tokens, " ")), nil
}
