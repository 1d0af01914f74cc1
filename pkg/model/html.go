package model

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// HTML is a markup fragment renderers write without escaping. Values should
// only be produced through Trusted or Sanitize.
type HTML string

// String returns the raw markup.
func (h HTML) String() string {
	return string(h)
}

// Empty reports whether the fragment has no visible content.
func (h HTML) Empty() bool {
	return strings.TrimSpace(string(h)) == ""
}

// Trusted marks markup that was sanitized upstream. The string is passed
// through untouched.
func Trusted(raw string) HTML {
	return HTML(raw)
}

// Sanitize cleans raw markup with the content policy (bluemonday UGC plus
// class/id/style on layout elements) and returns the result as HTML.
func Sanitize(raw string) HTML {
	if strings.TrimSpace(raw) == "" {
		return HTML(raw)
	}
	return HTML(contentSanitizer().Sanitize(raw))
}

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowAttrs("style").OnElements("span", "div", "p")
		policy.AllowAttrs("target", "rel", "aria-label").OnElements("a")
		contentPolicy = policy
	})
	return contentPolicy
}
