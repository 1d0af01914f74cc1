// Package preview serves a rendered footer over net/http so the content
// document and themes can be checked in a browser.
//
// The handler responds to GET and HEAD requests. The renderer, theme,
// variant and locale query parameters select per-request overrides; the
// content source itself is fixed when the handler is built.
package preview
