// Package template defines the renderer-agnostic template seam. Renderers
// depend on TemplateRenderer; the pongo2-backed implementation lives in the
// gotemplate subpackage.
package template
