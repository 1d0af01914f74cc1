// Package content loads footer configuration documents produced by the
// storefront's content editor and decodes them into model.Props.
package content
