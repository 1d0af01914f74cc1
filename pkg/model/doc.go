// Package model defines the typed footer model consumed by renderers. Content
// documents are decoded into these types by pkg/content; renderers never see
// raw content maps. Navigation entries are an explicit tagged variant (Item)
// and every markup fragment that is written without escaping is an HTML value,
// so a caller has to opt in through Trusted or Sanitize before raw markup can
// reach the output.
package model
