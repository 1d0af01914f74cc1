// Package ui holds the small presentational collaborators shared by every
// renderer: sprite-backed icons and the Text variant/tone class mapping.
package ui
