// Package orchestrator wires content loading, theme selection and rendering
// behind a single Generate call.
package orchestrator
