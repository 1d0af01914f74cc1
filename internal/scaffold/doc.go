// Package scaffold builds a starter footer content document by asking the
// user a short series of questions. Prompts go through a PromptDriver so the
// flow runs against survey in a terminal and against scripted answers in
// tests.
package scaffold
