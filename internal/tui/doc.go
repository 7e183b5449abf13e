// Package tui implements gatectl's interactive launcher screen: a URL
// input, a binary backend toggle, a three-state submission status line and a
// small activity log, all driven by Bubble Tea's single-threaded event loop.
package tui
