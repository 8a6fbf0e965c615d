// Package editor provides a Bubble Tea markdown editor component backed by the
// buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering, markdown formatting shortcuts and host
// integration hooks (highlighting, clipboard and change events).
package editor
