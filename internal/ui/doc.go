// Package ui is the Bubble Tea front end for browsing pathways.
//
// Core abstractions:
//   - View: a screen or region with its own model, update, view (Elm-style)
//   - Panel: a bounded region within a layout that hosts a View
//   - Layout: arranges panels and defines the Tab order
//   - FocusManager: tracks and rotates focus across panels
//   - Overlay: modal views (course card, search) with a dismiss key
//
// The root AppModel shows the pathway sidebar next to the course grid of the
// selected pathway.
package ui
