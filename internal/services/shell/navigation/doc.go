// Package navigation owns the sidebar: an immutable, ordered registry of
// navigation entries and the renderer that turns it into an accessible menu.
//
// The registry is built once at startup and passed explicitly to the
// renderer. Rendering is a pure function of the registry and the current
// path. Activating an item hands its target path to a Navigator; the
// package never touches history or location itself.
package navigation
