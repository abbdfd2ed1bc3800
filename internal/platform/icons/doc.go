// Package icons defines the symbolic icon kinds used by navigation entries.
//
// A Kind is a plain enumerated value. The catalog maps each kind to a
// human-readable label, and the Lucide table maps it to a sprite symbol, so
// callers describe intent without carrying glyph geometry. Rendering goes
// through Glyph, which resolves the kind at render time.
package icons
