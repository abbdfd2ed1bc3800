// Package static embeds the shell's stylesheet and scripts.
package static

import "embed"

// FS exposes shell static assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
