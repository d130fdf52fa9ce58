// Package static embeds the compiled front-end assets so the binary ships
// self-contained.
package static

import "embed"

//go:embed app.css
var Files embed.FS
