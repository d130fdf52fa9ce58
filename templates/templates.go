// Package templates embeds the HTML templates so the binary ships
// self-contained.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Parse loads every embedded template into one named tree for gin's HTML
// renderer.
func Parse() *template.Template {
	return template.Must(template.New("").ParseFS(files, "*.tmpl"))
}
