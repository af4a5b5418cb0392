// Package web embeds the server-rendered HTML views, enabling single-binary
// deployment without external file dependencies.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded views.
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}
