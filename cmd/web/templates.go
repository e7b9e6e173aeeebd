package main

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// loadTemplates parses the embedded page templates. Parsing happens once
// at startup, so a broken template fails fast.
func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}
