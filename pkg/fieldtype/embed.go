package fieldtype

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// Default file names of the field bootstrap assets inside AssetsFS.
const (
	StylesheetName = "visual-editor.css"
	ScriptName     = "visual-editor.js"
)

// Default file names of the page builder library. The library is not bundled;
// hosts serve it under the same asset prefix or map it through a theme.
const (
	BuilderStylesheetName = "grapes.min.css"
	BuilderScriptName     = "grapes.min.js"
)

// TemplatesFS exposes the embedded field templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the field bootstrap script and stylesheet so hosts can
// serve them over HTTP.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
