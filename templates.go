package visualeditor

import (
	"io/fs"

	"github.com/goliatone/go-formgen-visualeditor/pkg/fieldtype"
)

// EmbeddedTemplates exposes the built-in field templates so callers can copy
// or extend them and point a theme partial at the result.
func EmbeddedTemplates() fs.FS {
	return fieldtype.TemplatesFS()
}
