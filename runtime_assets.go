package visualeditor

import (
	"io/fs"

	"github.com/goliatone/go-formgen-visualeditor/pkg/fieldtype"
)

// RuntimeAssetsFS exposes the browser bootstrap (visual-editor.js and
// visual-editor.css) so Go applications can serve it without a build step.
// The page builder library itself is not bundled.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(visualeditor.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return fieldtype.AssetsFS()
}
