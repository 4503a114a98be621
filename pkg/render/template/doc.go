// Package template defines the renderer-agnostic template contract used by
// field types, plus a pongo2-backed adapter in the gotemplate subpackage.
package template
