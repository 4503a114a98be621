// Package visualeditor exposes the visual editor field type and its value
// codec from the module root.
package visualeditor

import (
	"github.com/goliatone/go-formgen-visualeditor/pkg/codec"
	"github.com/goliatone/go-formgen-visualeditor/pkg/fieldtype"
	"github.com/goliatone/go-formgen-visualeditor/pkg/model"
)

// Value aliases codec.Value, the decoded {html, css, customCss} envelope.
type Value = codec.Value

// Field aliases model.Field for callers rendering a single field.
type Field = model.Field

// Option aliases fieldtype.Option.
type Option = fieldtype.Option

// New constructs the visual editor field type.
func New(options ...Option) (*fieldtype.VisualEditor, error) {
	return fieldtype.NewVisualEditor(options...)
}

// Register constructs the field type and adds it to registry.
func Register(registry *fieldtype.Registry, options ...Option) (*fieldtype.VisualEditor, error) {
	ve, err := fieldtype.NewVisualEditor(options...)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(ve); err != nil {
		return nil, err
	}
	return ve, nil
}

// Decode parses a stored value. It never fails: content that is not an
// envelope is read as legacy markup.
func Decode(raw string) Value {
	return codec.Decode(raw)
}

// Encode serialises a value as an envelope.
func Encode(v Value) string {
	return codec.Encode(v)
}

// Render returns the display markup of a stored value.
func Render(raw string) string {
	return codec.Render(raw)
}
