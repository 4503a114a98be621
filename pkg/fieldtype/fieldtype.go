package fieldtype

import (
	"context"
	"errors"

	"github.com/goliatone/go-formgen-visualeditor/pkg/codec"
	"github.com/goliatone/go-formgen-visualeditor/pkg/model"
)

var (
	// ErrUnknownType is returned when a registry lookup misses.
	ErrUnknownType = errors.New("fieldtype: unknown field type")
	// ErrMissingKey is returned when a field reaches the render hook without
	// a key, so no editor id can be derived.
	ErrMissingKey = errors.New("fieldtype: field key is required")
)

// FieldType is implemented by every field type a host can render.
type FieldType interface {
	Name() string
	Label() string
	Category() string
	Description() string
	Defaults() model.Settings
	// ShowInREST reports whether the host may expose the field value over its
	// REST surface.
	ShowInREST() bool

	RenderField(ctx context.Context, field model.Field) (string, error)
	RenderSettings(ctx context.Context, field model.Field) (string, error)
	Assets() Assets
	UpdateValue(ctx context.Context, value string, field model.Field) (string, error)
	FormatValue(ctx context.Context, value string, field model.Field) (string, error)
}

// Sanitizer cleans a decoded value before it is persisted.
type Sanitizer interface {
	SanitizeValue(codec.Value) codec.Value
}

// SanitizerFunc adapts a function into a Sanitizer.
type SanitizerFunc func(codec.Value) codec.Value

// SanitizeValue calls the underlying function.
func (fn SanitizerFunc) SanitizeValue(value codec.Value) codec.Value {
	return fn(value)
}

// Script describes a JavaScript dependency emitted once per page.
type Script struct {
	Handle string
	Src    string
	Inline string
	Defer  bool
	Module bool
	Deps   []string
}

// Stylesheet describes a CSS dependency emitted once per page.
type Stylesheet struct {
	Handle string
	Href   string
	Deps   []string
}

// Assets bundles the dependencies a field type needs on the edit screen.
type Assets struct {
	Stylesheets []Stylesheet
	Scripts     []Script
}
