package model

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// EditorIDPrefix prefixes the field key to build the on-screen editor id.
	EditorIDPrefix = "gjs-"
	// FieldKeyPrefix prefixes generated field keys.
	FieldKeyPrefix = "field_"
)

// Field models a single visual editor field instance as seen by the render and
// save hooks. Struct fields are annotated so hosts can serialise them directly.
type Field struct {
	Key          string            `json:"key"`
	Name         string            `json:"name"`
	Label        string            `json:"label,omitempty"`
	Instructions string            `json:"instructions,omitempty"`
	Value        string            `json:"value"`
	Required     bool              `json:"required,omitempty"`
	Settings     Settings          `json:"settings"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// NewFieldKey returns a unique key for fields created without one.
func NewFieldKey() string {
	return FieldKeyPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// EditorID returns the identifier of the on-screen editor for the field. It is
// used both as the DOM container id and as the key of live editor sessions.
func (f Field) EditorID() string {
	key := strings.TrimSpace(f.Key)
	if key == "" {
		return ""
	}
	return EditorIDPrefix + key
}

// InputName returns the form input name for the storage field, falling back to
// the key when the host did not provide a name.
func (f Field) InputName() string {
	if name := strings.TrimSpace(f.Name); name != "" {
		return name
	}
	return strings.TrimSpace(f.Key)
}

// WithDefaults returns a copy of the field with zero settings replaced by the
// supplied defaults.
func (f Field) WithDefaults(defaults Settings) Field {
	if f.Settings.EditorHeight == 0 {
		f.Settings.EditorHeight = defaults.EditorHeight
	}
	if len(f.Metadata) > 0 {
		cloned := make(map[string]string, len(f.Metadata))
		for key, value := range f.Metadata {
			cloned[key] = value
		}
		f.Metadata = cloned
	}
	return f
}
