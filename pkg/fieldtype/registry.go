package fieldtype

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry tracks field types keyed by name. Later registrations replace
// earlier ones with the same name.
type Registry struct {
	mu    sync.RWMutex
	types map[string]FieldType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]FieldType),
	}
}

// Register adds a field type under its own name.
func (r *Registry) Register(ft FieldType) error {
	if ft == nil {
		return fmt.Errorf("fieldtype: field type is nil")
	}
	name := normalize(ft.Name())
	if name == "" {
		return fmt.Errorf("fieldtype: field type name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = ft
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(ft FieldType) {
	if err := r.Register(ft); err != nil {
		panic(err)
	}
}

// Lookup returns the field type registered under name.
func (r *Registry) Lookup(name string) (FieldType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ft, ok := r.types[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return ft, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Assets aggregates the dependencies of the named field types, dropping
// duplicates by handle (or URL when no handle is set) while preserving order.
func (r *Registry) Assets(names ...string) Assets {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out Assets
	seenStyles := make(map[string]struct{})
	seenScripts := make(map[string]struct{})

	for _, name := range names {
		ft, ok := r.types[normalize(name)]
		if !ok {
			continue
		}
		assets := ft.Assets()
		for _, sheet := range assets.Stylesheets {
			key := assetKey(sheet.Handle, sheet.Href, "")
			if key == "" {
				continue
			}
			if _, exists := seenStyles[key]; exists {
				continue
			}
			seenStyles[key] = struct{}{}
			sheet.Deps = slices.Clone(sheet.Deps)
			out.Stylesheets = append(out.Stylesheets, sheet)
		}
		for _, script := range assets.Scripts {
			key := assetKey(script.Handle, script.Src, script.Inline)
			if key == "" {
				continue
			}
			if _, exists := seenScripts[key]; exists {
				continue
			}
			seenScripts[key] = struct{}{}
			script.Deps = slices.Clone(script.Deps)
			out.Scripts = append(out.Scripts, script)
		}
	}
	return out
}

func assetKey(handle, src, inline string) string {
	switch {
	case strings.TrimSpace(handle) != "":
		return "handle:" + strings.TrimSpace(handle)
	case src != "":
		return "src:" + src
	case inline != "":
		return "inline:" + inline
	default:
		return ""
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
