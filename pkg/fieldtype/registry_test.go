package fieldtype_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-visualeditor/pkg/fieldtype"
	"github.com/goliatone/go-formgen-visualeditor/pkg/model"
)

type stubType struct {
	name   string
	assets fieldtype.Assets
}

func (s stubType) Name() string             { return s.name }
func (s stubType) Label() string            { return s.name }
func (s stubType) Category() string         { return "basic" }
func (s stubType) Description() string      { return "" }
func (s stubType) Defaults() model.Settings { return model.Settings{} }
func (s stubType) ShowInREST() bool         { return false }
func (s stubType) Assets() fieldtype.Assets { return s.assets }

func (s stubType) RenderField(context.Context, model.Field) (string, error)    { return "", nil }
func (s stubType) RenderSettings(context.Context, model.Field) (string, error) { return "", nil }

func (s stubType) UpdateValue(_ context.Context, value string, _ model.Field) (string, error) {
	return value, nil
}

func (s stubType) FormatValue(_ context.Context, value string, _ model.Field) (string, error) {
	return value, nil
}

func TestRegistryLookup(t *testing.T) {
	registry := fieldtype.NewRegistry()
	registry.MustRegister(stubType{name: "Text"})
	registry.MustRegister(stubType{name: "wysiwyg"})

	ft, err := registry.Lookup("  text ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ft.Name() != "Text" {
		t.Fatalf("unexpected field type %q", ft.Name())
	}

	if _, err := registry.Lookup("missing"); !errors.Is(err, fieldtype.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}

	if diff := cmp.Diff([]string{"text", "wysiwyg"}, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRegisterRejectsInvalid(t *testing.T) {
	registry := fieldtype.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil field type")
	}
	if err := registry.Register(stubType{name: "  "}); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestRegistryAssetsDeduplicates(t *testing.T) {
	registry := fieldtype.NewRegistry()
	registry.MustRegister(stubType{
		name: "first",
		assets: fieldtype.Assets{
			Stylesheets: []fieldtype.Stylesheet{{Handle: "grapesjs", Href: "/a.css"}},
			Scripts: []fieldtype.Script{
				{Handle: "grapesjs", Src: "/a.js"},
				{Inline: "console.log(1)"},
			},
		},
	})
	registry.MustRegister(stubType{
		name: "second",
		assets: fieldtype.Assets{
			Stylesheets: []fieldtype.Stylesheet{{Handle: "grapesjs", Href: "/other.css"}, {Href: "/b.css"}},
			Scripts: []fieldtype.Script{
				{Handle: "grapesjs", Src: "/other.js"},
				{Inline: "console.log(1)"},
				{Src: "/b.js", Deps: []string{"grapesjs"}},
			},
		},
	})

	got := registry.Assets("first", "unknown", "second")
	want := fieldtype.Assets{
		Stylesheets: []fieldtype.Stylesheet{
			{Handle: "grapesjs", Href: "/a.css"},
			{Href: "/b.css"},
		},
		Scripts: []fieldtype.Script{
			{Handle: "grapesjs", Src: "/a.js"},
			{Inline: "console.log(1)"},
			{Src: "/b.js", Deps: []string{"grapesjs"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("assets mismatch (-want +got):\n%s", diff)
	}
}
