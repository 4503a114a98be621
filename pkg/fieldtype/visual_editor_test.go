package fieldtype_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-visualeditor/pkg/codec"
	"github.com/goliatone/go-formgen-visualeditor/pkg/fieldtype"
	"github.com/goliatone/go-formgen-visualeditor/pkg/model"
)

func newVisualEditor(t *testing.T, options ...fieldtype.Option) *fieldtype.VisualEditor {
	t.Helper()
	ve, err := fieldtype.NewVisualEditor(options...)
	if err != nil {
		t.Fatalf("new visual editor: %v", err)
	}
	return ve
}

func TestVisualEditorMetadata(t *testing.T) {
	ve := newVisualEditor(t)

	if ve.Name() != fieldtype.TypeName {
		t.Fatalf("unexpected name %q", ve.Name())
	}
	if ve.Label() != "Visual Editor" {
		t.Fatalf("unexpected label %q", ve.Label())
	}
	if ve.Category() != "content" {
		t.Fatalf("unexpected category %q", ve.Category())
	}
	if !ve.ShowInREST() {
		t.Fatalf("expected value to be exposed over REST")
	}
	if got := ve.Defaults().EditorHeight; got != model.DefaultEditorHeight {
		t.Fatalf("expected default height %d, got %d", model.DefaultEditorHeight, got)
	}

	renamed := newVisualEditor(t, fieldtype.WithName("page_builder"), fieldtype.WithLabels(fieldtype.Labels{Label: "Page Builder"}))
	if renamed.Name() != "page_builder" || renamed.Label() != "Page Builder" {
		t.Fatalf("expected overrides, got %q / %q", renamed.Name(), renamed.Label())
	}
	if renamed.Description() != fieldtype.DefaultLabels().Description {
		t.Fatalf("expected blank label override to keep default description")
	}
}

func TestVisualEditorRenderField(t *testing.T) {
	ve := newVisualEditor(t)
	value := codec.EncodeParts(`<p class="lead">Hi</p>`, ".lead{color:red}", "body{margin:0}")

	out, err := ve.RenderField(context.Background(), model.Field{
		Key:      "field_hero",
		Name:     "acf[field_hero]",
		Label:    "Hero",
		Value:    value,
		Required: true,
	})
	if err != nil {
		t.Fatalf("render field: %v", err)
	}

	for _, snippet := range []string{
		`data-visual-editor="true"`,
		`data-field-key="field_hero"`,
		`data-editor-id="gjs-field_hero"`,
		`id="gjs-field_hero-config"`,
		`id="gjs-field_hero-blocks"`,
		`<div id="gjs-field_hero" class="ve-editor"></div>`,
		`id="gjs-field_hero-custom-css"`,
		`>body{margin:0}</textarea>`,
		`name="acf[field_hero]" id="gjs-field_hero-storage"`,
		` hidden required>`,
		`&lt;p class=\&quot;lead\&quot;&gt;Hi&lt;/p&gt;`,
		`style="height: 600px;"`,
		`data-device="Desktop"`,
		`data-device="Mobile"`,
		`data-cmd="core:undo"`,
		`<span class="ve-device-info">Desktop</span>`,
	} {
		if !strings.Contains(out, snippet) {
			t.Errorf("expected markup to contain %q", snippet)
		}
	}
	if strings.Contains(out, `<p class="lead">Hi</p>`) {
		t.Fatalf("stored value must be escaped inside the storage textarea")
	}
}

func TestVisualEditorRenderFieldHeight(t *testing.T) {
	ve := newVisualEditor(t)
	cases := []struct {
		height int
		want   string
	}{
		{height: 0, want: "height: 600px;"},
		{height: 800, want: "height: 800px;"},
		{height: 100, want: "height: 300px;"},
		{height: 5000, want: "height: 1200px;"},
	}
	for _, tc := range cases {
		out, err := ve.RenderField(context.Background(), model.Field{
			Key:      "field_h",
			Settings: model.Settings{EditorHeight: tc.height},
		})
		if err != nil {
			t.Fatalf("render field: %v", err)
		}
		if !strings.Contains(out, tc.want) {
			t.Errorf("height %d: expected %q", tc.height, tc.want)
		}
	}
}

func TestVisualEditorRenderFieldErrors(t *testing.T) {
	ve := newVisualEditor(t)

	if _, err := ve.RenderField(context.Background(), model.Field{Key: "  "}); !errors.Is(err, fieldtype.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ve.RenderField(ctx, model.Field{Key: "field_a"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestVisualEditorRenderSettings(t *testing.T) {
	ve := newVisualEditor(t)

	out, err := ve.RenderSettings(context.Background(), model.Field{Key: "field_a", Name: "fields[3]"})
	if err != nil {
		t.Fatalf("render settings: %v", err)
	}
	for _, snippet := range []string{
		`name="fields[3][editor_height]"`,
		`value="680"`,
		`min="300"`,
		`max="1200"`,
		`Editor Height`,
	} {
		if !strings.Contains(out, snippet) {
			t.Errorf("expected settings markup to contain %q", snippet)
		}
	}
}

func TestVisualEditorAssets(t *testing.T) {
	ve := newVisualEditor(t, fieldtype.WithAssetPrefix("/static/"))

	want := fieldtype.Assets{
		Stylesheets: []fieldtype.Stylesheet{
			{Handle: "grapesjs", Href: "/static/grapes.min.css"},
			{Handle: "visual-editor", Href: "/static/visual-editor.css", Deps: []string{"grapesjs"}},
		},
		Scripts: []fieldtype.Script{
			{Handle: "grapesjs", Src: "/static/grapes.min.js"},
			{Handle: "visual-editor", Src: "/static/visual-editor.js", Defer: true, Deps: []string{"grapesjs"}},
		},
	}
	if diff := cmp.Diff(want, ve.Assets()); diff != "" {
		t.Fatalf("assets mismatch (-want +got):\n%s", diff)
	}

	for _, name := range []string{fieldtype.ScriptName, fieldtype.StylesheetName} {
		if _, err := fs.Stat(fieldtype.AssetsFS(), name); err != nil {
			t.Fatalf("expected embedded asset %s: %v", name, err)
		}
	}
}

func TestVisualEditorThemeOverrides(t *testing.T) {
	recorder := &recordingRenderer{}
	ve := newVisualEditor(t,
		fieldtype.WithTemplateRenderer(recorder),
		fieldtype.WithTheme(&theme.RendererConfig{
			Theme: "acme",
			Partials: map[string]string{
				fieldtype.PartialField: "themes/acme/visual-editor.tpl",
			},
			CSSVars: map[string]string{
				"--ve-accent": "#123456",
				"--ve-border": "#eee",
			},
			AssetURL: func(key string) string {
				if key == fieldtype.AssetBuilderScript {
					return "https://cdn.example.com/grapes.js"
				}
				return ""
			},
		}),
	)

	if _, err := ve.RenderField(context.Background(), model.Field{Key: "field_a"}); err != nil {
		t.Fatalf("render field: %v", err)
	}
	if recorder.name != "themes/acme/visual-editor.tpl" {
		t.Fatalf("expected theme partial, got %q", recorder.name)
	}
	if got := recorder.data["css_vars"]; got != "--ve-accent: #123456; --ve-border: #eee;" {
		t.Fatalf("unexpected css vars %q", got)
	}

	if _, err := ve.RenderSettings(context.Background(), model.Field{Key: "field_a"}); err != nil {
		t.Fatalf("render settings: %v", err)
	}
	if recorder.name != "templates/visual_editor_settings" {
		t.Fatalf("expected embedded settings template, got %q", recorder.name)
	}

	assets := ve.Assets()
	if assets.Scripts[0].Src != "https://cdn.example.com/grapes.js" {
		t.Fatalf("expected theme asset url, got %q", assets.Scripts[0].Src)
	}
	if assets.Scripts[1].Src != "/assets/visual-editor.js" {
		t.Fatalf("expected prefix fallback, got %q", assets.Scripts[1].Src)
	}
}

func TestVisualEditorUpdateValue(t *testing.T) {
	raw := codec.EncodeParts(`<p onclick="x()">Hi</p>`, "", "")

	passthrough := newVisualEditor(t)
	got, err := passthrough.UpdateValue(context.Background(), raw, model.Field{})
	if err != nil {
		t.Fatalf("update value: %v", err)
	}
	if got != raw {
		t.Fatalf("expected value stored unchanged, got %q", got)
	}

	sanitizing := newVisualEditor(t, fieldtype.WithSanitizer(fieldtype.SanitizerFunc(func(v codec.Value) codec.Value {
		v.HTML = strings.ReplaceAll(v.HTML, ` onclick="x()"`, "")
		return v
	})))
	got, err = sanitizing.UpdateValue(context.Background(), raw, model.Field{})
	if err != nil {
		t.Fatalf("update value: %v", err)
	}
	if want := codec.EncodeParts("<p>Hi</p>", "", ""); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	legacy := "<style>p{}</style><p>x</p>"
	got, err = sanitizing.UpdateValue(context.Background(), legacy, model.Field{})
	if err != nil {
		t.Fatalf("update value: %v", err)
	}
	if want := codec.EncodeParts("<p>x</p>", "p{}", ""); got != want {
		t.Fatalf("expected legacy value upgraded to %q, got %q", want, got)
	}

	if got, _ := sanitizing.UpdateValue(context.Background(), "", model.Field{}); got != "" {
		t.Fatalf("expected empty value to stay empty, got %q", got)
	}
}

func TestVisualEditorFormatValue(t *testing.T) {
	ve := newVisualEditor(t)
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: ""},
		{name: "envelope", value: codec.EncodeParts("<p>x</p>", "p{}", "b{}"), want: "<style>p{}b{}</style><p>x</p>"},
		{name: "no styles", value: codec.EncodeParts("<p>x</p>", "", ""), want: "<p>x</p>"},
		{name: "plain html", value: "<p>legacy</p>", want: "<p>legacy</p>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ve.FormatValue(context.Background(), tc.value, model.Field{})
			if err != nil {
				t.Fatalf("format value: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestVisualEditorInitOptions(t *testing.T) {
	ve := newVisualEditor(t)
	opts, err := ve.InitOptions(model.Field{Key: "field_a", Value: codec.EncodeParts("<p>x</p>", "p{}", "b{}")})
	if err != nil {
		t.Fatalf("init options: %v", err)
	}
	if opts.EditorID != "gjs-field_a" || opts.CustomCSS != "b{}" {
		t.Fatalf("unexpected init options %+v", opts)
	}
	if opts.Components != "<p>x</p>" || opts.Style != "p{}" {
		t.Fatalf("expected decoded content, got %q / %q", opts.Components, opts.Style)
	}

	if _, err := ve.InitOptions(model.Field{}); !errors.Is(err, fieldtype.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

type recordingRenderer struct {
	name string
	data map[string]any
}

func (r *recordingRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data, out...)
}

func (r *recordingRenderer) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	r.name = name
	r.data, _ = data.(map[string]any)
	return "<div></div>", nil
}

func (r *recordingRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (r *recordingRenderer) RegisterFilter(string, func(any, any) (any, error)) error {
	return nil
}

func (r *recordingRenderer) GlobalContext(any) error { return nil }
