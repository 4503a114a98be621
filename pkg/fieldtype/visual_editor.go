package fieldtype

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formgen-visualeditor/pkg/codec"
	"github.com/goliatone/go-formgen-visualeditor/pkg/editor"
	"github.com/goliatone/go-formgen-visualeditor/pkg/model"
	rendertemplate "github.com/goliatone/go-formgen-visualeditor/pkg/render/template"
	"github.com/goliatone/go-formgen-visualeditor/pkg/render/template/gotemplate"
)

const (
	// TypeName is the registry name of the visual editor field type.
	TypeName = "visual_editor"
	// Category groups the field type in the host's type picker.
	Category = "content"

	fieldTemplate    = "templates/visual_editor"
	settingsTemplate = "templates/visual_editor_settings"
)

// VisualEditor embeds the drag-and-drop page builder inside a form field and
// stores its output as a JSON envelope.
type VisualEditor struct {
	name         string
	templates    rendertemplate.TemplateRenderer
	editorConfig editor.Config
	sanitizer    Sanitizer
	theme        *theme.RendererConfig
	assetPrefix  string
	labels       Labels
}

var _ FieldType = (*VisualEditor)(nil)

// NewVisualEditor constructs the field type. Without WithTemplateRenderer the
// embedded templates are used.
func NewVisualEditor(options ...Option) (*VisualEditor, error) {
	v := &VisualEditor{
		name:         TypeName,
		editorConfig: editor.DefaultConfig(),
		assetPrefix:  "/assets",
		labels:       DefaultLabels(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}

	if v.templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("fieldtype: template engine: %w", err)
		}
		v.templates = engine
	}
	if err := v.editorConfig.Validate(); err != nil {
		return nil, fmt.Errorf("fieldtype: %w", err)
	}
	return v, nil
}

func (v *VisualEditor) Name() string             { return v.name }
func (v *VisualEditor) Label() string            { return v.labels.Label }
func (v *VisualEditor) Category() string         { return Category }
func (v *VisualEditor) Description() string      { return v.labels.Description }
func (v *VisualEditor) Defaults() model.Settings { return model.DefaultSettings() }
func (v *VisualEditor) ShowInREST() bool         { return true }

// EditorConfig returns a copy of the palette, sectors and devices in use.
func (v *VisualEditor) EditorConfig() editor.Config {
	return v.editorConfig.Clone()
}

// InitOptions returns the builder init payload for a field.
func (v *VisualEditor) InitOptions(field model.Field) (editor.Init, error) {
	editorID := field.EditorID()
	if editorID == "" {
		return editor.Init{}, ErrMissingKey
	}
	return editor.InitOptions(editorID, codec.Decode(field.Value), v.editorConfig), nil
}

// RenderField renders the edit-screen markup: toolbar, block sidebar, canvas,
// style/layer/settings sidebar and the hidden storage textarea holding the
// raw value.
func (v *VisualEditor) RenderField(ctx context.Context, field model.Field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	opts, err := v.InitOptions(field)
	if err != nil {
		return "", err
	}
	initJSON, err := opts.JSON()
	if err != nil {
		return "", fmt.Errorf("fieldtype: %w", err)
	}

	payload := map[string]any{
		"field": map[string]any{
			"key":          strings.TrimSpace(field.Key),
			"name":         field.InputName(),
			"label":        field.Label,
			"instructions": field.Instructions,
			"required":     field.Required,
		},
		"editor_id":      opts.EditorID,
		"height":         strconv.Itoa(field.Settings.Height()),
		"value":          field.Value,
		"custom_css":     opts.CustomCSS,
		"init_json":      initJSON,
		"devices":        v.toolbarDevices(),
		"default_device": opts.DefaultDevice,
		"labels":         labelPayload(v.labels),
		"css_vars":       v.cssVarsStyle(),
	}

	name := v.resolveTemplate(PartialField, fieldTemplate)
	rendered, err := v.templates.RenderTemplate(name, payload)
	if err != nil {
		return "", fmt.Errorf("fieldtype: render template %q: %w", name, err)
	}
	return rendered, nil
}

// RenderSettings renders the field configuration controls: a numeric editor
// height bounded by model.MinEditorHeight and model.MaxEditorHeight.
func (v *VisualEditor) RenderSettings(ctx context.Context, field model.Field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	height := field.Settings.EditorHeight
	if height == 0 {
		height = v.Defaults().EditorHeight
	}

	payload := map[string]any{
		"prefix": field.InputName(),
		"height": strconv.Itoa(height),
		"min":    strconv.Itoa(model.MinEditorHeight),
		"max":    strconv.Itoa(model.MaxEditorHeight),
		"labels": labelPayload(v.labels),
	}

	name := v.resolveTemplate(PartialSettings, settingsTemplate)
	rendered, err := v.templates.RenderTemplate(name, payload)
	if err != nil {
		return "", fmt.Errorf("fieldtype: render template %q: %w", name, err)
	}
	return rendered, nil
}

// Assets lists the builder library and the field bootstrap. The field assets
// depend on the builder so hosts can order them.
func (v *VisualEditor) Assets() Assets {
	return Assets{
		Stylesheets: []Stylesheet{
			{Handle: "grapesjs", Href: v.assetURL(AssetBuilderStylesheet, BuilderStylesheetName)},
			{Handle: "visual-editor", Href: v.assetURL(AssetStylesheet, StylesheetName), Deps: []string{"grapesjs"}},
		},
		Scripts: []Script{
			{Handle: "grapesjs", Src: v.assetURL(AssetBuilderScript, BuilderScriptName)},
			{Handle: "visual-editor", Src: v.assetURL(AssetScript, ScriptName), Defer: true, Deps: []string{"grapesjs"}},
		},
	}
}

// UpdateValue runs before a submitted value is persisted. Without a sanitizer
// the raw value is stored unchanged; with one the value is decoded, cleaned
// and re-encoded as an envelope.
func (v *VisualEditor) UpdateValue(ctx context.Context, value string, _ model.Field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if v.sanitizer == nil || value == "" {
		return value, nil
	}
	return codec.Encode(v.sanitizer.SanitizeValue(codec.Decode(value))), nil
}

// FormatValue produces the display markup for a stored value.
func (v *VisualEditor) FormatValue(ctx context.Context, value string, _ model.Field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return codec.Render(value), nil
}

type toolbarDevice struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

func (v *VisualEditor) toolbarDevices() []toolbarDevice {
	devices := make([]toolbarDevice, 0, len(v.editorConfig.Devices))
	for _, device := range v.editorConfig.Devices {
		title := device.Name
		if device.WidthMedia != "" {
			title = fmt.Sprintf("%s (≤%s)", device.Name, device.WidthMedia)
		}
		devices = append(devices, toolbarDevice{
			Name:  device.Name,
			Title: title,
			Icon:  deviceIcon(device),
		})
	}
	return devices
}

func (v *VisualEditor) resolveTemplate(partial, fallback string) string {
	if v.theme != nil && v.theme.Partials != nil {
		if candidate := strings.TrimSpace(v.theme.Partials[partial]); candidate != "" {
			return candidate
		}
	}
	return fallback
}

func (v *VisualEditor) assetURL(key, file string) string {
	if v.theme != nil && v.theme.AssetURL != nil {
		if resolved := strings.TrimSpace(v.theme.AssetURL(key)); resolved != "" {
			return resolved
		}
	}
	return v.assetPrefix + "/" + file
}

func (v *VisualEditor) cssVarsStyle() string {
	if v.theme == nil || len(v.theme.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(v.theme.CSSVars))
	for key := range v.theme.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(v.theme.CSSVars[key])
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}

func labelPayload(labels Labels) map[string]any {
	return map[string]any{
		"load_error":       labels.LoadError,
		"height_label":     labels.HeightLabel,
		"height_help":      labels.HeightHelp,
		"blocks_title":     labels.BlocksTitle,
		"custom_css_title": labels.CustomCSSTitle,
		"custom_css_hint":  labels.CustomCSSHint,
		"styles_tab":       labels.StylesTab,
		"layers_tab":       labels.LayersTab,
		"settings_tab":     labels.SettingsTab,
		"toggle_borders":   labels.ToggleBorders,
		"undo":             labels.Undo,
		"redo":             labels.Redo,
		"fullscreen":       labels.Fullscreen,
	}
}
