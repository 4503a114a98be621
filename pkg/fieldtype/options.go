package fieldtype

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formgen-visualeditor/pkg/editor"
	rendertemplate "github.com/goliatone/go-formgen-visualeditor/pkg/render/template"
)

// Theme partial keys that override the embedded templates.
const (
	PartialField    = "forms.visual-editor"
	PartialSettings = "forms.visual-editor-settings"
)

// Theme asset keys resolved through RendererConfig.AssetURL.
const (
	AssetBuilderStylesheet = "visualeditor.builder.stylesheet"
	AssetBuilderScript     = "visualeditor.builder.script"
	AssetStylesheet        = "visualeditor.stylesheet"
	AssetScript            = "visualeditor.script"
)

// Labels holds the user-facing strings of the field type.
type Labels struct {
	Label          string
	Description    string
	LoadError      string
	HeightLabel    string
	HeightHelp     string
	BlocksTitle    string
	CustomCSSTitle string
	CustomCSSHint  string
	StylesTab      string
	LayersTab      string
	SettingsTab    string
	ToggleBorders  string
	Undo           string
	Redo           string
	Fullscreen     string
}

// DefaultLabels returns the English labels.
func DefaultLabels() Labels {
	return Labels{
		Label:          "Visual Editor",
		Description:    "A GrapesJS visual editor for drag-and-drop content editing.",
		LoadError:      "Error loading editor",
		HeightLabel:    "Editor Height",
		HeightHelp:     "Height of the editor in pixels",
		BlocksTitle:    "Blocks",
		CustomCSSTitle: "Custom CSS",
		CustomCSSHint:  "/* Add your custom CSS here */",
		StylesTab:      "Styles",
		LayersTab:      "Layers",
		SettingsTab:    "Settings",
		ToggleBorders:  "Toggle Borders",
		Undo:           "Undo",
		Redo:           "Redo",
		Fullscreen:     "Fullscreen",
	}
}

// Option configures a VisualEditor.
type Option func(*VisualEditor)

// WithTemplateRenderer replaces the embedded pongo2 templates.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(v *VisualEditor) {
		if renderer != nil {
			v.templates = renderer
		}
	}
}

// WithEditorConfig replaces the built-in palette, sectors and devices.
func WithEditorConfig(cfg editor.Config) Option {
	return func(v *VisualEditor) {
		v.editorConfig = cfg.Clone()
	}
}

// WithSanitizer enables value sanitisation in UpdateValue. Without a
// sanitizer submitted values are stored as received.
func WithSanitizer(s Sanitizer) Option {
	return func(v *VisualEditor) {
		v.sanitizer = s
	}
}

// WithTheme resolves partial overrides, CSS variables and asset URLs from a
// go-theme renderer configuration.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(v *VisualEditor) {
		v.theme = cfg
	}
}

// WithAssetPrefix sets the URL prefix used for assets the theme does not
// resolve. Defaults to "/assets".
func WithAssetPrefix(prefix string) Option {
	return func(v *VisualEditor) {
		v.assetPrefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	}
}

// WithLabels overrides the user-facing strings. Empty entries keep their
// defaults.
func WithLabels(labels Labels) Option {
	return func(v *VisualEditor) {
		v.labels = mergeLabels(v.labels, labels)
	}
}

// WithName registers the field type under a different name.
func WithName(name string) Option {
	return func(v *VisualEditor) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			v.name = trimmed
		}
	}
}

func mergeLabels(base, override Labels) Labels {
	pick := func(dst *string, src string) {
		if strings.TrimSpace(src) != "" {
			*dst = src
		}
	}
	pick(&base.Label, override.Label)
	pick(&base.Description, override.Description)
	pick(&base.LoadError, override.LoadError)
	pick(&base.HeightLabel, override.HeightLabel)
	pick(&base.HeightHelp, override.HeightHelp)
	pick(&base.BlocksTitle, override.BlocksTitle)
	pick(&base.CustomCSSTitle, override.CustomCSSTitle)
	pick(&base.CustomCSSHint, override.CustomCSSHint)
	pick(&base.StylesTab, override.StylesTab)
	pick(&base.LayersTab, override.LayersTab)
	pick(&base.SettingsTab, override.SettingsTab)
	pick(&base.ToggleBorders, override.ToggleBorders)
	pick(&base.Undo, override.Undo)
	pick(&base.Redo, override.Redo)
	pick(&base.Fullscreen, override.Fullscreen)
	return base
}
