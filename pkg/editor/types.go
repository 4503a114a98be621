package editor

import (
	"slices"
	"strconv"
	"strings"
)

// Block categories used by the built-in palette.
const (
	CategoryBasic      = "Basic"
	CategoryLayout     = "Layout"
	CategoryComponents = "Components"
)

// Block describes a palette entry. Content holds literal HTML; Component names
// a builder component type (for example "image") and takes precedence over
// Content when set.
type Block struct {
	ID        string `json:"id" yaml:"id"`
	Label     string `json:"label" yaml:"label"`
	Category  string `json:"category" yaml:"category"`
	Content   string `json:"content,omitempty" yaml:"content,omitempty"`
	Component string `json:"component,omitempty" yaml:"component,omitempty"`
	Media     string `json:"media,omitempty" yaml:"media,omitempty"`
	Select    bool   `json:"select,omitempty" yaml:"select,omitempty"`
	Activate  bool   `json:"activate,omitempty" yaml:"activate,omitempty"`
}

// PropertyOption is a selectable value of a style property.
type PropertyOption struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// StyleProperty describes a single CSS property exposed by the style manager.
type StyleProperty struct {
	Name     string           `json:"name" yaml:"name"`
	Property string           `json:"property" yaml:"property"`
	Type     string           `json:"type,omitempty" yaml:"type,omitempty"`
	Defaults string           `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Units    []string         `json:"units,omitempty" yaml:"units,omitempty"`
	Min      *float64         `json:"min,omitempty" yaml:"min,omitempty"`
	Options  []PropertyOption `json:"options,omitempty" yaml:"options,omitempty"`
}

// StyleSector groups style properties. BuildProps lists properties the
// builder constructs with its own defaults.
type StyleSector struct {
	Name       string          `json:"name" yaml:"name"`
	Open       bool            `json:"open" yaml:"open"`
	Properties []StyleProperty `json:"properties,omitempty" yaml:"properties,omitempty"`
	BuildProps []string        `json:"buildProps,omitempty" yaml:"buildProps,omitempty"`
}

// Device is a preview breakpoint. An empty Width means full width.
type Device struct {
	Name       string `json:"name" yaml:"name"`
	Width      string `json:"width" yaml:"width"`
	WidthMedia string `json:"widthMedia,omitempty" yaml:"widthMedia,omitempty"`
}

// Breakpoint returns the media width in pixels, or zero for full width.
func (d Device) Breakpoint() int {
	raw := strings.TrimSpace(d.WidthMedia)
	if raw == "" {
		raw = strings.TrimSpace(d.Width)
	}
	px, err := strconv.Atoi(strings.TrimSuffix(raw, "px"))
	if err != nil {
		return 0
	}
	return px
}

// Config bundles everything the builder is initialised with apart from the
// field content itself.
type Config struct {
	Blocks       []Block       `json:"blocks" yaml:"blocks"`
	Sectors      []StyleSector `json:"sectors" yaml:"sectors"`
	Devices      []Device      `json:"devices" yaml:"devices"`
	CanvasStyles []string      `json:"canvasStyles,omitempty" yaml:"canvasStyles,omitempty"`
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	out := Config{
		Blocks:       slices.Clone(c.Blocks),
		Devices:      slices.Clone(c.Devices),
		CanvasStyles: slices.Clone(c.CanvasStyles),
	}
	if c.Sectors != nil {
		out.Sectors = make([]StyleSector, len(c.Sectors))
		for idx, sector := range c.Sectors {
			out.Sectors[idx] = cloneSector(sector)
		}
	}
	return out
}

// Block returns the block with the supplied id.
func (c Config) Block(id string) (Block, bool) {
	for _, block := range c.Blocks {
		if block.ID == id {
			return block, true
		}
	}
	return Block{}, false
}

// Categories returns block categories in palette order.
func (c Config) Categories() []string {
	var out []string
	for _, block := range c.Blocks {
		if block.Category == "" || slices.Contains(out, block.Category) {
			continue
		}
		out = append(out, block.Category)
	}
	return out
}

// DefaultDevice returns the device selected when the editor opens.
func (c Config) DefaultDevice() Device {
	if len(c.Devices) == 0 {
		return Device{}
	}
	return c.Devices[0]
}

func cloneSector(src StyleSector) StyleSector {
	out := StyleSector{
		Name:       src.Name,
		Open:       src.Open,
		BuildProps: slices.Clone(src.BuildProps),
	}
	if src.Properties != nil {
		out.Properties = make([]StyleProperty, len(src.Properties))
		for idx, prop := range src.Properties {
			cloned := prop
			cloned.Units = slices.Clone(prop.Units)
			cloned.Options = slices.Clone(prop.Options)
			if prop.Min != nil {
				bound := *prop.Min
				cloned.Min = &bound
			}
			out.Properties[idx] = cloned
		}
	}
	return out
}
