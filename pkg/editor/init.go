package editor

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formgen-visualeditor/pkg/codec"
)

// Panel container suffixes appended to the editor id. The field markup renders
// an element for each of them.
const (
	SuffixBlocks    = "-blocks"
	SuffixStyles    = "-styles"
	SuffixLayers    = "-layers"
	SuffixTraits    = "-traits"
	SuffixToolbar   = "-toolbar"
	SuffixCustomCSS = "-custom-css"
	SuffixStorage   = "-storage"
)

// Init is the payload passed to the builder's init call. Field names follow
// the builder's option names.
type Init struct {
	Container       string         `json:"container"`
	Height          string         `json:"height"`
	Width           string         `json:"width"`
	StorageManager  bool           `json:"storageManager"`
	Components      string         `json:"components"`
	Style           string         `json:"style"`
	WrapperIsBody   bool           `json:"wrapperIsBody"`
	Canvas          CanvasOptions  `json:"canvas"`
	Plugins         []string       `json:"plugins"`
	PluginsOpts     map[string]any `json:"pluginsOpts"`
	BlockManager    BlockManager   `json:"blockManager"`
	LayerManager    Mount          `json:"layerManager"`
	SelectorManager Mount          `json:"selectorManager"`
	StyleManager    StyleManager   `json:"styleManager"`
	TraitManager    Mount          `json:"traitManager"`
	Panels          Panels         `json:"panels"`
	DeviceManager   DeviceManager  `json:"deviceManager"`
	CustomCSS       string         `json:"-"`
	EditorID        string         `json:"-"`
	DefaultDevice   string         `json:"-"`
}

// CanvasOptions lists extra stylesheets injected into the canvas frame.
type CanvasOptions struct {
	Styles []string `json:"styles"`
}

// Mount names the element a builder panel is appended to.
type Mount struct {
	AppendTo string `json:"appendTo"`
}

// BlockManager configures the block palette.
type BlockManager struct {
	AppendTo string        `json:"appendTo"`
	Blocks   []clientBlock `json:"blocks"`
}

// StyleManager configures the style inspector.
type StyleManager struct {
	AppendTo string        `json:"appendTo"`
	Sectors  []StyleSector `json:"sectors"`
}

// Panels disables the builder's default panels; the field renders its own
// toolbar and sidebars.
type Panels struct {
	Defaults []any `json:"defaults"`
}

// DeviceManager configures preview breakpoints.
type DeviceManager struct {
	Devices []Device `json:"devices"`
}

type clientBlock struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Content  any    `json:"content"`
	Media    string `json:"media,omitempty"`
	Select   bool   `json:"select,omitempty"`
	Activate bool   `json:"activate,omitempty"`
}

// InitOptions builds the init payload for the editor identified by editorID,
// seeded with the decoded field value.
func InitOptions(editorID string, value codec.Value, cfg Config) Init {
	selector := "#" + editorID

	blocks := make([]clientBlock, 0, len(cfg.Blocks))
	for _, block := range cfg.Blocks {
		var content any = block.Content
		if block.Component != "" {
			content = map[string]string{"type": block.Component}
		}
		blocks = append(blocks, clientBlock{
			ID:       block.ID,
			Label:    block.Label,
			Category: block.Category,
			Content:  content,
			Media:    block.Media,
			Select:   block.Select,
			Activate: block.Activate,
		})
	}

	canvasStyles := append([]string{}, cfg.CanvasStyles...)
	cloned := cfg.Clone()
	sectors := cloned.Sectors
	if sectors == nil {
		sectors = []StyleSector{}
	}
	devices := cloned.Devices
	if devices == nil {
		devices = []Device{}
	}

	return Init{
		Container:       selector,
		Height:          "100%",
		Width:           "auto",
		StorageManager:  false,
		Components:      value.HTML,
		Style:           value.CSS,
		WrapperIsBody:   false,
		Canvas:          CanvasOptions{Styles: canvasStyles},
		Plugins:         []string{},
		PluginsOpts:     map[string]any{},
		BlockManager:    BlockManager{AppendTo: selector + SuffixBlocks, Blocks: blocks},
		LayerManager:    Mount{AppendTo: selector + SuffixLayers},
		SelectorManager: Mount{AppendTo: selector + SuffixStyles},
		StyleManager:    StyleManager{AppendTo: selector + SuffixStyles, Sectors: sectors},
		TraitManager:    Mount{AppendTo: selector + SuffixTraits},
		Panels:          Panels{Defaults: []any{}},
		DeviceManager:   DeviceManager{Devices: devices},
		CustomCSS:       value.CustomCSS,
		EditorID:        editorID,
		DefaultDevice:   cfg.DefaultDevice().Name,
	}
}

// JSON serialises the payload for embedding in a data attribute.
func (i Init) JSON() (string, error) {
	data, err := json.Marshal(i)
	if err != nil {
		return "", fmt.Errorf("editor: encode init options: %w", err)
	}
	return string(data), nil
}
