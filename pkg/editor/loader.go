package editor

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Extend       bool          `json:"extend" yaml:"extend"`
	Blocks       []Block       `json:"blocks" yaml:"blocks"`
	Sectors      []StyleSector `json:"sectors" yaml:"sectors"`
	Devices      []Device      `json:"devices" yaml:"devices"`
	CanvasStyles []string      `json:"canvasStyles" yaml:"canvasStyles"`
}

// LoadFS reads an editor configuration document from fsys.
func LoadFS(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("editor: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("editor: read %s: %w", path, err)
	}
	return Load(data, path)
}

// Load parses a JSON or YAML configuration document. Lists present in the
// document replace the defaults; with `extend: true` entries are merged into
// the defaults instead, matching blocks by id and sectors and devices by name.
// Lists absent from the document keep their defaults.
func Load(data []byte, source string) (Config, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if doc.Extend {
		cfg.Blocks = mergeBlocks(cfg.Blocks, doc.Blocks)
		cfg.Sectors = mergeSectors(cfg.Sectors, doc.Sectors)
		cfg.Devices = mergeDevices(cfg.Devices, doc.Devices)
		cfg.CanvasStyles = append(cfg.CanvasStyles, doc.CanvasStyles...)
	} else {
		if doc.Blocks != nil {
			cfg.Blocks = doc.Blocks
		}
		if doc.Sectors != nil {
			cfg.Sectors = doc.Sectors
		}
		if doc.Devices != nil {
			cfg.Devices = doc.Devices
		}
		if doc.CanvasStyles != nil {
			cfg.CanvasStyles = doc.CanvasStyles
		}
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("editor: %s: %w", source, err)
	}
	return cfg, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("editor: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("editor: parse %s: invalid JSON or YAML", source)
}

func mergeBlocks(base, extra []Block) []Block {
	out := append([]Block(nil), base...)
	for _, block := range extra {
		replaced := false
		for idx := range out {
			if out[idx].ID == strings.TrimSpace(block.ID) {
				out[idx] = block
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, block)
		}
	}
	return out
}

func mergeSectors(base, extra []StyleSector) []StyleSector {
	out := append([]StyleSector(nil), base...)
	for _, sector := range extra {
		replaced := false
		for idx := range out {
			if out[idx].Name == strings.TrimSpace(sector.Name) {
				out[idx] = sector
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, sector)
		}
	}
	return out
}

func mergeDevices(base, extra []Device) []Device {
	out := append([]Device(nil), base...)
	for _, device := range extra {
		replaced := false
		for idx := range out {
			if out[idx].Name == strings.TrimSpace(device.Name) {
				out[idx] = device
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, device)
		}
	}
	return out
}
