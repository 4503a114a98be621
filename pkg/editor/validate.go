package editor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("editor: invalid config")

// Validate checks block ids are unique and non-empty, sectors are named and
// device names are unique.
func (c Config) Validate() error {
	var problems []string

	seenBlocks := make(map[string]struct{}, len(c.Blocks))
	for idx, block := range c.Blocks {
		id := strings.TrimSpace(block.ID)
		if id == "" {
			problems = append(problems, fmt.Sprintf("block %d has no id", idx))
			continue
		}
		if _, exists := seenBlocks[id]; exists {
			problems = append(problems, fmt.Sprintf("duplicate block id %q", id))
		}
		seenBlocks[id] = struct{}{}
		if block.Content == "" && block.Component == "" {
			problems = append(problems, fmt.Sprintf("block %q has neither content nor component", id))
		}
	}

	for idx, sector := range c.Sectors {
		if strings.TrimSpace(sector.Name) == "" {
			problems = append(problems, fmt.Sprintf("sector %d has no name", idx))
		}
		for _, prop := range sector.Properties {
			if strings.TrimSpace(prop.Property) == "" {
				problems = append(problems, fmt.Sprintf("sector %q has a property without a css name", sector.Name))
			}
		}
	}

	seenDevices := make(map[string]struct{}, len(c.Devices))
	for idx, device := range c.Devices {
		name := strings.TrimSpace(device.Name)
		if name == "" {
			problems = append(problems, fmt.Sprintf("device %d has no name", idx))
			continue
		}
		if _, exists := seenDevices[name]; exists {
			problems = append(problems, fmt.Sprintf("duplicate device %q", name))
		}
		seenDevices[name] = struct{}{}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

// Normalize trims identifiers and sanitises block media in place.
func (c *Config) Normalize() {
	if c == nil {
		return
	}
	for idx := range c.Blocks {
		block := &c.Blocks[idx]
		block.ID = strings.TrimSpace(block.ID)
		block.Label = strings.TrimSpace(block.Label)
		block.Category = strings.TrimSpace(block.Category)
		block.Component = strings.TrimSpace(block.Component)
		block.Media = SanitizeMedia(block.Media)
	}
	for idx := range c.Devices {
		c.Devices[idx].Name = strings.TrimSpace(c.Devices[idx].Name)
	}
	for idx := range c.Sectors {
		c.Sectors[idx].Name = strings.TrimSpace(c.Sectors[idx].Name)
	}
}
