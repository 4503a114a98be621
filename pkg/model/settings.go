package model

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// DefaultEditorHeight is the height assigned to newly configured fields.
	DefaultEditorHeight = 680
	// FallbackEditorHeight is used when a field reaches the render hook
	// without a height setting.
	FallbackEditorHeight = 600
	// MinEditorHeight and MaxEditorHeight bound the editor height setting.
	MinEditorHeight = 300
	MaxEditorHeight = 1200
)

const (
	ValidationRuleMin = "min"
	ValidationRuleMax = "max"
)

// ValidationRule describes a single constraint on a setting. Numeric bounds
// encode their threshold in Params["value"].
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// ErrInvalidSettings is wrapped by Settings.Validate failures.
var ErrInvalidSettings = errors.New("model: invalid settings")

// Settings captures the per-field options configured in the settings panel.
type Settings struct {
	EditorHeight int `json:"editor_height,omitempty"`
}

// DefaultSettings returns the defaults for a new visual editor field.
func DefaultSettings() Settings {
	return Settings{EditorHeight: DefaultEditorHeight}
}

// Height returns the editor height in pixels used when rendering. Unset
// heights fall back to FallbackEditorHeight; out of range values are clamped.
func (s Settings) Height() int {
	height := s.EditorHeight
	if height <= 0 {
		return FallbackEditorHeight
	}
	if height < MinEditorHeight {
		return MinEditorHeight
	}
	if height > MaxEditorHeight {
		return MaxEditorHeight
	}
	return height
}

// HeightRules returns the validation rules applied to the editor height.
func HeightRules() []ValidationRule {
	return []ValidationRule{
		{Kind: ValidationRuleMin, Params: map[string]string{"value": strconv.Itoa(MinEditorHeight)}},
		{Kind: ValidationRuleMax, Params: map[string]string{"value": strconv.Itoa(MaxEditorHeight)}},
	}
}

// Validate reports settings that fall outside the allowed bounds. A zero
// height is valid and means "use the fallback".
func (s Settings) Validate() error {
	if s.EditorHeight == 0 {
		return nil
	}
	if s.EditorHeight < MinEditorHeight {
		return fmt.Errorf("%w: editor_height %d below minimum %d", ErrInvalidSettings, s.EditorHeight, MinEditorHeight)
	}
	if s.EditorHeight > MaxEditorHeight {
		return fmt.Errorf("%w: editor_height %d above maximum %d", ErrInvalidSettings, s.EditorHeight, MaxEditorHeight)
	}
	return nil
}

// ParseEditorHeight converts a submitted settings value into a height. Blank
// input yields zero.
func ParseEditorHeight(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	height, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: editor_height %q is not a number", ErrInvalidSettings, raw)
	}
	return height, nil
}
