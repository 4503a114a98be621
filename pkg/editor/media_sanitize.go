package editor

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	mediaPolicyOnce sync.Once
	mediaPolicy     *bluemonday.Policy
)

// SanitizeMedia strips everything but inline SVG drawing elements from block
// icon markup.
func SanitizeMedia(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(mediaSanitizer().Sanitize(trimmed))
}

func mediaSanitizer() *bluemonday.Policy {
	mediaPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon", "ellipse", "title")

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "aria-hidden", "role", "focusable", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width", "class",
			).OnElements(el)
		}
		policy.AllowAttrs("fill", "class").OnElements("g")

		mediaPolicy = policy
	})
	return mediaPolicy
}
