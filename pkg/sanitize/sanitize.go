// Package sanitize cleans visual editor values before they are stored. It is
// opt-in: fieldtype.WithSanitizer(sanitize.New()) enables it.
package sanitize

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formgen-visualeditor/pkg/codec"
)

var (
	builderPolicyOnce sync.Once
	builderPolicy     *bluemonday.Policy

	closeStylePattern = regexp.MustCompile(`(?i)</style`)
)

// layoutProperties lists the inline style properties the style manager writes.
var layoutProperties = []string{
	"display", "float", "position", "top", "right", "bottom", "left",
	"flex-direction", "flex-wrap", "justify-content", "align-items", "align-content", "flex", "gap",
	"width", "min-width", "max-width", "height", "min-height", "max-height",
	"margin", "margin-top", "margin-right", "margin-bottom", "margin-left",
	"padding", "padding-top", "padding-right", "padding-bottom", "padding-left",
	"font-family", "font-size", "font-weight", "letter-spacing", "color", "line-height", "text-align",
	"background-color", "border-radius", "border", "box-shadow", "opacity",
}

// Policy returns the HTML policy used for builder markup: the bluemonday UGC
// policy plus the ids, classes, inline layout styles and embeds the builder
// emits. The policy is shared and must not be mutated.
func Policy() *bluemonday.Policy {
	builderPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("id", "class", "title").Globally()
		policy.AllowStyles(layoutProperties...).Globally()

		policy.AllowElements("section", "header", "footer", "figure", "figcaption", "blockquote")
		policy.AllowAttrs("src", "width", "height", "frameborder", "allowfullscreen", "allow").OnElements("iframe")
		policy.AllowAttrs("src", "controls", "poster", "width", "height").OnElements("video")
		policy.AllowAttrs("src", "type").OnElements("source")
		policy.AllowElements("iframe", "video", "source")

		builderPolicy = policy
	})
	return builderPolicy
}

// HTML sanitises builder markup with Policy.
func HTML(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	return Policy().Sanitize(raw)
}

// CSS neutralises closing style tags so stored CSS cannot terminate the
// display <style> element. Everything else passes through.
func CSS(css string) string {
	return closeStylePattern.ReplaceAllStringFunc(css, func(match string) string {
		return `<\` + match[1:]
	})
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithPolicy replaces the builder policy for HTML.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(s *Sanitizer) {
		if policy != nil {
			s.policy = policy
		}
	}
}

// WithCSS toggles CSS neutralisation. Enabled by default.
func WithCSS(enabled bool) Option {
	return func(s *Sanitizer) {
		s.css = enabled
	}
}

// Sanitizer implements fieldtype.Sanitizer.
type Sanitizer struct {
	policy *bluemonday.Policy
	css    bool
}

// New builds a Sanitizer using Policy and CSS neutralisation.
func New(options ...Option) *Sanitizer {
	s := &Sanitizer{css: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// SanitizeValue cleans every component of a decoded value.
func (s *Sanitizer) SanitizeValue(value codec.Value) codec.Value {
	policy := s.policy
	if policy == nil {
		policy = Policy()
	}
	if strings.TrimSpace(value.HTML) != "" {
		value.HTML = policy.Sanitize(value.HTML)
	}
	if s.css {
		value.CSS = CSS(value.CSS)
		value.CustomCSS = CSS(value.CustomCSS)
	}
	return value
}
