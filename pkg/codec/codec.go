package codec

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

const (
	keyHTML      = "html"
	keyCSS       = "css"
	keyCustomCSS = "customCss"
)

// styleBlockPattern matches inline style elements in legacy content. Matching
// is case-insensitive and non-greedy, and spans newlines.
var styleBlockPattern = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)

// Value is the structured form of a stored field value.
type Value struct {
	HTML      string `json:"html"`
	CSS       string `json:"css"`
	CustomCSS string `json:"customCss"`
}

// IsZero reports whether every part of the value is empty.
func (v Value) IsZero() bool {
	return v.HTML == "" && v.CSS == "" && v.CustomCSS == ""
}

// Styles returns the generated CSS followed by the custom CSS.
func (v Value) Styles() string {
	return v.CSS + v.CustomCSS
}

// Markup returns the display markup for the value: the styles wrapped in a
// single <style> element followed by the HTML. When both style parts are
// empty the HTML is returned unchanged.
func (v Value) Markup() string {
	styles := v.Styles()
	if styles == "" {
		return v.HTML
	}
	var builder strings.Builder
	builder.Grow(len(styles) + len(v.HTML) + len("<style></style>"))
	builder.WriteString("<style>")
	builder.WriteString(styles)
	builder.WriteString("</style>")
	builder.WriteString(v.HTML)
	return builder.String()
}

// Decode parses a stored value. Envelopes containing an "html" member are read
// directly, with missing or null members defaulting to the empty string.
// Anything else, malformed JSON included, is treated as legacy HTML whose
// <style> blocks are lifted into CSS. Decode never fails.
func Decode(raw string) Value {
	if raw == "" {
		return Value{}
	}
	if value, ok := decodeEnvelope(raw); ok {
		return value
	}
	return decodeLegacy(raw)
}

// IsEnvelope reports whether raw is already stored as a JSON envelope.
func IsEnvelope(raw string) bool {
	_, ok := decodeEnvelope(raw)
	return ok
}

// Encode serialises the value as a JSON envelope. Only standard JSON string
// escaping is applied; markup characters are written verbatim.
func Encode(v Value) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		// A struct of three strings always encodes.
		panic("codec: encode envelope: " + err.Error())
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// EncodeParts is a convenience wrapper around Encode.
func EncodeParts(html, css, customCSS string) string {
	return Encode(Value{HTML: html, CSS: css, CustomCSS: customCSS})
}

// Render produces the display markup for a stored value. Empty input is
// returned unchanged.
func Render(raw string) string {
	if raw == "" {
		return raw
	}
	return Decode(raw).Markup()
}

// Migrate rewrites legacy content as an envelope. Envelopes and empty values
// are returned unchanged and report false.
func Migrate(raw string) (string, bool) {
	if raw == "" || IsEnvelope(raw) {
		return raw, false
	}
	return Encode(decodeLegacy(raw)), true
}

func decodeEnvelope(raw string) (Value, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return Value{}, false
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &members); err != nil {
		return Value{}, false
	}
	html, ok := members[keyHTML]
	if !ok {
		return Value{}, false
	}

	return Value{
		HTML:      memberString(html),
		CSS:       memberString(members[keyCSS]),
		CustomCSS: memberString(members[keyCustomCSS]),
	}, true
}

func memberString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

func decodeLegacy(raw string) Value {
	matches := styleBlockPattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return Value{HTML: raw}
	}

	var (
		css  strings.Builder
		html strings.Builder
		last int
	)
	for _, loc := range matches {
		html.WriteString(raw[last:loc[0]])
		css.WriteString(raw[loc[2]:loc[3]])
		last = loc[1]
	}
	html.WriteString(raw[last:])

	return Value{HTML: html.String(), CSS: css.String()}
}
