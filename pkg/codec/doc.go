// Package codec converts between the persisted string value of a visual editor
// field and its structured form.
//
// The canonical persisted shape is the JSON envelope
//
//	{"html":"...","css":"...","customCss":"..."}
//
// Values written before the envelope existed are plain HTML that may carry
// inline <style> blocks. Decode accepts both shapes and never fails; Encode
// only ever writes the envelope.
package codec
