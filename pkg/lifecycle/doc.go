// Package lifecycle tracks the live editor sessions of a page. The host
// reports fields appearing and disappearing (initial page load, repeater rows
// added or removed) and forwards editor change events; the controller keeps
// the hidden storage field of each editor in sync with the editor state.
//
// Controller is the host-side counterpart of the browser bootstrap served by
// the fieldtype package (visual-editor.js): both expose onFieldReady,
// onFieldAppended and onFieldRemoved, keep one session per editor id and
// write the {html, css, customCss} envelope on the same events. Hosts that
// drive the editor outside a browser use the controller directly.
package lifecycle
