// Package editor holds the static configuration handed to the embedded visual
// page builder: the block palette, the style manager sectors and the device
// preview breakpoints. It also assembles the initialisation payload the
// browser bootstrap passes to the builder's init call.
//
// Configurations can be loaded from JSON or YAML documents. Block icons are
// sanitised against an SVG allow-list before they reach the page.
package editor
