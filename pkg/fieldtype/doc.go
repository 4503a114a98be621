// Package fieldtype defines the contract between a form host and the field
// types it renders, and implements the visual editor field type.
//
// Hosts call the FieldType methods directly instead of registering callbacks
// by hook name: RenderField on the edit screen, RenderSettings in the field
// configuration panel, Assets when enqueueing scripts and styles, UpdateValue
// before persisting a submitted value and FormatValue before displaying it.
package fieldtype
