// Package model defines the field payload a host hands to a field type when it
// renders or saves a visual editor field, together with the per-field settings
// an administrator can configure. The payload mirrors the render hook contract
// of the host: `key`, `name`, `value` and `editor_height`.
package model
