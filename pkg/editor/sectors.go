package editor

func defaultSectors() []StyleSector {
	return []StyleSector{
		{
			Name: "Layout",
			Properties: []StyleProperty{
				selectProperty("Display", "display", "block",
					"block", "Block",
					"inline-block", "Inline Block",
					"flex", "Flex",
					"grid", "Grid",
					"none", "None",
				),
				selectProperty("Position", "position", "static",
					"static", "Static",
					"relative", "Relative",
					"absolute", "Absolute",
					"fixed", "Fixed",
				),
			},
		},
		{
			Name: "Flex",
			Properties: []StyleProperty{
				selectProperty("Direction", "flex-direction", "row",
					"row", "Row",
					"row-reverse", "Row Reverse",
					"column", "Column",
					"column-reverse", "Column Reverse",
				),
				selectProperty("Wrap", "flex-wrap", "nowrap",
					"nowrap", "No Wrap",
					"wrap", "Wrap",
					"wrap-reverse", "Wrap Reverse",
				),
				selectProperty("Justify", "justify-content", "flex-start",
					"flex-start", "Start",
					"flex-end", "End",
					"center", "Center",
					"space-between", "Space Between",
					"space-around", "Space Around",
					"space-evenly", "Space Evenly",
				),
				selectProperty("Align Items", "align-items", "stretch",
					"flex-start", "Start",
					"flex-end", "End",
					"center", "Center",
					"stretch", "Stretch",
					"baseline", "Baseline",
				),
				{Name: "Gap", Property: "gap", Type: "integer", Units: []string{"px", "em", "rem", "%"}, Defaults: "0"},
				{Name: "Flex Grow", Property: "flex-grow", Type: "integer", Defaults: "0", Min: floatPtr(0)},
				{Name: "Flex Shrink", Property: "flex-shrink", Type: "integer", Defaults: "1", Min: floatPtr(0)},
				{Name: "Flex Basis", Property: "flex-basis", Type: "integer", Units: []string{"px", "%", "auto"}, Defaults: "auto"},
			},
		},
		{
			Name:       "Dimension",
			BuildProps: []string{"width", "height", "max-width", "min-width", "min-height", "margin", "padding"},
		},
		{
			Name:       "Typography",
			BuildProps: []string{"font-family", "font-size", "font-weight", "color", "line-height", "text-align", "text-transform"},
		},
		{
			Name:       "Decorations",
			BuildProps: []string{"background-color", "background", "border-radius", "border", "box-shadow", "opacity"},
		},
	}
}

func defaultDevices() []Device {
	return []Device{
		{Name: "Desktop", Width: ""},
		{Name: "Tablet Landscape", Width: "1199px", WidthMedia: "1199px"},
		{Name: "Tablet", Width: "991px", WidthMedia: "991px"},
		{Name: "Mobile", Width: "767px", WidthMedia: "767px"},
	}
}

// selectProperty builds a select-typed property from alternating id/label
// pairs.
func selectProperty(name, property, defaults string, pairs ...string) StyleProperty {
	options := make([]PropertyOption, 0, len(pairs)/2)
	for idx := 0; idx+1 < len(pairs); idx += 2 {
		options = append(options, PropertyOption{ID: pairs[idx], Label: pairs[idx+1]})
	}
	return StyleProperty{
		Name:     name,
		Property: property,
		Type:     "select",
		Defaults: defaults,
		Options:  options,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
