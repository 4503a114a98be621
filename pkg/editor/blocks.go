package editor

import "strings"

// DefaultConfig returns a fresh copy of the built-in palette, style sectors and
// device breakpoints.
func DefaultConfig() Config {
	return Config{
		Blocks:  defaultBlocks(),
		Sectors: defaultSectors(),
		Devices: defaultDevices(),
	}
}

func defaultBlocks() []Block {
	return []Block{
		{
			ID:       "text",
			Label:    "Text",
			Category: CategoryBasic,
			Content:  `<div data-gjs-type="text">Insert your text here</div>`,
			Media:    svgIcon(iconText),
		},
		{
			ID:       "h1",
			Label:    "Heading 1",
			Category: CategoryBasic,
			Content:  "<h1>Heading 1</h1>",
			Media:    svgIcon(iconH1),
		},
		{
			ID:       "h2",
			Label:    "Heading 2",
			Category: CategoryBasic,
			Content:  "<h2>Heading 2</h2>",
			Media:    svgIcon(iconH2),
		},
		{
			ID:       "h3",
			Label:    "Heading 3",
			Category: CategoryBasic,
			Content:  "<h3>Heading 3</h3>",
			Media:    svgIcon(iconH3),
		},
		{
			ID:       "paragraph",
			Label:    "Paragraph",
			Category: CategoryBasic,
			Content:  "<p>Lorem ipsum dolor sit amet, consectetur adipiscing elit.</p>",
			Media:    svgIcon(iconParagraph),
		},
		{
			ID:       "link",
			Label:    "Link",
			Category: CategoryBasic,
			Content:  `<a href="#">Click here</a>`,
			Media:    svgIcon(iconLink),
		},
		{
			ID:        "image",
			Label:     "Image",
			Category:  CategoryBasic,
			Component: "image",
			Select:    true,
			Activate:  true,
			Media:     svgIcon(iconImage),
		},
		{
			ID:        "video",
			Label:     "Video",
			Category:  CategoryBasic,
			Component: "video",
			Select:    true,
			Activate:  true,
			Media:     svgIcon(iconVideo),
		},
		{
			ID:       "section",
			Label:    "Section",
			Category: CategoryLayout,
			Content:  `<section style="padding:40px 20px;"></section>`,
			Media:    svgIcon(iconSection),
		},
		{
			ID:       "container",
			Label:    "Container",
			Category: CategoryLayout,
			Content:  `<div style="max-width:1200px;margin:0 auto;padding:0 15px;"></div>`,
			Media:    svgIcon(iconContainer),
		},
		{
			ID:       "1-column",
			Label:    "1 Column",
			Category: CategoryLayout,
			Content:  `<div style="display:flex;padding:10px;"><div style="flex:1;min-height:75px;padding:10px;"></div></div>`,
			Media:    svgIcon(iconOneColumn),
		},
		{
			ID:       "2-columns",
			Label:    "2 Columns",
			Category: CategoryLayout,
			Content:  `<div style="display:flex;padding:10px;"><div style="flex:1;min-height:75px;padding:10px;"></div><div style="flex:1;min-height:75px;padding:10px;"></div></div>`,
			Media:    svgIcon(iconTwoColumns),
		},
		{
			ID:       "3-columns",
			Label:    "3 Columns",
			Category: CategoryLayout,
			Content:  `<div style="display:flex;padding:10px;"><div style="flex:1;min-height:75px;padding:10px;"></div><div style="flex:1;min-height:75px;padding:10px;"></div><div style="flex:1;min-height:75px;padding:10px;"></div></div>`,
			Media:    svgIcon(iconThreeColumns),
		},
		{
			ID:       "button",
			Label:    "Button",
			Category: CategoryComponents,
			Content:  `<a href="#" style="display:inline-block;padding:12px 24px;background:#2271b1;color:#fff;text-decoration:none;border-radius:4px;">Click Me</a>`,
			Media:    svgIcon(iconButton),
		},
		{
			ID:       "divider",
			Label:    "Divider",
			Category: CategoryComponents,
			Content:  `<hr style="border:none;border-top:1px solid #ddd;margin:20px 0;"/>`,
			Media:    svgIcon(iconDivider),
		},
		{
			ID:       "spacer",
			Label:    "Spacer",
			Category: CategoryComponents,
			Content:  `<div style="height:50px;"></div>`,
			Media:    svgIcon(iconSpacer),
		},
		{
			ID:       "quote",
			Label:    "Quote",
			Category: CategoryComponents,
			Content:  `<blockquote style="border-left:4px solid #2271b1;padding:20px;margin:20px 0;background:#f9f9f9;font-style:italic;">"Lorem ipsum dolor sit amet."<footer style="margin-top:10px;font-size:14px;font-style:normal;color:#666;">&#8212; Author</footer></blockquote>`,
			Media:    svgIcon(iconQuote),
		},
		{
			ID:       "list",
			Label:    "List",
			Category: CategoryComponents,
			Content:  `<ul style="padding-left:20px;"><li>Item 1</li><li>Item 2</li><li>Item 3</li></ul>`,
			Media:    svgIcon(iconList),
		},
		{
			ID:       "table",
			Label:    "Table",
			Category: CategoryComponents,
			Content:  `<table style="width:100%;border-collapse:collapse;"><thead><tr><th style="padding:12px;border:1px solid #ddd;background:#f5f5f5;">Header 1</th><th style="padding:12px;border:1px solid #ddd;background:#f5f5f5;">Header 2</th></tr></thead><tbody><tr><td style="padding:12px;border:1px solid #ddd;">Cell 1</td><td style="padding:12px;border:1px solid #ddd;">Cell 2</td></tr></tbody></table>`,
			Media:    svgIcon(iconTable),
		},
	}
}

func svgIcon(path string) string {
	var builder strings.Builder
	builder.WriteString(`<svg viewBox="0 0 24 24"><path fill="currentColor" d="`)
	builder.WriteString(path)
	builder.WriteString(`"/></svg>`)
	return builder.String()
}

const (
	iconText         = "M18.5,4L19.66,8.35L18.7,8.61C18.25,7.74 17.79,6.87 17.26,6.43C16.73,6 16.11,6 15.5,6H13V16.5C13,17 13,17.5 13.33,17.75C13.67,18 14.33,18 15,18V19H9V18C9.67,18 10.33,18 10.67,17.75C11,17.5 11,17 11,16.5V6H8.5C7.89,6 7.27,6 6.74,6.43C6.21,6.87 5.75,7.74 5.3,8.61L4.34,8.35L5.5,4H18.5Z"
	iconH1           = "M3,4H5V10H9V4H11V18H9V12H5V18H3V4M14,18V16H16V6.31L13.5,7.75V5.44L16,4H18V16H20V18H14Z"
	iconH2           = "M3,4H5V10H9V4H11V18H9V12H5V18H3V4M21,18H15A2,2 0 0,1 13,16C13,15.47 13.2,15 13.54,14.64L18.41,9.41C18.78,9.05 19,8.55 19,8A2,2 0 0,0 17,6A2,2 0 0,0 15,8H13A4,4 0 0,1 17,4A4,4 0 0,1 21,8C21,9.1 20.55,10.1 19.83,10.83L15,16H21V18Z"
	iconH3           = "M3,4H5V10H9V4H11V18H9V12H5V18H3V4M15,4H19A2,2 0 0,1 21,6V16A2,2 0 0,1 19,18H15A2,2 0 0,1 13,16V15H15V16H19V12H15V10H19V6H15V7H13V6A2,2 0 0,1 15,4Z"
	iconParagraph    = "M13,4A4,4 0 0,1 17,8A4,4 0 0,1 13,12H11V18H9V4H13M13,10A2,2 0 0,0 15,8A2,2 0 0,0 13,6H11V10H13Z"
	iconLink         = "M3.9,12C3.9,10.29 5.29,8.9 7,8.9H11V7H7A5,5 0 0,0 2,12A5,5 0 0,0 7,17H11V15.1H7C5.29,15.1 3.9,13.71 3.9,12M8,13H16V11H8V13M17,7H13V8.9H17C18.71,8.9 20.1,10.29 20.1,12C20.1,13.71 18.71,15.1 17,15.1H13V17H17A5,5 0 0,0 22,12A5,5 0 0,0 17,7Z"
	iconImage        = "M8.5,13.5L11,16.5L14.5,12L19,18H5M21,19V5C21,3.89 20.1,3 19,3H5A2,2 0 0,0 3,5V19A2,2 0 0,0 5,21H19A2,2 0 0,0 21,19Z"
	iconVideo        = "M17,10.5V7A1,1 0 0,0 16,6H4A1,1 0 0,0 3,7V17A1,1 0 0,0 4,18H16A1,1 0 0,0 17,17V13.5L21,17.5V6.5L17,10.5Z"
	iconSection      = "M21,18H3V6H21M19,16V8H5V16H19Z"
	iconContainer    = "M19,3H5C3.89,3 3,3.89 3,5V19A2,2 0 0,0 5,21H19A2,2 0 0,0 21,19V5C21,3.89 20.1,3 19,3M19,5V19H5V5H19Z"
	iconOneColumn    = "M19 3H5c-1.1 0-2 .9-2 2v14c0 1.1.9 2 2 2h14c1.1 0 2-.9 2-2V5c0-1.1-.9-2-2-2zm0 16H5V5h14v14z"
	iconTwoColumns   = "M19 3H5c-1.1 0-2 .9-2 2v14c0 1.1.9 2 2 2h14c1.1 0 2-.9 2-2V5c0-1.1-.9-2-2-2zm0 16h-6V5h6v14zM5 5h6v14H5V5z"
	iconThreeColumns = "M19 3H5c-1.1 0-2 .9-2 2v14c0 1.1.9 2 2 2h14c1.1 0 2-.9 2-2V5c0-1.1-.9-2-2-2zm0 16h-4V5h4v14zm-6 0h-2V5h2v14zM5 5h4v14H5V5z"
	iconButton       = "M12,20C7.59,20 4,16.41 4,12C4,7.59 7.59,4 12,4C16.41,4 20,7.59 20,12C20,16.41 16.41,20 12,20M12,2A10,10 0 0,0 2,12A10,10 0 0,0 12,22A10,10 0 0,0 22,12A10,10 0 0,0 12,2M10,16.5L16,12L10,7.5V16.5Z"
	iconDivider      = "M19,13H5V11H19V13Z"
	iconSpacer       = "M8,18H11V15H2V13H22V15H13V18H16L12,22L8,18M12,2L8,6H11V9H2V11H22V9H13V6H16L12,2Z"
	iconQuote        = "M14,17H17L19,13V7H13V13H16M6,17H9L11,13V7H5V13H8L6,17Z"
	iconList         = "M7,5H21V7H7V5M7,13V11H21V13H7M4,4.5A1.5,1.5 0 0,1 5.5,6A1.5,1.5 0 0,1 4,7.5A1.5,1.5 0 0,1 2.5,6A1.5,1.5 0 0,1 4,4.5M4,10.5A1.5,1.5 0 0,1 5.5,12A1.5,1.5 0 0,1 4,13.5A1.5,1.5 0 0,1 2.5,12A1.5,1.5 0 0,1 4,10.5M7,19V17H21V19H7M4,16.5A1.5,1.5 0 0,1 5.5,18A1.5,1.5 0 0,1 4,19.5A1.5,1.5 0 0,1 2.5,18A1.5,1.5 0 0,1 4,16.5Z"
	iconTable        = "M5,4H19A2,2 0 0,1 21,6V18A2,2 0 0,1 19,20H5A2,2 0 0,1 3,18V6A2,2 0 0,1 5,4M5,8V12H11V8H5M13,8V12H19V8H13M5,14V18H11V14H5M13,14V18H19V14H13Z"
)
