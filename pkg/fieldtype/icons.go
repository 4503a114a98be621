package fieldtype

import "github.com/goliatone/go-formgen-visualeditor/pkg/editor"

// Toolbar device icons, picked by breakpoint so renamed devices keep a
// sensible icon.
const (
	iconDesktop         = "M21,16H3V4H21M21,2H3C1.89,2 1,2.89 1,4V16A2,2 0 0,0 3,18H10V20H8V22H16V20H14V18H21A2,2 0 0,0 23,16V4C23,2.89 22.1,2 21,2Z"
	iconTabletLandscape = "M19,18H5V6H19M21,4H3C1.89,4 1,4.89 1,6V18A2,2 0 0,0 3,20H21A2,2 0 0,0 23,18V6C23,4.89 22.1,4 21,4Z"
	iconTablet          = "M12,18H6V6H12M14,4H4C2.89,4 2,4.89 2,6V18A2,2 0 0,0 4,20H14A2,2 0 0,0 16,18V6C16,4.89 15.1,4 14,4Z"
	iconMobile          = "M17,19H7V5H17M17,1H7C5.89,1 5,1.89 5,3V21A2,2 0 0,0 7,23H17A2,2 0 0,0 19,21V3C19,1.89 18.1,1 17,1Z"
)

func deviceIcon(device editor.Device) string {
	width := device.Breakpoint()
	switch {
	case width == 0:
		return iconDesktop
	case width <= 800:
		return iconMobile
	case width <= 1000:
		return iconTablet
	default:
		return iconTabletLandscape
	}
}
