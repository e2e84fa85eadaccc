package field

import "strconv"

// Foreground colors for status chips.
const (
	darkForeground  = "#323338"
	lightForeground = "#ffffff"
)

// Contrast picks a readable foreground for a #RRGGBB background using
// the perceived luminance L = (0.299R + 0.587G + 0.114B) / 255.
// Backgrounds with L > 0.5 get the dark foreground, everything else
// (including malformed hex) the light one.
func Contrast(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return lightForeground
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return lightForeground
	}
	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if luminance > 0.5 {
		return darkForeground
	}
	return lightForeground
}
