package images

// Breakpoint is one responsive variant: its target width and the WebP
// quality to encode it at.
type Breakpoint struct {
	Width   int
	Quality float32
}

// breakpoints is ordered by descending width.
var breakpoints = []Breakpoint{
	{1972, 75},
	{1479, 75},
	{986, 75},
	{632, 75},
	{425, 75},
	{318, 75},
	{159, 40},
}

// fallbackQuality is used for images narrower than every breakpoint.
const fallbackQuality = 90

// BreakpointsFor returns the breakpoints an image of the given cropped width
// is rendered at: every breakpoint no wider than the image, widest first.
// Narrower images get a single variant at their own width.
func BreakpointsFor(width int) []Breakpoint {
	for i, bp := range breakpoints {
		if width >= bp.Width {
			return append([]Breakpoint(nil), breakpoints[i:]...)
		}
	}
	return []Breakpoint{{Width: width, Quality: fallbackQuality}}
}
