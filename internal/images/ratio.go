package images

import "fmt"

// Ratio is one of the standard aspect ratio buckets.
type Ratio int

const (
	Ratio1x1 Ratio = iota
	Ratio5x4
	Ratio4x3
	Ratio3x2
	Ratio5x3
	Ratio16x9
	Ratio2x1
	Ratio3x1
	Ratio4x5
	Ratio3x4
	Ratio2x3
	Ratio3x5
	Ratio9x16
	Ratio1x2
	Ratio1x3
)

// ratioDims holds width and height multipliers, indexed by Ratio.
var ratioDims = [...][2]int{
	Ratio1x1:  {1, 1},
	Ratio5x4:  {5, 4},
	Ratio4x3:  {4, 3},
	Ratio3x2:  {3, 2},
	Ratio5x3:  {5, 3},
	Ratio16x9: {16, 9},
	Ratio2x1:  {2, 1},
	Ratio3x1:  {3, 1},
	Ratio4x5:  {4, 5},
	Ratio3x4:  {3, 4},
	Ratio2x3:  {2, 3},
	Ratio3x5:  {3, 5},
	Ratio9x16: {9, 16},
	Ratio1x2:  {1, 2},
	Ratio1x3:  {1, 3},
}

// thresholds is scanned in order; the first entry whose bound is strictly
// below width/height wins. A value exactly on a bound falls to the next,
// narrower bucket.
var thresholds = []struct {
	above float64
	ratio Ratio
}{
	{2.50, Ratio3x1},
	{1.88, Ratio2x1},
	{1.72, Ratio16x9},
	{1.58, Ratio5x3},
	{1.42, Ratio3x2},
	{1.29, Ratio4x3},
	{1.13, Ratio5x4},
	{0.90, Ratio1x1},
	{0.78, Ratio4x5},
	{0.71, Ratio3x4},
	{0.63, Ratio2x3},
	{0.58, Ratio3x5},
	{0.53, Ratio9x16},
	{0.42, Ratio1x2},
}

// ratios returns every bucket from widest to narrowest.
func ratios() []Ratio {
	out := make([]Ratio, 0, len(thresholds)+1)
	for _, t := range thresholds {
		out = append(out, t.ratio)
	}
	return append(out, Ratio1x3)
}

// BestFitting returns the bucket closest to the proportions of a
// width x height image. height must be positive.
func BestFitting(width, height int) Ratio {
	r := float64(width) / float64(height)
	for _, t := range thresholds {
		if r > t.above {
			return t.ratio
		}
	}
	return Ratio1x3
}

// HeightFor returns the height matching width, truncated.
func (r Ratio) HeightFor(width int) int {
	d := ratioDims[r]
	return width * d[1] / d[0]
}

// WidthFor returns the width matching height, truncated.
func (r Ratio) WidthFor(height int) int {
	d := ratioDims[r]
	return height * d[0] / d[1]
}

// Dims returns the width and height multipliers, e.g. 16 and 9.
func (r Ratio) Dims() (w, h int) {
	d := ratioDims[r]
	return d[0], d[1]
}

func (r Ratio) String() string {
	w, h := r.Dims()
	return fmt.Sprintf("%d:%d", w, h)
}

// CSSClass returns the Bulma image container modifier, e.g. "is-16by9".
func (r Ratio) CSSClass() string {
	w, h := r.Dims()
	return fmt.Sprintf("is-%dby%d", w, h)
}
