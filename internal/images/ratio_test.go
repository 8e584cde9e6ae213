package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestFitting(t *testing.T) {
	tests := []struct {
		w, h int
		want Ratio
	}{
		{300, 100, Ratio3x1},
		{200, 100, Ratio2x1},
		{1920, 1080, Ratio16x9},
		{500, 300, Ratio5x3},
		{300, 200, Ratio3x2},
		{400, 300, Ratio4x3},
		{500, 400, Ratio5x4},
		{1000, 1000, Ratio1x1},
		{400, 500, Ratio4x5},
		{300, 400, Ratio3x4},
		{200, 300, Ratio2x3},
		{300, 500, Ratio3x5},
		{1080, 1920, Ratio9x16},
		{100, 200, Ratio1x2},
		{100, 300, Ratio1x3},
		{1, 1000, Ratio1x3},
		{1000, 1, Ratio3x1},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, BestFitting(tt.w, tt.h), "%dx%d", tt.w, tt.h)
		})
	}
}

func TestBestFittingBoundariesSelectNarrowerBucket(t *testing.T) {
	tests := []struct {
		w, h int
		want Ratio
	}{
		{250, 100, Ratio2x1},
		{188, 100, Ratio16x9},
		{172, 100, Ratio5x3},
		{158, 100, Ratio3x2},
		{142, 100, Ratio4x3},
		{129, 100, Ratio5x4},
		{113, 100, Ratio1x1},
		{90, 100, Ratio4x5},
		{78, 100, Ratio3x4},
		{71, 100, Ratio2x3},
		{63, 100, Ratio3x5},
		{58, 100, Ratio9x16},
		{53, 100, Ratio1x2},
		{42, 100, Ratio1x3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BestFitting(tt.w, tt.h), "%dx%d", tt.w, tt.h)
		assert.NotEqual(t, tt.want, BestFitting(tt.w+1, tt.h), "%dx%d", tt.w+1, tt.h)
	}
}

func TestRatiosAreDistinct(t *testing.T) {
	all := ratios()
	require.Len(t, all, 15)
	seen := map[string]bool{}
	for _, r := range all {
		assert.False(t, seen[r.String()], r.String())
		seen[r.String()] = true
	}
	assert.Equal(t, Ratio3x1, all[0])
	assert.Equal(t, Ratio1x3, all[14])
}

func TestHeightAndWidthFor(t *testing.T) {
	assert.Equal(t, 1080, Ratio16x9.HeightFor(1920))
	assert.Equal(t, 1920, Ratio16x9.WidthFor(1080))
	assert.Equal(t, 33, Ratio3x1.HeightFor(101))
	assert.Equal(t, 300, Ratio1x3.HeightFor(100))
	assert.Equal(t, 0, Ratio2x1.HeightFor(1))
	assert.Equal(t, 1333, Ratio4x3.WidthFor(1000))
}

func TestWidthRoundTripStaysWithinTruncationBound(t *testing.T) {
	for _, r := range ratios() {
		rw, rh := r.Dims()
		bound := (rw-1)/rh + 1
		for w := 1; w <= 2500; w++ {
			back := r.WidthFor(r.HeightFor(w))
			require.LessOrEqual(t, back, w, "%s w=%d", r, w)
			require.LessOrEqual(t, w-back, bound, "%s w=%d", r, w)
		}
	}
}

func TestRatioNames(t *testing.T) {
	assert.Equal(t, "16:9", Ratio16x9.String())
	assert.Equal(t, "is-16by9", Ratio16x9.CSSClass())
	assert.Equal(t, "is-1by3", Ratio1x3.CSSClass())
	assert.Equal(t, "is-4by5", Ratio4x5.CSSClass())
}
