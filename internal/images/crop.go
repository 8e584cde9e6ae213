package images

import "image"

// CropBox returns the largest rectangle of ratio r that fits a srcW x srcH
// image, centered, in coordinates relative to the image origin.
func CropBox(r Ratio, srcW, srcH int) image.Rectangle {
	w := r.WidthFor(srcH)
	h := r.HeightFor(srcW)
	if w > srcW {
		w = srcW
	}
	if h > srcH {
		h = srcH
	}
	w = max(w, 1)
	h = max(h, 1)
	x := (srcW - w) / 2
	y := (srcH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}
