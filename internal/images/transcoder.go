package images

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"path"
	"strings"

	"github.com/chai2010/webp" // also registers the WebP decoder used by imaging.Open
	"github.com/disintegration/imaging"

	"git.home.luguber.info/inful/vados/internal/config"
	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/logfields"
)

// Extension is the file extension of every generated variant.
const Extension = ".webp"

// Output stores generated variants. Paths are site-absolute URL paths such
// as "/img/blog/cat-w632.webp".
type Output interface {
	Exists(path string) bool
	WriteRaw(path string, data []byte) error
}

// ProcessedImage is what page assembly needs to reference an image.
type ProcessedImage struct {
	Title  string
	Alt    string
	Ratio  Ratio
	Srcset string // "url 159w, url 318w", ascending width
	Src    string // URL of the widest variant
}

// Result counts the variants of one image.
type Result struct {
	Encoded int
	Skipped int
}

// Add accumulates o into r.
func (r *Result) Add(o Result) {
	r.Encoded += o.Encoded
	r.Skipped += o.Skipped
}

// Transcoder produces the variants of single images. It holds no per-image
// state and may be shared by concurrent workers.
type Transcoder struct {
	out    Output
	prefix string
}

// NewTranscoder returns a Transcoder writing to out under urlPrefix
// ("/img" when empty).
func NewTranscoder(out Output, urlPrefix string) *Transcoder {
	if urlPrefix == "" {
		urlPrefix = "/img"
	}
	return &Transcoder{out: out, prefix: strings.TrimSuffix(urlPrefix, "/")}
}

// FileBase strips the extension from a file name. Names without one are
// rejected.
func FileBase(fileName string) (string, error) {
	i := strings.LastIndexByte(fileName, '.')
	if i <= 0 {
		return "", ferrors.ImageError("image file name has no extension").
			WithContext("file", fileName).
			Build()
	}
	return fileName[:i], nil
}

// Key returns the catalog key of an image with base name base located in
// the image directory dir ("" for the image root, else "/a/b").
func Key(dir, base string) string {
	return dir + "/" + base
}

// VariantPath returns the output path of the width variant of key.
func (t *Transcoder) VariantPath(key string, width int) string {
	return fmt.Sprintf("%s%s-w%d%s", t.prefix, key, width, Extension)
}

// Process crops src to its best fitting ratio and writes every missing
// variant. dir is the image directory relative to the image root, in the
// form used by Key.
func (t *Transcoder) Process(src image.Image, dir string, ref config.ImageReference) (string, *ProcessedImage, Result, error) {
	var res Result
	base, err := FileBase(ref.FileName)
	if err != nil {
		return "", nil, res, err
	}
	key := Key(dir, base)

	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return "", nil, res, ferrors.ImageError("image has no pixels").
			WithContext("image", key).
			Build()
	}
	ratio := BestFitting(b.Dx(), b.Dy())
	box := CropBox(ratio, b.Dx(), b.Dy())
	cropped := imaging.Crop(src, box.Add(b.Min))
	cw := cropped.Bounds().Dx()

	bps := BreakpointsFor(cw)
	entries := make([]string, len(bps))
	// bps is widest first; srcset lists ascending widths.
	for i, bp := range bps {
		p := t.VariantPath(key, bp.Width)
		entries[len(bps)-1-i] = fmt.Sprintf("%s %dw", p, bp.Width)
		if t.out.Exists(p) {
			res.Skipped++
			continue
		}
		data, err := encodeVariant(cropped, ratio, bp)
		if err != nil {
			return "", nil, res, ferrors.WrapError(err, ferrors.CategoryImage, "encode variant").
				Warning().
				WithContext("image", key).
				WithContext("width", bp.Width).
				Build()
		}
		if err := t.out.WriteRaw(p, data); err != nil {
			return "", nil, res, err
		}
		res.Encoded++
		slog.Debug("Encoded image variant",
			logfields.Image(key),
			logfields.Width(bp.Width),
			logfields.Quality(bp.Quality),
			logfields.Ratio(ratio.String()))
	}

	title := ref.Title
	if title == "" {
		title = base
	}
	return key, &ProcessedImage{
		Title:  title,
		Alt:    ref.AltText,
		Ratio:  ratio,
		Srcset: strings.Join(entries, ", "),
		Src:    t.VariantPath(key, bps[0].Width),
	}, res, nil
}

// encodeVariant resizes img to the breakpoint width and encodes it as lossy
// WebP. imaging's resampler weights color by alpha, so transparent pixels
// do not bleed into their neighbours.
func encodeVariant(img image.Image, ratio Ratio, bp Breakpoint) ([]byte, error) {
	h := max(ratio.HeightFor(bp.Width), 1)
	resized := imaging.Resize(img, bp.Width, h, imaging.Lanczos)
	// libwebp takes straight alpha; hand it the NRGBA bytes as they are
	// instead of letting the encoder premultiply them into an RGBA copy.
	straight := &image.RGBA{Pix: resized.Pix, Stride: resized.Stride, Rect: resized.Rect}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, straight, &webp.Options{Quality: bp.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// dirKey converts a slash separated directory relative to the image root
// into the form used by Key.
func dirKey(rel string) string {
	rel = strings.Trim(path.Clean("/"+rel), "/")
	if rel == "" {
		return ""
	}
	return "/" + rel
}
