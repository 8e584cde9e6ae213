package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
)

// Writer stores pages and assets below an output directory. Distinct paths
// may be written concurrently.
type Writer struct {
	root   string
	minify bool
}

// NewWriter returns a Writer rooted at dir. HTML is minified when minify is set.
func NewWriter(dir string, minify bool) *Writer {
	return &Writer{root: dir, minify: minify}
}

// Root returns the output directory.
func (w *Writer) Root() string { return w.root }

// HTMLPath maps a page path to its file: "/" is index.html, "/a/b" is a/b.html.
func HTMLPath(path string) string {
	if path == "/" || path == "" {
		return "/index.html"
	}
	return strings.TrimSuffix(path, "/") + ".html"
}

// File returns the file system location of the site path p.
func (w *Writer) File(p string) (string, error) {
	rel := filepath.FromSlash(strings.TrimPrefix(p, "/"))
	if rel == "" || !filepath.IsLocal(rel) {
		return "", ferrors.ValidationError("output path escapes the output directory").
			WithContext("path", p).
			Build()
	}
	return filepath.Join(w.root, rel), nil
}

// Exists reports whether something is already stored at p.
func (w *Writer) Exists(p string) bool {
	f, err := w.File(p)
	if err != nil {
		return false
	}
	_, err = os.Stat(f)
	return err == nil
}

// WriteRaw stores data at p, creating parent directories.
func (w *Writer) WriteRaw(p string, data []byte) error {
	f, err := w.File(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f), 0o750); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create output directory").
			WithContext("path", filepath.Dir(f)).
			Build()
	}
	if err := os.WriteFile(f, data, 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write output file").
			WithContext("path", f).
			Build()
	}
	return nil
}

// WriteHTML stores the document of the page at path, minified if enabled.
// It returns the site path of the written file.
func (w *Writer) WriteHTML(path, doc string) (string, error) {
	out := []byte(doc)
	if w.minify {
		out = Minify(out)
	}
	target := HTMLPath(path)
	return target, w.WriteRaw(target, out)
}

// Clean removes everything below the output directory.
func (w *Writer) Clean() error {
	entries, err := os.ReadDir(w.root)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "read output directory").
			WithContext("path", w.root).
			Build()
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(w.root, e.Name())); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "clean output directory").
				WithContext("path", w.root).
				Build()
		}
	}
	return nil
}
