package site

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
)

// Directories returns every directory below root, root included, as slash
// separated paths relative to root ("." for root itself). Hidden
// directories such as .git are skipped with their subtrees.
func Directories(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		dirs = append(dirs, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "walk source directory").
			WithContext("path", root).
			Build()
	}
	slices.Sort(dirs)
	return dirs, nil
}

// PagePath converts a directory relative to the content root into its page
// path: "." is "/", "docs/setup" is "/docs/setup".
func PagePath(rel string) string {
	if rel == "." || rel == "" {
		return "/"
	}
	return "/" + strings.Trim(filepath.ToSlash(rel), "/")
}
