package structure

import "strings"

// RootPath is the site path of the top-level page.
const RootPath = "/"

// Parent returns the parent of a site path. The root has no parent; a
// top-level path such as "/about" has the root as parent.
//
// path must be absolute (start with "/"); other input is not meaningful.
func Parent(path string) (string, bool) {
	if len(path) <= 1 {
		return "", false
	}
	idx := strings.LastIndexByte(path, '/')
	if idx <= 0 {
		return RootPath, true
	}
	return path[:idx], true
}

// Depth counts the "/" separators in path. The root and top-level pages
// have depth 1.
func Depth(path string) int {
	return strings.Count(path, "/")
}

// Ancestors returns the parent chain of path, nearest first, ending with the root.
func Ancestors(path string) []string {
	var out []string
	for p, ok := Parent(path); ok; p, ok = Parent(p) {
		out = append(out, p)
	}
	return out
}
