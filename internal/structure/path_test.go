package structure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParent(t *testing.T) {
	cases := []struct {
		path   string
		parent string
		ok     bool
	}{
		{"/", "", false},
		{"", "", false},
		{"/a", "/", true},
		{"/a/b", "/a", true},
		{"/a/b/c", "/a/b", true},
		{"/blog/2024/new-year", "/blog/2024", true},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			parent, ok := Parent(tc.path)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.parent, parent)
		})
	}
}

// TestParent_PrefixOneSegmentShorter checks that a parent is always a
// prefix of its child with exactly one segment fewer.
func TestParent_PrefixOneSegmentShorter(t *testing.T) {
	for _, p := range []string{"/a", "/a/b", "/x/y/z/w", "/docs/guide/install"} {
		parent, ok := Parent(p)
		if !assert.True(t, ok, p) {
			continue
		}
		assert.True(t, strings.HasPrefix(p, parent), "%s is not a prefix of %s", parent, p)
		if parent == RootPath {
			assert.Equal(t, 1, Depth(p))
		} else {
			assert.Equal(t, Depth(p)-1, Depth(parent))
		}
	}
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 1, Depth("/"))
	assert.Equal(t, 1, Depth("/a"))
	assert.Equal(t, 2, Depth("/a/b"))
	assert.Equal(t, 4, Depth("/a/b/c/d"))
}

func TestAncestors(t *testing.T) {
	assert.Equal(t, []string{"/a/b", "/a", "/"}, Ancestors("/a/b/c"))
	assert.Equal(t, []string{"/"}, Ancestors("/a"))
	assert.Empty(t, Ancestors("/"))
}
