package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"drops comments", "<p>a<!-- c -->b</p>", "<p>ab</p>"},
		{"collapses runs", "<p>a \n\t b</p>", "<p>a b</p>"},
		{"drops layout whitespace", "<ul>\n  <li>x</li>\n</ul>", "<ul><li>x</li></ul>"},
		{"keeps inline gap", "<b>a</b> <i>b</i>", "<b>a</b> <i>b</i>"},
		{"keeps pre", "<pre>  a\n   b</pre>\n<p> c </p>", "<pre>  a\n   b</pre><p> c </p>"},
		{"keeps nested pre", "<pre><code>x  =\n 1</code></pre>", "<pre><code>x  =\n 1</code></pre>"},
		{"keeps script", "<script>\nlet a  =  1\n</script>", "<script>\nlet a  =  1\n</script>"},
		{"keeps attributes", `<a  href="/x"   class="y">t</a>`, `<a  href="/x"   class="y">t</a>`},
		{"keeps entities", "<p>a &amp;  b</p>", "<p>a &amp; b</p>"},
		{"doctype", "<!DOCTYPE html>\n<html></html>", "<!DOCTYPE html><html></html>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(Minify([]byte(tt.in))))
		})
	}
}
