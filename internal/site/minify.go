package site

import (
	"bytes"

	"golang.org/x/net/html"
)

// rawTextElements keep their content byte for byte.
var rawTextElements = map[string]bool{
	"pre":      true,
	"textarea": true,
	"script":   true,
	"style":    true,
}

// Minify drops comments and collapses whitespace runs in text. Tags are
// copied as written. Whitespace-only text spanning lines disappears; a
// single-line gap becomes one space so inline elements stay apart.
func Minify(doc []byte) []byte {
	z := html.NewTokenizer(bytes.NewReader(doc))
	out := make([]byte, 0, len(doc))
	var raw []string // stack of open raw text elements
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return out
		case html.CommentToken:
			continue
		case html.TextToken:
			text := z.Raw()
			if len(raw) > 0 {
				out = append(out, text...)
				continue
			}
			out = appendCollapsed(out, text)
		case html.StartTagToken:
			out = append(out, z.Raw()...)
			name, _ := z.TagName()
			if rawTextElements[string(name)] {
				raw = append(raw, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if n := len(raw); n > 0 && raw[n-1] == string(name) {
				raw = raw[:n-1]
			}
			out = append(out, z.Raw()...)
		default:
			out = append(out, z.Raw()...)
		}
	}
}

func appendCollapsed(out, text []byte) []byte {
	if len(bytes.TrimSpace(text)) == 0 {
		if bytes.ContainsAny(text, "\n\r") {
			return out
		}
		return append(out, ' ')
	}
	space := false
	for _, c := range text {
		if isSpace(c) {
			space = true
			continue
		}
		if space {
			out = append(out, ' ')
			space = false
		}
		out = append(out, c)
	}
	if space {
		out = append(out, ' ')
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
