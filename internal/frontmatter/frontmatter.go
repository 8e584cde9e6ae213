// Package frontmatter separates YAML frontmatter from Markdown content files
// and fingerprints them.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document opened a frontmatter
// block but never closed it.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Split separates `---` delimited YAML frontmatter from the Markdown body.
// Documents without frontmatter return had=false and the whole input as body.
// Both LF and CRLF line endings are recognized.
func Split(doc []byte) (fm, body []byte, had bool, err error) {
	nl := newline(doc)
	delim := []byte("---" + nl)
	if !bytes.HasPrefix(doc, delim) {
		return nil, doc, false, nil
	}

	rest := doc[len(delim):]
	if bytes.HasPrefix(rest, delim) {
		return []byte{}, rest[len(delim):], true, nil
	}

	closing := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closing):], true, nil
}

// Strip returns the body of doc, dropping frontmatter if present.
func Strip(doc []byte) ([]byte, error) {
	_, body, _, err := Split(doc)
	return body, err
}

// Parse decodes raw frontmatter (without delimiters) into a map.
func Parse(fm []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(fm)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func newline(doc []byte) string {
	if i := bytes.IndexByte(doc, '\n'); i > 0 && doc[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
