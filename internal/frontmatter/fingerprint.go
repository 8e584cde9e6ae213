package frontmatter

import (
	"strings"

	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"
)

// volatileKeys change without the document changing and are not hashed.
var volatileKeys = []string{mdfp.FingerprintField, "lastmod"}

// Fingerprint returns the mdfp fingerprint of a Markdown document. The
// frontmatter is re-serialized with sorted keys so formatting differences do
// not change the result.
func Fingerprint(doc []byte) (string, error) {
	fm, body, _, err := Split(doc)
	if err != nil {
		return "", err
	}
	fields, err := Parse(fm)
	if err != nil {
		return "", err
	}
	for _, k := range volatileKeys {
		delete(fields, k)
	}

	canonical := ""
	if len(fields) > 0 {
		// yaml.v3 emits map keys in sorted order.
		out, err := yaml.Marshal(fields)
		if err != nil {
			return "", err
		}
		canonical = strings.TrimSuffix(string(out), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(canonical, string(body)), nil
}
