package foundation

import (
	"fmt"
	"slices"
	"strings"
)

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps loosely written configuration strings onto a closed set
// of enum values, ignoring case and surrounding whitespace.
type Normalizer[T comparable] struct {
	values   map[string]T
	fallback T
}

// NewNormalizer creates a Normalizer for the given name to value pairs.
// Values not found resolve to fallback.
func NewNormalizer[T comparable](values map[string]T, fallback T) *Normalizer[T] {
	folded := make(map[string]T, len(values))
	for k, v := range values {
		folded[fold(k)] = v
	}
	return &Normalizer[T]{values: folded, fallback: fallback}
}

// Lookup returns the value named raw.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.values[fold(raw)]
	return v, ok
}

// Normalize returns the value named raw, or the fallback.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.Lookup(raw); ok {
		return v
	}
	return n.fallback
}

// NormalizeWithError returns the value named raw or an error listing the
// accepted names.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if v, ok := n.Lookup(raw); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q (expected one of %s)", raw, strings.Join(n.Names(), ", "))
}

// Names returns every accepted name in lower case, sorted.
func (n *Normalizer[T]) Names() []string {
	names := make([]string, 0, len(n.values))
	for k := range n.values {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
