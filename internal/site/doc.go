// Package site writes the generated site to the output directory and walks
// source trees.
//
// All paths handed to a Writer are site-absolute URL paths ("/docs/setup",
// "/img/cat-w318.webp"); the Writer maps them below its root directory and
// refuses paths that would escape it.
package site
