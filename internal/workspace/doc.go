// Package workspace manages the ephemeral directory a remote content source
// is cloned into for the duration of one build.
package workspace
