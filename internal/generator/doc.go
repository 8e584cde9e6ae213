// Package generator runs a complete site build.
//
// A build is a fixed sequence of stages:
//
//	clone   (only with source.repository) fetch the content tree
//	prepare load main.json and menu.json, set up output and caches
//	images  transcode every images.json reference into WebP variants
//	content read every content directory into the structure index
//	pages   assemble and write one HTML document per indexed page
//	assets  write the bundled navigation script
//
// The images and content stages run one worker per directory through an
// errgroup bounded by build.workers. Per-directory and per-image problems
// are logged and recorded in the BuildReport; only fatal classified errors
// abort the build.
package generator
