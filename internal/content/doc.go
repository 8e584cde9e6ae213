// Package content turns the per-directory page configuration of a content
// tree into structure items and rendered notifications.
//
// Content references in page.json, notifications and main.json are resolved
// relative to the directory that declares them:
//
//	"index.md"        Markdown, YAML frontmatter stripped
//	"intro.html"      HTML fragment, copied verbatim
//	"<p>inline</p>"   anything ending in '>' is used as raw HTML
//
// Any other reference is a content error.
package content
