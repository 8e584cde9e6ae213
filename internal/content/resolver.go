package content

import (
	"bytes"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/inful/mdfp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/frontmatter"
	"git.home.luguber.info/inful/vados/internal/logfields"
)

// DefaultCacheSize bounds the number of rendered content files kept.
const DefaultCacheSize = 512

// Resolved is the rendered form of one content reference.
type Resolved struct {
	HTML template.HTML
	// Fingerprint is the mdfp hash of the source, empty when it could not be read.
	Fingerprint string
}

// Resolver renders content references below a content root. It is safe for
// concurrent use.
type Resolver struct {
	root  string
	md    goldmark.Markdown
	cache *lru.Cache[string, Resolved]
}

// NewResolver returns a Resolver for the content tree at root.
func NewResolver(root string, cacheSize int) (*Resolver, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, Resolved](cacheSize)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "create content cache").Build()
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		// page authors write raw HTML on purpose
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
	return &Resolver{root: root, md: md, cache: cache}, nil
}

// Resolve renders ref as declared by the page at pagePath. Unreadable files
// are logged and render as empty content.
func (r *Resolver) Resolve(pagePath, ref string) (Resolved, error) {
	switch {
	case strings.HasSuffix(ref, ".md"):
		return r.file(pagePath, ref, r.markdown)
	case strings.HasSuffix(ref, ".html"):
		return r.file(pagePath, ref, func(_ string, data []byte) (template.HTML, error) {
			return template.HTML(data), nil // #nosec G203 - author supplied fragment
		})
	case strings.HasSuffix(ref, ">"):
		return Resolved{
			HTML:        template.HTML(ref), // #nosec G203 - author supplied markup
			Fingerprint: mdfp.CalculateFingerprintFromParts("", ref),
		}, nil
	default:
		return Resolved{}, ferrors.ContentError("unsupported content reference").
			WithContext("path", pagePath).
			WithContext("reference", ref).
			Build()
	}
}

// File returns the location of ref declared by the page at pagePath.
func (r *Resolver) File(pagePath, ref string) string {
	return filepath.Join(r.root, filepath.FromSlash(strings.TrimPrefix(pagePath, "/")), filepath.FromSlash(ref))
}

func (r *Resolver) file(pagePath, ref string, convert func(string, []byte) (template.HTML, error)) (Resolved, error) {
	path := r.File(pagePath, ref)
	if cached, ok := r.cache.Get(path); ok {
		return cached, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Content file could not be read, rendering empty content",
			logfields.Path(pagePath),
			logfields.File(path),
			logfields.Error(err))
		return Resolved{}, nil
	}
	out, err := convert(path, data)
	if err != nil {
		return Resolved{}, err
	}
	res := Resolved{HTML: out, Fingerprint: fingerprint(path, data)}
	r.cache.Add(path, res)
	return res, nil
}

func (r *Resolver) markdown(path string, data []byte) (template.HTML, error) {
	body, err := frontmatter.Strip(data)
	if err != nil {
		slog.Warn("Unterminated frontmatter, rendering the whole file",
			logfields.File(path),
			logfields.Error(err))
		body = data
	}
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryContent, "render markdown").
			WithContext("file", path).
			Build()
	}
	return template.HTML(buf.String()), nil // #nosec G203 - goldmark output
}

func fingerprint(path string, data []byte) string {
	if filepath.Ext(path) != ".md" {
		return mdfp.CalculateFingerprintFromParts("", string(data))
	}
	fp, err := frontmatter.Fingerprint(data)
	if err != nil {
		return mdfp.CalculateFingerprintFromParts("", string(data))
	}
	return fp
}
