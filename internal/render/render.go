// Package render assembles HTML fragments and pages from the embedded
// Bulma templates.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"git.home.luguber.info/inful/vados/internal/bulma"
	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/images"
	"git.home.luguber.info/inful/vados/internal/structure"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	tpl *template.Template
}

var funcs = template.FuncMap{
	// isActive marks a menu entry whose page is path or one of its ancestors.
	"isActive": func(path, url string) bool {
		return path == url || (url != "/" && strings.HasPrefix(path, url+"/"))
	},
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tpl, err := template.New("vados").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "parse embedded templates").Build()
	}
	return &Renderer{tpl: tpl}, nil
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", ferrors.RenderError("render template").
			WithCause(err).
			WithContext("template", name).
			Build()
	}
	// #nosec G203 - buf holds html/template output
	return template.HTML(buf.String()), nil
}

// Page is the data of one complete HTML document.
type Page struct {
	Title           string
	Summary         string
	BackgroundClass string
	Navigation      template.HTML
	Breadcrumbs     template.HTML
	SideMenu        template.HTML
	Main            template.HTML
	Left            []template.HTML
	Right           []template.HTML
	Side            []template.HTML
	Footer          template.HTML
	CSSLinks        []string
	JSLinks         []string
}

// Page renders a complete document.
func (r *Renderer) Page(p Page) (template.HTML, error) { return r.execute("page", p) }

// Navigation is the navbar of a page.
type Navigation struct {
	Path      string
	SiteTitle string
	Color     bulma.Color
	MainMenu  []structure.MenuItem
	Socials   []structure.SocialItem
	SideMenu  template.HTML
}

func (r *Renderer) Navigation(n Navigation) (template.HTML, error) {
	return r.execute("navigation", n)
}

// Breadcrumbs renders the trail to last. Nothing is rendered without crumbs.
func (r *Renderer) Breadcrumbs(crumbs []structure.MenuItem, last structure.MenuItem) (template.HTML, error) {
	if len(crumbs) == 0 {
		return "", nil
	}
	return r.execute("breadcrumbs", struct {
		Crumbs []structure.MenuItem
		Last   structure.MenuItem
	}{crumbs, last})
}

// SideMenu renders a section menu with path highlighted. A nil menu renders
// nothing.
func (r *Renderer) SideMenu(path string, menu *structure.MenuItem) (template.HTML, error) {
	if menu == nil {
		return "", nil
	}
	return r.execute("side_menu", struct {
		Path string
		Menu *structure.MenuItem
	}{path, menu})
}

// Content is the main article of a page.
type Content struct {
	Title    string
	SubTitle string
	Image    template.HTML
	Body     template.HTML
}

func (r *Renderer) Content(c Content) (template.HTML, error) { return r.execute("content", c) }

// NotificationKind selects the notification template.
type NotificationKind int

const (
	NotificationContent NotificationKind = iota
	NotificationInternal
	NotificationExternal
)

func (k NotificationKind) template() string {
	switch k {
	case NotificationInternal:
		return "internal_notification"
	case NotificationExternal:
		return "external_notification"
	default:
		return "content_notification"
	}
}

// Notification is one side or content annotation.
type Notification struct {
	Kind     NotificationKind
	ID       string
	Title    string
	SubTitle string
	URL      string
	Color    bulma.Color
	Image    template.HTML
	Body     template.HTML
}

func (r *Renderer) Notification(n Notification) (template.HTML, error) {
	return r.execute(n.Kind.template(), n)
}

// Footer wraps the site footer content.
func (r *Renderer) Footer(body template.HTML) (template.HTML, error) {
	return r.execute("footer", struct{ Body template.HTML }{body})
}

// Figure renders a responsive image. A nil image renders nothing.
func (r *Renderer) Figure(img *images.ProcessedImage, t bulma.ImageType) (template.HTML, error) {
	if img == nil {
		return "", nil
	}
	return r.execute("figure", struct {
		Image *images.ProcessedImage
		Type  bulma.ImageType
	}{img, t})
}
