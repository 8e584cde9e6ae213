package content

import (
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/vados/internal/bulma"
	"git.home.luguber.info/inful/vados/internal/config"
	"git.home.luguber.info/inful/vados/internal/images"
	"git.home.luguber.info/inful/vados/internal/logfields"
	"git.home.luguber.info/inful/vados/internal/render"
	"git.home.luguber.info/inful/vados/internal/structure"
)

// idPrefix returns the element id prefix of a notification column.
func idPrefix(side structure.Side) string {
	if side == structure.SideLeft {
		return "sub-l-"
	}
	return "sub-r-"
}

// Notifier renders notifications to HTML.
type Notifier struct {
	renderer *render.Renderer
	resolver *Resolver
	catalog  *images.Catalog
}

// NewNotifier returns a Notifier. cat may be nil when no images were processed.
func NewNotifier(r *render.Renderer, res *Resolver, cat *images.Catalog) *Notifier {
	if cat == nil {
		cat = images.NewCatalog()
	}
	return &Notifier{renderer: r, resolver: res, catalog: cat}
}

// Render renders the notifications declared by the page at path for one
// side. A nil list stays nil so the page inherits its ancestors' list; an
// empty list stays empty and blocks inheritance.
func (n *Notifier) Render(path string, side structure.Side, list []config.Notification) ([]string, error) {
	if list == nil {
		return nil, nil
	}
	out := make([]string, 0, len(list))
	for i, note := range list {
		html, err := n.notification(path, fmt.Sprintf("%s%d", idPrefix(side), i), note)
		if err != nil {
			return nil, err
		}
		out = append(out, string(html))
	}
	return out, nil
}

func (n *Notifier) notification(path, id string, note config.Notification) (template.HTML, error) {
	body, err := n.resolver.Resolve(path, note.Content)
	if err != nil {
		return "", err
	}
	img, err := n.Image(path, note.Image, bulma.ImageSub)
	if err != nil {
		return "", err
	}
	data := render.Notification{
		ID:    id,
		Title: note.Title,
		URL:   note.URL,
		Image: img,
		Body:  body.HTML,
	}
	switch {
	case note.URL == "":
		data.Kind = render.NotificationContent
		data.Color = note.Color.Or(bulma.Info)
	case strings.HasPrefix(note.URL, "/"):
		data.Kind = render.NotificationInternal
		data.Color = note.Color.Or(bulma.Link)
	default:
		data.Kind = render.NotificationExternal
		data.Color = note.Color.Or(bulma.Link)
	}
	return n.renderer.Notification(data)
}

// Side renders the "nearby pages" column from the items chosen by the index.
func (n *Notifier) Side(items []*structure.Item) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(items))
	for i, item := range items {
		img, err := n.Image(item.Path, item.Image, bulma.ImageSide)
		if err != nil {
			return nil, err
		}
		html, err := n.renderer.Notification(render.Notification{
			Kind:     render.NotificationInternal,
			ID:       fmt.Sprintf("sub-s-%d", i),
			Title:    item.Title,
			SubTitle: item.SubTitle,
			URL:      item.Path,
			Color:    bulma.Info,
			Image:    img,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, html)
	}
	return out, nil
}

// Image renders the catalog image key as a figure. An empty key renders
// nothing; an unknown key is logged and renders nothing.
func (n *Notifier) Image(path, key string, t bulma.ImageType) (template.HTML, error) {
	if key == "" {
		return "", nil
	}
	img, ok := n.catalog.Get(key)
	if !ok {
		slog.Warn("Page references unknown image",
			logfields.Path(path),
			logfields.Image(key))
		return "", nil
	}
	return n.renderer.Figure(img, t)
}
