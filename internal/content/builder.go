package content

import (
	"path/filepath"

	"git.home.luguber.info/inful/vados/internal/config"
	"git.home.luguber.info/inful/vados/internal/site"
	"git.home.luguber.info/inful/vados/internal/structure"
)

// Entry is one content directory: its item and the notifications it
// declares. Left and Right are nil when the page declares none.
type Entry struct {
	Item  *structure.Item
	Left  []string
	Right []string
	// HasPageConfig is false when defaults were derived from the directory name.
	HasPageConfig bool
}

// Builder reads content directories.
type Builder struct {
	root     string
	notifier *Notifier
}

// NewBuilder returns a Builder for the content tree at root.
func NewBuilder(root string, n *Notifier) *Builder {
	return &Builder{root: root, notifier: n}
}

// Build reads the content directory rel (slash separated, relative to the
// content root). Without a page.json the page is derived from the
// directory name (for the root page, the name of the content root).
func (b *Builder) Build(rel string) (Entry, error) {
	pagePath := site.PagePath(rel)
	dir := filepath.Join(b.root, filepath.FromSlash(rel))
	cfg, found, err := config.LoadPageConfig(dir)
	if err != nil {
		return Entry{}, err
	}
	if !found {
		name := dir
		if abs, err := filepath.Abs(dir); err == nil {
			name = abs
		}
		cfg = config.DefaultPageConfig(filepath.Base(name))
	}

	left, err := b.notifier.Render(pagePath, structure.SideLeft, cfg.LeftNotifications)
	if err != nil {
		return Entry{}, err
	}
	right, err := b.notifier.Render(pagePath, structure.SideRight, cfg.RightNotifications)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Item:          NewItem(pagePath, cfg),
		Left:          left,
		Right:         right,
		HasPageConfig: found,
	}, nil
}

// NewItem converts a page configuration into the item at pagePath.
func NewItem(pagePath string, cfg config.PageConfig) *structure.Item {
	order := structure.Unordered
	if cfg.Order != nil {
		order = *cfg.Order
	}
	return &structure.Item{
		Path:     pagePath,
		Title:    cfg.Title,
		SubTitle: cfg.SubTitle,
		Icon:     cfg.Icon,
		Summary:  cfg.Summary,
		Image:    cfg.Image,
		Content:  cfg.Content,
		Order:    order,
	}
}
