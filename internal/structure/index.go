package structure

import (
	"slices"
	"sync"

	"git.home.luguber.info/inful/vados/internal/config"
	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
)

// Side selects one of the two inherited notification columns.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// sideNotificationLimit caps the "nearby pages" list.
const sideNotificationLimit = 3

// Index owns every Item of a site, keyed by path and grouped by parent path.
type Index struct {
	mu       sync.RWMutex
	byPath   map[string]*Item
	byParent map[string][]*Item
	notes    [2]map[string][]string
	sealed   bool
}

// NewIndex creates an empty Index ready for the build phase.
func NewIndex() *Index {
	return &Index{
		byPath:   make(map[string]*Item),
		byParent: make(map[string][]*Item),
		notes:    [2]map[string][]string{make(map[string][]string), make(map[string][]string)},
	}
}

// Insert adds item to the index. It is safe for concurrent use during the
// build phase and fails once Sort has been called.
func (x *Index) Insert(item *Item) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.sealed {
		return ferrors.InternalError("insert after sort").WithContext("path", item.Path).Build()
	}
	if _, exists := x.byPath[item.Path]; exists {
		return ferrors.ValidationError("duplicate page path").WithContext("path", item.Path).Build()
	}
	x.byPath[item.Path] = item
	if parent, ok := Parent(item.Path); ok {
		x.byParent[parent] = append(x.byParent[parent], item)
	}
	return nil
}

// SetNotifications caches the rendered notifications declared by path for
// one side. A list can be set at most once per path and side.
func (x *Index) SetNotifications(path string, side Side, rendered []string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.sealed {
		return ferrors.InternalError("notifications set after sort").WithContext("path", path).Build()
	}
	if _, exists := x.notes[side][path]; exists {
		return ferrors.ValidationError("notifications already set").
			WithContext("path", path).
			WithContext("side", side.String()).
			Build()
	}
	if rendered == nil {
		rendered = []string{}
	}
	x.notes[side][path] = rendered
	return nil
}

// Sort orders every child list and seals the index. It must be called once,
// after all inserts and before any query.
func (x *Index) Sort() {
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, children := range x.byParent {
		slices.SortStableFunc(children, Compare)
	}
	x.sealed = true
}

// Sealed reports whether Sort has run.
func (x *Index) Sealed() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.sealed
}

// Len returns the number of items.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.byPath)
}

// Paths returns every item path in lexical order.
func (x *Index) Paths() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	paths := make([]string, 0, len(x.byPath))
	for p := range x.byPath {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Item looks up the item at path.
func (x *Index) Item(path string) (*Item, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	item, ok := x.byPath[path]
	return item, ok
}

// MenuItem returns the childless navigation node for path.
func (x *Index) MenuItem(path string) (MenuItem, bool) {
	item, ok := x.Item(path)
	if !ok {
		return MenuItem{}, false
	}
	return item.menuItem(nil), true
}

// Children returns the sorted child items of path.
func (x *Index) Children(path string) []*Item {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.byParent[path]
}

// childMenu returns one level of childless menu nodes, or nil when path has no children.
func (x *Index) childMenu(path string) []MenuItem {
	children, ok := x.byParent[path]
	if !ok {
		return nil
	}
	out := make([]MenuItem, 0, len(children))
	for _, c := range children {
		out = append(out, c.menuItem(nil))
	}
	return out
}

// MainMenu resolves the configured main menu in configuration order.
// External URLs become external items; every other URL must name a page,
// which is emitted with its direct children. Title and icon set in the
// configuration override those of the page.
func (x *Index) MainMenu(cfg config.MenuConfig) ([]MenuItem, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]MenuItem, 0, len(cfg.MainMenu))
	for _, entry := range cfg.MainMenu {
		if IsExternalURL(entry.URL) {
			m, err := externalMenuItem(entry)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
			continue
		}
		item, ok := x.byPath[entry.URL]
		if !ok {
			return nil, ferrors.ConfigError("main menu references unknown page").
				WithContext("url", entry.URL).
				Build()
		}
		m := item.menuItem(x.childMenu(entry.URL))
		if entry.Title != "" {
			m.Title = entry.Title
		}
		if entry.Icon != "" {
			m.Icon = entry.Icon
		}
		out = append(out, m)
	}
	return out, nil
}

// SideMenu returns the section navigation for path. Pages at depth two or
// less have none. At depth three a page gets a side menu only when it has
// children. Deeper pages without children show their parent's children.
func (x *Index) SideMenu(path string) (*MenuItem, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	depth := Depth(path)
	if depth <= 2 {
		return nil, false
	}
	if children := x.childMenu(path); children != nil {
		item, ok := x.byPath[path]
		if !ok {
			return nil, false
		}
		m := item.menuItem(children)
		return &m, true
	}
	if depth == 3 {
		return nil, false
	}
	parent, _ := Parent(path)
	item, ok := x.byPath[parent]
	if !ok {
		return nil, false
	}
	m := item.menuItem(x.childMenu(parent))
	return &m, true
}

// Breadcrumbs returns the ancestors of path, root first, without path
// itself. Pages of depth one have no breadcrumbs and get nil.
func (x *Index) Breadcrumbs(path string) ([]MenuItem, error) {
	if Depth(path) <= 1 {
		return nil, nil
	}
	x.mu.RLock()
	defer x.mu.RUnlock()
	ancestors := Ancestors(path)
	out := make([]MenuItem, 0, len(ancestors))
	for i := len(ancestors) - 1; i >= 0; i-- {
		item, ok := x.byPath[ancestors[i]]
		if !ok {
			return nil, ferrors.ConfigError("breadcrumb ancestor has no page").
				WithContext("path", path).
				WithContext("ancestor", ancestors[i]).
				Build()
		}
		out = append(out, item.menuItem(nil))
	}
	return out, nil
}

// InheritedNotifications returns the notifications set for path on side,
// or those of its nearest ancestor that has any. An empty, non-nil slice is
// returned when no ancestor declares notifications.
func (x *Index) InheritedNotifications(path string, side Side) []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	cache := x.notes[side]
	if n, ok := cache[path]; ok {
		return n
	}
	for _, p := range Ancestors(path) {
		if n, ok := cache[p]; ok {
			return n
		}
	}
	return []string{}
}

// SideNotifications returns up to three pages near path: the last entries
// of its own children, or of its siblings when it has none, never path itself.
func (x *Index) SideNotifications(path string) []*Item {
	x.mu.RLock()
	defer x.mu.RUnlock()
	group, ok := x.byParent[path]
	if !ok {
		parent, hasParent := Parent(path)
		if !hasParent {
			return nil
		}
		group = x.byParent[parent]
	}
	out := make([]*Item, 0, sideNotificationLimit)
	for i := len(group) - 1; i >= 0 && len(out) < sideNotificationLimit; i-- {
		if group[i].Path != path {
			out = append(out, group[i])
		}
	}
	slices.Reverse(out)
	return out
}
