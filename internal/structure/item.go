package structure

import (
	"cmp"
	"math"
)

// Unordered is the default Order of an item; such items sort after every
// explicitly ordered sibling.
const Unordered uint32 = math.MaxUint32

// Item is one content page. Items are immutable once inserted into an Index.
type Item struct {
	Path     string
	Title    string
	SubTitle string
	Icon     string
	Summary  string
	// Image is an optional key into the image catalog.
	Image string
	// Content is a content reference resolved at render time.
	Content string
	Order   uint32
}

// Compare orders items by Order, then by Title (byte-wise).
func Compare(a, b *Item) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	return cmp.Compare(a.Title, b.Title)
}

func (i *Item) menuItem(children []MenuItem) MenuItem {
	return MenuItem{
		Kind:     MenuInternal,
		URL:      i.Path,
		Title:    i.Title,
		Icon:     i.Icon,
		Children: children,
	}
}
