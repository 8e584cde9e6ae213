package structure

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/vados/internal/config"
	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
)

func page(path, title string, order uint32) *Item {
	return &Item{Path: path, Title: title, Content: "index.md", Order: order}
}

// newFixture builds:
//
//	/            Home
//	/a           A (order 1)
//	/a/x         X
//	/a/x/deep    Deep (children: one, two)
//	/a/x/leaf    Leaf
//	/a/y         Y
//	/b           B (order 2, icon)
func newFixture(t *testing.T) *Index {
	t.Helper()
	x := NewIndex()
	items := []*Item{
		page("/", "Home", Unordered),
		page("/b", "B", 2),
		page("/a", "A", 1),
		page("/a/y", "Y", Unordered),
		page("/a/x", "X", Unordered),
		page("/a/x/leaf", "Leaf", Unordered),
		page("/a/x/deep", "Deep", Unordered),
		page("/a/x/deep/two", "Two", 2),
		page("/a/x/deep/one", "One", 1),
	}
	items[1].Icon = "bee"
	for _, it := range items {
		require.NoError(t, x.Insert(it))
	}
	x.Sort()
	return x
}

func titles(menu []MenuItem) []string {
	out := make([]string, 0, len(menu))
	for _, m := range menu {
		out = append(out, m.Title)
	}
	return out
}

func TestSort_OrderThenTitle(t *testing.T) {
	x := NewIndex()
	for _, it := range []*Item{
		page("/p", "Parent", Unordered),
		page("/p/1", "z", Unordered),
		page("/p/2", "b", 2),
		page("/p/3", "c", Unordered),
		page("/p/4", "a", 1),
		page("/p/5", "B", Unordered),
	} {
		require.NoError(t, x.Insert(it))
	}
	x.Sort()

	var got []string
	for _, c := range x.Children("/p") {
		got = append(got, c.Title)
	}
	// explicit orders first, then unordered items byte-wise by title
	assert.Equal(t, []string{"a", "b", "B", "c", "z"}, got)
}

func TestInsert_RejectsDuplicatesAndLateInserts(t *testing.T) {
	x := NewIndex()
	require.NoError(t, x.Insert(page("/", "Home", Unordered)))

	err := x.Insert(page("/", "Again", Unordered))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

	x.Sort()
	assert.True(t, x.Sealed())
	err = x.Insert(page("/late", "Late", Unordered))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryInternal))
	_, ok := x.Item("/late")
	assert.False(t, ok)
}

func TestInsert_ConcurrentAppendsToSharedBucket(t *testing.T) {
	x := NewIndex()
	require.NoError(t, x.Insert(page("/", "Home", Unordered)))

	const n = 200
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, x.Insert(page(fmt.Sprintf("/p%03d", i), fmt.Sprintf("P%03d", i), Unordered)))
		}(i)
	}
	wg.Wait()
	x.Sort()

	children := x.Children("/")
	require.Len(t, children, n)
	assert.Equal(t, "P000", children[0].Title)
	assert.Equal(t, fmt.Sprintf("P%03d", n-1), children[n-1].Title)
	assert.Equal(t, n+1, x.Len())
}

func TestMainMenu(t *testing.T) {
	x := newFixture(t)

	menu, err := x.MainMenu(config.MenuConfig{MainMenu: []config.MenuEntry{
		{URL: "/b"},
		{URL: "https://example.com", Title: "Example", Icon: "web"},
		{URL: "/a", Title: "Section A", Icon: "alpha"},
	}})
	require.NoError(t, err)
	require.Len(t, menu, 3)

	// configuration order is preserved
	assert.Equal(t, []string{"B", "Example", "Section A"}, titles(menu))

	assert.Equal(t, MenuInternal, menu[0].Kind)
	assert.Equal(t, "bee", menu[0].Icon)
	assert.Nil(t, menu[0].Children)

	assert.Equal(t, MenuExternal, menu[1].Kind)
	assert.Equal(t, "https://example.com", menu[1].URL)
	assert.Equal(t, "web", menu[1].Icon)
	assert.Nil(t, menu[1].Children)

	assert.Equal(t, "alpha", menu[2].Icon)
	assert.Equal(t, []string{"X", "Y"}, titles(menu[2].Children))
	for _, c := range menu[2].Children {
		// one level only
		assert.Nil(t, c.Children)
	}
}

func TestMainMenu_ConfigurationErrors(t *testing.T) {
	x := newFixture(t)

	_, err := x.MainMenu(config.MenuConfig{MainMenu: []config.MenuEntry{{URL: "/missing"}}})
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	assert.True(t, ferrors.IsFatal(err))

	_, err = x.MainMenu(config.MenuConfig{MainMenu: []config.MenuEntry{{URL: "https://example.com"}}})
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestSideMenu(t *testing.T) {
	x := newFixture(t)

	t.Run("shallow pages have none", func(t *testing.T) {
		for _, p := range []string{"/", "/a", "/a/x"} {
			m, ok := x.SideMenu(p)
			assert.False(t, ok, p)
			assert.Nil(t, m, p)
		}
	})

	t.Run("depth three with children", func(t *testing.T) {
		m, ok := x.SideMenu("/a/x/deep")
		require.True(t, ok)
		assert.Equal(t, "/a/x/deep", m.URL)
		assert.Equal(t, []string{"One", "Two"}, titles(m.Children))
	})

	t.Run("depth three without children has none", func(t *testing.T) {
		m, ok := x.SideMenu("/a/x/leaf")
		assert.False(t, ok)
		assert.Nil(t, m)
	})

	t.Run("deep leaf falls back to parent", func(t *testing.T) {
		m, ok := x.SideMenu("/a/x/deep/one")
		require.True(t, ok)
		assert.Equal(t, "/a/x/deep", m.URL)
		assert.Equal(t, []string{"One", "Two"}, titles(m.Children))
	})

	t.Run("deeper page with children uses itself", func(t *testing.T) {
		d := NewIndex()
		for _, it := range []*Item{
			page("/", "Home", Unordered),
			page("/a", "A", Unordered),
			page("/a/x", "X", Unordered),
			page("/a/x/deep", "Deep", Unordered),
			page("/a/x/deep/two", "Two", Unordered),
			page("/a/x/deep/two/inner", "Inner", Unordered),
			page("/a/x/deep/two/inner/leaf", "Leaf", Unordered),
		} {
			require.NoError(t, d.Insert(it))
		}
		d.Sort()

		m, ok := d.SideMenu("/a/x/deep/two")
		require.True(t, ok)
		assert.Equal(t, "/a/x/deep/two", m.URL)
		assert.Equal(t, []string{"Inner"}, titles(m.Children))

		m, ok = d.SideMenu("/a/x/deep/two/inner")
		require.True(t, ok)
		assert.Equal(t, "/a/x/deep/two/inner", m.URL)
		assert.Equal(t, []string{"Leaf"}, titles(m.Children))

		m, ok = d.SideMenu("/a/x/deep/two/inner/leaf")
		require.True(t, ok)
		assert.Equal(t, "/a/x/deep/two/inner", m.URL)
		assert.Equal(t, []string{"Leaf"}, titles(m.Children))
	})
}

func TestBreadcrumbs(t *testing.T) {
	x := newFixture(t)

	crumbs, err := x.Breadcrumbs("/a/x/deep")
	require.NoError(t, err)
	var urls []string
	for _, c := range crumbs {
		urls = append(urls, c.URL)
		assert.Nil(t, c.Children)
	}
	assert.Equal(t, []string{"/", "/a", "/a/x"}, urls)

	crumbs, err = x.Breadcrumbs("/a/x")
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "A"}, titles(crumbs))

	for _, p := range []string{"/", "/a"} {
		crumbs, err = x.Breadcrumbs(p)
		require.NoError(t, err)
		assert.Nil(t, crumbs, p)
	}
}

func TestBreadcrumbs_MissingAncestor(t *testing.T) {
	x := NewIndex()
	require.NoError(t, x.Insert(page("/", "Home", Unordered)))
	require.NoError(t, x.Insert(page("/a/b", "Orphan", Unordered)))
	x.Sort()

	_, err := x.Breadcrumbs("/a/b")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestInheritedNotifications(t *testing.T) {
	x := NewIndex()
	for _, it := range []*Item{
		page("/", "Home", Unordered),
		page("/a", "A", Unordered),
		page("/a/b", "B", Unordered),
		page("/a/b/c", "C", Unordered),
		page("/z", "Z", Unordered),
	} {
		require.NoError(t, x.Insert(it))
	}
	require.NoError(t, x.SetNotifications("/a", SideLeft, []string{"<p>one</p>", "<p>two</p>"}))
	require.NoError(t, x.SetNotifications("/a/b", SideRight, []string{"<p>right</p>"}))
	require.NoError(t, x.SetNotifications("/z", SideLeft, nil))

	err := x.SetNotifications("/a", SideLeft, []string{"again"})
	require.Error(t, err)
	x.Sort()

	// own list
	assert.Equal(t, []string{"<p>one</p>", "<p>two</p>"}, x.InheritedNotifications("/a", SideLeft))
	// ancestor two levels up, returned verbatim
	assert.Equal(t, []string{"<p>one</p>", "<p>two</p>"}, x.InheritedNotifications("/a/b/c", SideLeft))
	// sides are independent
	assert.Equal(t, []string{"<p>right</p>"}, x.InheritedNotifications("/a/b/c", SideRight))
	assert.Equal(t, []string{}, x.InheritedNotifications("/a", SideRight))
	// no ancestor has any
	assert.Equal(t, []string{}, x.InheritedNotifications("/", SideLeft))
	// an explicit empty list stops inheritance
	assert.Equal(t, []string{}, x.InheritedNotifications("/z", SideLeft))
}

func TestSideNotifications(t *testing.T) {
	x := NewIndex()
	require.NoError(t, x.Insert(page("/", "Home", Unordered)))
	require.NoError(t, x.Insert(page("/s", "S", Unordered)))
	for i := 1; i <= 5; i++ {
		require.NoError(t, x.Insert(page(fmt.Sprintf("/s/s%d", i), fmt.Sprintf("S%d", i), uint32(i))))
	}
	x.Sort()

	paths := func(items []*Item) []string {
		var out []string
		for _, it := range items {
			out = append(out, it.Path)
		}
		return out
	}

	// leaf: siblings, excluding itself
	assert.Equal(t, []string{"/s/s2", "/s/s3", "/s/s4"}, paths(x.SideNotifications("/s/s5")))
	assert.Equal(t, []string{"/s/s3", "/s/s4", "/s/s5"}, paths(x.SideNotifications("/s/s2")))
	// page with children: its own last three children
	assert.Equal(t, []string{"/s/s3", "/s/s4", "/s/s5"}, paths(x.SideNotifications("/s")))
	// unknown path whose parent has no children of its own
	assert.Empty(t, x.SideNotifications("/s/s1/nothing"))

	lonely := NewIndex()
	require.NoError(t, lonely.Insert(page("/", "Home", Unordered)))
	lonely.Sort()
	assert.Empty(t, lonely.SideNotifications("/"))
}
