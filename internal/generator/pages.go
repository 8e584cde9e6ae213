package generator

import (
	"html/template"

	"git.home.luguber.info/inful/vados/internal/bulma"
	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/render"
	"git.home.luguber.info/inful/vados/internal/structure"
)

// sharedParts are the page parts identical on every page.
type sharedParts struct {
	mainMenu []structure.MenuItem
	socials  []structure.SocialItem
	footer   template.HTML
	cssLinks []string
	jsLinks  []string
}

func (g *Generator) sharedParts(bs *buildState) (sharedParts, error) {
	if !bs.index.Sealed() {
		return sharedParts{}, ferrors.InternalError("pages assembled before the index was sorted").Build()
	}
	mainMenu, err := bs.index.MainMenu(*bs.menu)
	if err != nil {
		return sharedParts{}, err
	}
	socials, err := structure.SocialItems(bs.menu.Socials)
	if err != nil {
		return sharedParts{}, err
	}
	body, err := bs.resolver.Resolve("/", bs.main.FooterContent)
	if err != nil {
		return sharedParts{}, ferrors.ConfigError("footer content cannot be resolved").
			Fatal().
			WithCause(err).
			WithContext("footerContent", bs.main.FooterContent).
			Build()
	}
	footer, err := g.renderer.Footer(body.HTML)
	if err != nil {
		return sharedParts{}, err
	}
	return sharedParts{
		mainMenu: mainMenu,
		socials:  socials,
		footer:   footer,
		cssLinks: bs.main.CSSLinks(),
		jsLinks:  bs.main.JSLinks(),
	}, nil
}

// renderPage assembles and writes the page at path. It returns the written
// file and the fingerprint of the page content.
func (g *Generator) renderPage(bs *buildState, shared sharedParts, path string) (string, string, error) {
	r := g.renderer
	item, ok := bs.index.Item(path)
	if !ok {
		return "", "", ferrors.InternalError("indexed path has no item").WithContext("path", path).Build()
	}

	menu, _ := bs.index.SideMenu(path)
	sideMenu, err := r.SideMenu(path, menu)
	if err != nil {
		return "", "", err
	}
	nav, err := r.Navigation(render.Navigation{
		Path:      path,
		SiteTitle: bs.main.SiteTitle,
		Color:     bs.main.Navbar(),
		MainMenu:  shared.mainMenu,
		Socials:   shared.socials,
		SideMenu:  sideMenu,
	})
	if err != nil {
		return "", "", err
	}

	crumbs, err := bs.index.Breadcrumbs(path)
	if err != nil {
		return "", "", err
	}
	self, _ := bs.index.MenuItem(path)
	trail, err := r.Breadcrumbs(crumbs, self)
	if err != nil {
		return "", "", err
	}

	body, err := bs.resolver.Resolve(path, item.Content)
	if err != nil {
		return "", "", err
	}
	figure, err := bs.notifier.Image(path, item.Image, bulma.ImageMain)
	if err != nil {
		return "", "", err
	}
	article, err := r.Content(render.Content{
		Title:    item.Title,
		SubTitle: item.SubTitle,
		Image:    figure,
		Body:     body.HTML,
	})
	if err != nil {
		return "", "", err
	}

	side, err := bs.notifier.Side(bs.index.SideNotifications(path))
	if err != nil {
		return "", "", err
	}

	doc, err := r.Page(render.Page{
		Title:           item.Title,
		Summary:         item.Summary,
		BackgroundClass: bs.main.Background(),
		Navigation:      nav,
		Breadcrumbs:     trail,
		SideMenu:        sideMenu,
		Main:            article,
		Left:            fragments(bs.index.InheritedNotifications(path, structure.SideLeft)),
		Right:           fragments(bs.index.InheritedNotifications(path, structure.SideRight)),
		Side:            side,
		Footer:          shared.footer,
		CSSLinks:        shared.cssLinks,
		JSLinks:         shared.jsLinks,
	})
	if err != nil {
		return "", "", err
	}
	target, err := bs.writer.WriteHTML(path, string(doc))
	if err != nil {
		return "", "", err
	}
	return target, body.Fingerprint, nil
}

// fragments converts notifications rendered during the content stage back
// to template fragments.
func fragments(rendered []string) []template.HTML {
	out := make([]template.HTML, len(rendered))
	for i, s := range rendered {
		out[i] = template.HTML(s) // #nosec G203 - produced by the notification templates
	}
	return out
}
