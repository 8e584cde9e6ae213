package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/vados/internal/bulma"
	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/logfields"
)

// Site configuration file names.
const (
	MainFile   = "main.json"
	MenuFile   = "menu.json"
	PageFile   = "page.json"
	ImagesFile = "images.json"
)

// DefaultBackgroundClass is used when main.json sets no backgroundClass.
const DefaultBackgroundClass = "has-background-light"

// MainConfig is the site-wide main.json.
type MainConfig struct {
	SiteTitle         string      `json:"siteTitle" validate:"required"`
	JSFiles           []string    `json:"jsFiles"`
	IncludeDefaultJS  *bool       `json:"includeDefaultJs,omitempty"`
	CSSFiles          []string    `json:"cssFiles"`
	IncludeDefaultCSS *bool       `json:"includeDefaultCss,omitempty"`
	BackgroundClass   string      `json:"backgroundClass,omitempty"`
	NavbarColor       bulma.Color `json:"navbarColor,omitempty"`
	FooterContent     string      `json:"footerContent" validate:"required"`
}

// Background returns the body background class.
func (m *MainConfig) Background() string {
	if m.BackgroundClass == "" {
		return DefaultBackgroundClass
	}
	return m.BackgroundClass
}

// Navbar returns the navbar color, Warning when unset.
func (m *MainConfig) Navbar() bulma.Color {
	return m.NavbarColor.Or(bulma.Warning)
}

// DefaultJSIncluded reports whether the bundled navigation script is linked.
func (m *MainConfig) DefaultJSIncluded() bool {
	return m.IncludeDefaultJS == nil || *m.IncludeDefaultJS
}

// CSSLinks returns the configured stylesheets followed by the defaults,
// unless includeDefaultCss is false.
func (m *MainConfig) CSSLinks() []string {
	links := append([]string(nil), m.CSSFiles...)
	if m.IncludeDefaultCSS == nil || *m.IncludeDefaultCSS {
		links = append(links, bulma.DefaultCSSLinks()...)
	}
	return links
}

// JSLinks returns the configured scripts followed by the defaults, unless
// includeDefaultJs is false.
func (m *MainConfig) JSLinks() []string {
	links := append([]string(nil), m.JSFiles...)
	if m.DefaultJSIncluded() {
		links = append(links, bulma.DefaultJSLinks()...)
	}
	return links
}

// MenuConfig is menu.json.
type MenuConfig struct {
	MainMenu []MenuEntry   `json:"mainMenu" validate:"dive"`
	Socials  []SocialEntry `json:"socials" validate:"dive"`
}

// MenuEntry is one main menu entry. Internal entries take title and icon
// from the page unless overridden here.
type MenuEntry struct {
	URL   string `json:"url" validate:"required"`
	Title string `json:"title,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// SocialEntry is one social link in the footer.
type SocialEntry struct {
	URL   string `json:"url" validate:"required"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// PageConfig is the per-directory page.json.
type PageConfig struct {
	Title              string         `json:"title" validate:"required"`
	SubTitle           string         `json:"subTitle,omitempty"`
	Icon               string         `json:"icon,omitempty"`
	Summary            string         `json:"summary,omitempty"`
	Image              string         `json:"image,omitempty"`
	Content            string         `json:"content"`
	Order              *uint32        `json:"order,omitempty"`
	LeftNotifications  []Notification `json:"leftNotifications,omitempty" validate:"omitempty,dive"`
	RightNotifications []Notification `json:"rightNotifications,omitempty" validate:"omitempty,dive"`
}

// Notification is a side or content annotation. Without a URL it is a
// content notification; a URL starting with "/" links inside the site.
type Notification struct {
	Content string      `json:"content" validate:"required"`
	Title   string      `json:"title,omitempty"`
	URL     string      `json:"url,omitempty"`
	Color   bulma.Color `json:"color,omitempty"`
	Image   string      `json:"image,omitempty"`
}

// ImageList is images.json.
type ImageList struct {
	List []ImageReference `json:"list"`
}

// ImageReference names one source image and its metadata.
type ImageReference struct {
	FileName string `json:"fileName" validate:"required"`
	Title    string `json:"title,omitempty"`
	AltText  string `json:"altText" validate:"required"`
}

// DefaultPageConfig builds the page config of a directory without page.json.
// "getting-started" becomes "Getting Started".
func DefaultPageConfig(dirName string) PageConfig {
	title := strings.NewReplacer("-", " ", "_", " ").Replace(dirName)
	title = cases.Title(language.Und).String(title)
	return PageConfig{
		Title:   title,
		Content: "<h1>" + title + "</h1>",
	}
}

// LoadMainConfig reads main.json from the source root.
func LoadMainConfig(sourceDir string) (*MainConfig, error) {
	var cfg MainConfig
	if err := readJSON(filepath.Join(sourceDir, MainFile), &cfg); err != nil {
		return nil, err
	}
	if err := validateSite(&cfg, MainFile); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMenuConfig reads menu.json from the source root.
func LoadMenuConfig(sourceDir string) (*MenuConfig, error) {
	var cfg MenuConfig
	if err := readJSON(filepath.Join(sourceDir, MenuFile), &cfg); err != nil {
		return nil, err
	}
	if err := validateSite(&cfg, MenuFile); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadPageConfig reads page.json from dir. found is false when the file does
// not exist; the caller then falls back to DefaultPageConfig.
func LoadPageConfig(dir string) (cfg PageConfig, found bool, err error) {
	path := filepath.Join(dir, PageFile)
	if err := readJSON(path, &cfg); err != nil {
		if ferrors.HasCategory(err, ferrors.CategoryNotFound) {
			return PageConfig{}, false, nil
		}
		return PageConfig{}, false, err
	}
	if err := validateSite(&cfg, path); err != nil {
		return PageConfig{}, true, err
	}
	return cfg, true, nil
}

// LoadImageList reads images.json from dir. A missing file yields nil.
// References failing validation are logged and dropped individually.
func LoadImageList(dir string) ([]ImageReference, error) {
	path := filepath.Join(dir, ImagesFile)
	var list ImageList
	if err := readJSON(path, &list); err != nil {
		if ferrors.HasCategory(err, ferrors.CategoryNotFound) {
			return nil, nil
		}
		return nil, err
	}
	refs := make([]ImageReference, 0, len(list.List))
	for i := range list.List {
		if err := validate.Struct(&list.List[i]); err != nil {
			slog.Warn("Skipping invalid image reference",
				logfields.File(path),
				slog.Int("index", i),
				logfields.Error(err))
			continue
		}
		refs = append(refs, list.List[i])
	}
	return refs, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ferrors.NotFoundError("site configuration file not found").
				WithContext("path", path).
				Build()
		}
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "read site configuration").
			WithContext("path", path).
			Build()
	}
	if err := json.Unmarshal(data, v); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, fmt.Sprintf("%s is not well-formed", filepath.Base(path))).
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}

func validateSite(v any, name string) error {
	if err := validate.Struct(v); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid site configuration").
			Fatal().
			WithContext("file", name).
			Build()
	}
	return nil
}
