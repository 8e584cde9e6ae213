// Package bulma holds the Bulma CSS vocabulary used by the page templates:
// color modifiers, responsive image hints and the default asset links.
package bulma

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"git.home.luguber.info/inful/vados/internal/foundation"
)

// Color is a Bulma color modifier.
type Color int

const (
	ColorNone Color = iota
	White
	Black
	Light
	Dark
	Primary
	Link
	Info
	Success
	Warning
	Danger
)

var colorNames = foundation.NewNormalizer(map[string]Color{
	"white":   White,
	"black":   Black,
	"light":   Light,
	"dark":    Dark,
	"primary": Primary,
	"link":    Link,
	"info":    Info,
	"success": Success,
	"succes":  Success, // accepted for older site configs
	"warning": Warning,
	"danger":  Danger,
}, ColorNone)

// ParseColor converts a configured color name such as "Primary".
func ParseColor(name string) (Color, error) {
	c, err := colorNames.NormalizeWithError(name)
	if err != nil {
		return ColorNone, fmt.Errorf("unknown color: %w", err)
	}
	return c, nil
}

// UnmarshalJSON reads a color name.
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseColor(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Or returns c, or fallback when c is unset.
func (c Color) Or(fallback Color) Color {
	if c == ColorNone {
		return fallback
	}
	return c
}

// CSSClass returns the "is-*" modifier class.
func (c Color) CSSClass() string {
	switch c {
	case White:
		return "is-white"
	case Black:
		return "is-black"
	case Light:
		return "is-light"
	case Dark:
		return "is-dark"
	case Primary:
		return "is-primary"
	case Link:
		return "is-link"
	case Info:
		return "is-info"
	case Success:
		return "is-success"
	case Warning:
		return "is-warning"
	case Danger:
		return "is-danger"
	default:
		return ""
	}
}

// DefaultJSPath is where the bundled navigation script is written.
const DefaultJSPath = "/js/vados.js"

//go:embed assets/vados.js
var navigationJS []byte

// NavigationJS returns the bundled burger/side menu toggle script.
func NavigationJS() []byte { return navigationJS }

// DefaultCSSLinks are appended to the configured stylesheets unless disabled.
func DefaultCSSLinks() []string {
	return []string{
		"https://cdn.jsdelivr.net/npm/@mdi/font@6.5.95/css/materialdesignicons.min.css",
		"https://cdn.jsdelivr.net/npm/bulma@0.9.3/css/bulma.min.css",
	}
}

// DefaultJSLinks are appended to the configured scripts unless disabled.
func DefaultJSLinks() []string {
	return []string{DefaultJSPath}
}

// ImageType is the placement of a responsive image on a page.
type ImageType int

const (
	ImageMain ImageType = iota
	ImageSub
	ImageSide
)

// Sizes returns the "sizes" attribute matching the Bulma column layout.
func (t ImageType) Sizes() string {
	switch t {
	case ImageMain:
		return "(min-width: 1408px) 986px, (min-width: 769px) calc(75vw - 94px), calc(100vw - 64px)"
	case ImageSub:
		return "(min-width: 1408px) 425px, (min-width: 769px) calc(37.5vw - 106px), calc(100vw - 112px)"
	case ImageSide:
		return "(min-width: 1408px) 318px, (min-width: 769px) calc(25vw - 94px), calc(100vw - 112px)"
	default:
		return ""
	}
}

func (t ImageType) Decoding() string {
	if t == ImageMain {
		return "sync"
	}
	return "async"
}

func (t ImageType) Loading() string {
	if t == ImageMain {
		return "eager"
	}
	return "lazy"
}
