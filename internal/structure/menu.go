package structure

import (
	"strings"

	"git.home.luguber.info/inful/vados/internal/config"
	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
)

// MenuKind distinguishes pages of this site from links to other sites.
type MenuKind int

const (
	MenuInternal MenuKind = iota
	MenuExternal
)

func (k MenuKind) String() string {
	switch k {
	case MenuInternal:
		return "internal"
	case MenuExternal:
		return "external"
	default:
		return "unknown"
	}
}

// MenuItem is a resolved navigation node. External items never have children.
type MenuItem struct {
	Kind     MenuKind
	URL      string
	Title    string
	Icon     string
	Children []MenuItem
}

// HasChildren reports whether the node carries a child list.
func (m MenuItem) HasChildren() bool { return len(m.Children) > 0 }

var externalSchemes = []string{"https://", "http://"}

// IsExternalURL reports whether url points outside the site.
func IsExternalURL(url string) bool {
	for _, scheme := range externalSchemes {
		if strings.HasPrefix(url, scheme) {
			return true
		}
	}
	return false
}

func externalMenuItem(entry config.MenuEntry) (MenuItem, error) {
	if entry.Title == "" {
		return MenuItem{}, ferrors.ConfigError("external menu entry requires a title").
			WithContext("url", entry.URL).
			Build()
	}
	return MenuItem{
		Kind:  MenuExternal,
		URL:   entry.URL,
		Title: entry.Title,
		Icon:  entry.Icon,
	}, nil
}

// SocialPlatform is the closed set of social link kinds.
type SocialPlatform int

const (
	SocialGitHub SocialPlatform = iota
	SocialLinkedIn
	SocialFacebook
	SocialYouTube
	SocialOther
)

// knownPlatforms is matched in order against the link URL.
var knownPlatforms = []struct {
	prefix   string
	platform SocialPlatform
}{
	{"https://github.com/", SocialGitHub},
	{"https://www.linkedin.com/", SocialLinkedIn},
	{"https://www.facebook.com/", SocialFacebook},
	{"https://www.youtube.com/", SocialYouTube},
}

// SocialItem is a classified social link. Icon and color are only stored
// for SocialOther; known platforms derive theirs.
type SocialItem struct {
	Platform SocialPlatform
	URL      string
	icon     string
	color    string
}

// NewSocialItem classifies a configured social link. A link that matches no
// known platform must carry both icon and color.
func NewSocialItem(entry config.SocialEntry) (SocialItem, error) {
	for _, known := range knownPlatforms {
		if strings.HasPrefix(entry.URL, known.prefix) {
			return SocialItem{Platform: known.platform, URL: entry.URL}, nil
		}
	}
	if entry.Icon == "" {
		return SocialItem{}, ferrors.ConfigError("social link requires an icon").
			WithContext("url", entry.URL).
			Build()
	}
	if entry.Color == "" {
		return SocialItem{}, ferrors.ConfigError("social link requires a color").
			WithContext("url", entry.URL).
			Build()
	}
	return SocialItem{Platform: SocialOther, URL: entry.URL, icon: entry.Icon, color: entry.Color}, nil
}

// SocialItems classifies every configured social link, failing on the first invalid one.
func SocialItems(entries []config.SocialEntry) ([]SocialItem, error) {
	out := make([]SocialItem, 0, len(entries))
	for _, e := range entries {
		item, err := NewSocialItem(e)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Icon returns the Material Design Icons name for the link.
func (s SocialItem) Icon() string {
	switch s.Platform {
	case SocialGitHub:
		return "github"
	case SocialLinkedIn:
		return "linkedin"
	case SocialFacebook:
		return "facebook"
	case SocialYouTube:
		return "youtube"
	case SocialOther:
		return s.icon
	default:
		return ""
	}
}

// Color returns the hex brand color (without "#").
func (s SocialItem) Color() string {
	switch s.Platform {
	case SocialGitHub:
		return "171515"
	case SocialLinkedIn:
		return "0077b5"
	case SocialFacebook:
		return "4267B2"
	case SocialYouTube:
		return "c4302b"
	case SocialOther:
		return s.color
	default:
		return ""
	}
}
