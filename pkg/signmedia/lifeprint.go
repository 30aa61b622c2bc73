package signmedia

import (
	"net/url"
	"strings"

	"SignBridge/internal/entity"

	"github.com/sirupsen/logrus"
)

const (
	LifeprintName    = "Lifeprint (ASL University)"
	LifeprintBaseURL = "https://www.lifeprint.com/asl101/"
)

// Path fragments that mark navigation and layout art rather than a sign.
var lifeprintDecoys = []string{
	"icon", "button", "nav", "logo", "banner", "spacer",
	"concepts", "layout", "menu", "header", "footer",
	"background", "arrow", "bullet",
}

// Videos are preferred over GIFs.
var lifeprintRules = mustRules(
	ruleDef{pattern: `(?i)<video[^>]*src=["']([^"']+\.mp4)["']`, kind: entity.MediaVideo},
	ruleDef{pattern: `(?i)<source[^>]+src=["']([^"']+\.mp4)["']`, kind: entity.MediaVideo},
	ruleDef{pattern: `(?i)src=["']([^"']+/videos/[^"']+\.mp4)["']`, kind: entity.MediaVideo},
	ruleDef{pattern: `(?i)src=["'](\.\./\.\./videos/[^"']+\.mp4)["']`, kind: entity.MediaVideo},
	ruleDef{pattern: `(?i)<img[^>]+src=["']([^"']*\.gif)["']`, kind: entity.MediaImage, skipDecoys: true},
	ruleDef{pattern: `(?i)src=["']([^"']+/signs/[^"']+\.gif)["']`, kind: entity.MediaImage, skipDecoys: true},
)

// LifeprintSite describes the ASL University dictionary, whose pages are
// bucketed by first letter. baseURL is the asl101 root and must end in "/".
func LifeprintSite(baseURL string) Site {
	if baseURL == "" {
		baseURL = LifeprintBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return Site{
		Name: LifeprintName,
		Candidates: func(word string) []string {
			return lifeprintCandidates(baseURL, word)
		},
		Rules:   lifeprintRules,
		Decoys:  lifeprintDecoys,
		Resolve: lifeprintResolver(baseURL),
	}
}

func NewLifeprint(baseURL string, fetcher Fetcher, log *logrus.Logger) *Provider {
	return NewProvider(LifeprintSite(baseURL), fetcher, log)
}

func lifeprintCandidates(baseURL, word string) []string {
	letter := "a"
	for _, r := range word {
		letter = string(r)
		break
	}

	variants := []string{
		strings.ReplaceAll(word, " ", ""),
		strings.ReplaceAll(word, " ", "-"),
		strings.ReplaceAll(word, " ", "_"),
	}

	seen := make(map[string]struct{}, len(variants))
	urls := make([]string, 0, len(variants))
	for _, v := range variants {
		u := baseURL + "pages-signs/" + url.PathEscape(letter) + "/" + url.PathEscape(v) + ".htm"
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	return urls
}

func lifeprintResolver(baseURL string) Resolver {
	root := origin(baseURL)
	return func(ref string, page string) string {
		switch {
		case isAbsolute(ref):
			return ref
		case strings.HasPrefix(ref, "//"):
			return "https:" + ref
		case strings.HasPrefix(ref, "../../"):
			return baseURL + strings.ReplaceAll(ref, "../../", "")
		case strings.HasPrefix(ref, "../"):
			return baseURL + "pages-signs/" + strings.ReplaceAll(ref, "../", "")
		case strings.HasPrefix(ref, "/"):
			return root + ref
		default:
			return pageDir(page) + "/" + ref
		}
	}
}
