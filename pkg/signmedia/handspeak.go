package signmedia

import (
	"strings"

	"SignBridge/internal/entity"

	"github.com/sirupsen/logrus"
)

const (
	HandSpeakName    = "HandSpeak"
	HandSpeakBaseURL = "https://www.handspeak.com"
)

var handSpeakRules = mustRules(
	ruleDef{pattern: `(?i)<source[^>]+src=["']([^"']+\.mp4)["']`, kind: entity.MediaVideo},
	ruleDef{pattern: `(?i)<video[^>]+src=["']([^"']+\.mp4)["']`, kind: entity.MediaVideo},
	ruleDef{pattern: `(?i)<img[^>]+src=["']([^"']*\.gif)["']`, kind: entity.MediaImage, skipDecoys: true},
)

// HandSpeakSite describes the HandSpeak word search. baseURL is the site
// origin.
func HandSpeakSite(baseURL string) Site {
	if baseURL == "" {
		baseURL = HandSpeakBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return Site{
		Name: HandSpeakName,
		Candidates: func(word string) []string {
			return []string{HandSpeakSearchURL(baseURL, word)}
		},
		Rules:   handSpeakRules,
		Decoys:  lifeprintDecoys,
		Resolve: handSpeakResolver(baseURL),
	}
}

func NewHandSpeak(baseURL string, fetcher Fetcher, log *logrus.Logger) *Provider {
	return NewProvider(HandSpeakSite(baseURL), fetcher, log)
}

func HandSpeakSearchURL(baseURL, word string) string {
	return strings.TrimRight(baseURL, "/") + "/word/search/index.php?id=" + quote(word)
}

// Search results only carry usable absolute or root-relative references.
func handSpeakResolver(baseURL string) Resolver {
	root := origin(baseURL)
	return func(ref string, _ string) string {
		switch {
		case isAbsolute(ref):
			return ref
		case strings.HasPrefix(ref, "//"):
			return "https:" + ref
		case strings.HasPrefix(ref, "/"):
			return root + ref
		default:
			return ""
		}
	}
}
