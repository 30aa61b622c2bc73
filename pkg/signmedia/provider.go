// Package signmedia looks up demonstration media for a word on external
// sign language dictionaries.
package signmedia

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"SignBridge/internal/entity"
	"SignBridge/pkg/metrics"

	"github.com/sirupsen/logrus"
)

type MediaProvider interface {
	Name() string
	Fetch(ctx context.Context, word string) entity.MediaResult
}

// Rule extracts a media reference from markup. The first capture group is
// the reference. Rules marked SkipDecoys drop candidates whose path contains
// a decoy token.
type Rule struct {
	Pattern    *regexp.Regexp
	Kind       entity.MediaKind
	SkipDecoys bool
}

// Resolver turns a raw reference found on page into an absolute URL. An empty
// result rejects the reference.
type Resolver func(ref string, page string) string

// Site is everything that distinguishes one provider from another.
type Site struct {
	Name string

	// Candidates lists page URLs for a normalized word, in priority order.
	Candidates func(word string) []string

	Rules   []Rule
	Decoys  []string
	Resolve Resolver
}

type Provider struct {
	site    Site
	fetcher Fetcher
	log     *logrus.Logger
}

func NewProvider(site Site, fetcher Fetcher, log *logrus.Logger) *Provider {
	return &Provider{site: site, fetcher: fetcher, log: log}
}

func (p *Provider) Name() string { return p.site.Name }

// Fetch never fails. Network errors and non-200 responses leave Found false.
func (p *Provider) Fetch(ctx context.Context, word string) entity.MediaResult {
	normalized := NormalizeWord(word)
	candidates := p.site.Candidates(normalized)

	result := entity.MediaResult{
		Word:             word,
		SourceName:       p.site.Name,
		MediaKind:        entity.MediaImage,
		AlternateSources: AlternateSources(word),
	}
	if len(candidates) > 0 {
		result.PageURL = candidates[0]
	}

	page := p.firstPage(ctx, candidates)
	if page == nil {
		metrics.MediaLookupsTotal.WithLabelValues(p.site.Name, "unavailable").Inc()
		return result
	}
	result.PageURL = page.URL

	ref, kind, ok := p.Extract(string(page.Body), page.URL)
	if !ok {
		metrics.MediaLookupsTotal.WithLabelValues(p.site.Name, "not_found").Inc()
		p.log.WithFields(logrus.Fields{
			"provider": p.site.Name,
			"word":     word,
			"page_url": page.URL,
		}).Debug("No media reference on provider page")
		return result
	}

	result.SetMedia(ref, kind)
	metrics.MediaLookupsTotal.WithLabelValues(p.site.Name, "found").Inc()
	return result
}

func (p *Provider) firstPage(ctx context.Context, candidates []string) *Page {
	for _, candidate := range candidates {
		page, err := p.fetcher.Fetch(ctx, candidate)
		if err != nil {
			p.log.WithFields(logrus.Fields{
				"provider": p.site.Name,
				"url":      candidate,
				"error":    err.Error(),
			}).Warn("Media provider fetch failed")
			if ctx.Err() != nil {
				return nil
			}
			continue
		}
		if page.Status == 200 {
			return page
		}
		p.log.WithFields(logrus.Fields{
			"provider": p.site.Name,
			"url":      candidate,
			"status":   page.Status,
		}).Debug("Media provider page not available")
	}
	return nil
}

// Extract applies the rules in order and returns the first accepted reference
// as an absolute URL.
func (p *Provider) Extract(html string, pageURL string) (string, entity.MediaKind, bool) {
	for _, rule := range p.site.Rules {
		for _, m := range rule.Pattern.FindAllStringSubmatch(html, -1) {
			if len(m) < 2 || m[1] == "" {
				continue
			}
			ref := m[1]
			if rule.SkipDecoys && IsDecoy(ref, p.site.Decoys) {
				continue
			}
			if abs := p.site.Resolve(ref, pageURL); abs != "" {
				return abs, rule.Kind, true
			}
		}
	}
	return "", "", false
}

func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func IsDecoy(ref string, decoys []string) bool {
	lower := strings.ToLower(ref)
	for _, token := range decoys {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func isAbsolute(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// pageDir is the page URL up to and excluding its last path element.
func pageDir(page string) string {
	if idx := strings.LastIndex(page, "/"); idx >= 0 {
		return page[:idx]
	}
	return page
}

func origin(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return strings.TrimRight(base, "/")
	}
	return u.Scheme + "://" + u.Host
}

// quote percent-escapes s for URLs. Spaces become %20 and '/' is kept.
func quote(s string) string {
	return strings.NewReplacer("+", "%20", "%2F", "/").Replace(url.QueryEscape(s))
}

func mustRules(defs ...ruleDef) []Rule {
	rules := make([]Rule, 0, len(defs))
	for _, d := range defs {
		rules = append(rules, Rule{
			Pattern:    regexp.MustCompile(d.pattern),
			Kind:       d.kind,
			SkipDecoys: d.skipDecoys,
		})
	}
	return rules
}

type ruleDef struct {
	pattern    string
	kind       entity.MediaKind
	skipDecoys bool
}
