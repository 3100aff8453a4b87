// Package goquery provides a goquery-based implementation of
// gridcrawl.LinkExtractor for discovering candidate driver links on
// aggregator pages.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gridcrawl"
)

// Ensure LinkExtractor implements gridcrawl.LinkExtractor at compile time.
var _ gridcrawl.LinkExtractor = (*LinkExtractor)(nil)

// humanNamePathRE matches internal wiki paths with a human-name shape:
// 2-4 underscore-joined, capitalized, accent-tolerant name tokens.
// Anything else (years, acronyms, single-word topics) is not a candidate.
var humanNamePathRE = regexp.MustCompile(
	`^/wiki/[A-Z][a-záéíóúàèìòùäëïöüñ'\-]+(?:_[A-Z][a-záéíóúàèìòùäëïöüñ'\-]+){1,3}$`)

// LinkExtractor extracts candidate subject links from aggregator page HTML.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns, in document order, the absolute
// URLs of anchors whose path matches the human-name shape. Relative
// hrefs are resolved against baseURL. Candidates are not deduplicated
// here; the collector owns dedup so discovery order stays observable.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, gridcrawl.Errorf(gridcrawl.EINVALID, "invalid base URL %q", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		// Fragments would defeat dedup by absolute URL.
		if i := strings.Index(href, "#"); i != -1 {
			href = href[:i]
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref)
		// Internal links only: aggregators link out to mirrors and
		// sister projects that are not subject pages.
		if abs.Host != base.Host {
			return
		}
		if !humanNamePathRE.MatchString(abs.Path) {
			return
		}
		links = append(links, abs.String())
	})

	return links, nil
}
