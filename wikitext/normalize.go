// Package wikitext implements pattern-based extraction of driver fields
// from raw Wikipedia article markup. Each extractor is an independent,
// side-effect-free function over a text scope with an explicit fallback
// chain; a pattern that fails to match yields a missing Field, never an
// error. Extraction is deliberately regex-based rather than DOM-based so
// markup drift in one field cannot break the others.
package wikitext

import (
	"regexp"
	"strings"
)

var (
	tagRE        = regexp.MustCompile(`<[^>]+>`)
	numEntityRE  = regexp.MustCompile(`&#\d+;`)
	templateRE   = regexp.MustCompile(`\{\{[^}]*\}\}`)
	wikiLinkRE   = regexp.MustCompile(`\[\[(?:[^\]|]*\|)?([^\]]*)\]\]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// Normalize strips markup noise from raw text: tag delimiters become
// single spaces, a minimal entity set is decoded, wiki template blocks
// are removed, double-bracket links are unwrapped to their label, and
// whitespace runs collapse to single spaces. Normalize is idempotent.
func Normalize(text string) string {
	text = tagRE.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = numEntityRE.ReplaceAllString(text, "")
	text = templateRE.ReplaceAllString(text, "")
	text = wikiLinkRE.ReplaceAllString(text, "$1")
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}
