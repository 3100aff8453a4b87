package wikitext

import (
	"regexp"
	"unicode/utf8"
)

// Scope sizing for pages where the expected markup is absent.
const (
	// defaultScopeBytes is the fallback window when no infobox is found.
	defaultScopeBytes = 8000
	// fullPageBytes bounds the normalized full-page scope.
	fullPageBytes = 12000
)

// The infobox is the first table whose class contains "infobox". It holds
// a nested table, hence the second closing tag in the pattern.
var (
	infoboxRE = regexp.MustCompile(
		`(?is)<table[^>]*class="[^"]*infobox[^"]*".*?</table>.*?</table>`)
	careerStatsRE = regexp.MustCompile(
		`(?is)<table[^>]*class="[^"]*infobox[^"]*".*?World Championship career.*?</table>.*?</table>`)
	careerMarkerRE = regexp.MustCompile(`(?i)World Championship career`)
)

// Infobox returns the first infobox table block of the page, or the first
// 8000 bytes when none is found.
func Infobox(html string) string {
	if m := infoboxRE.FindString(html); m != "" {
		return m
	}
	return head(html, defaultScopeBytes)
}

// CareerStats returns the infobox sub-section starting at the "World
// Championship career" marker, or the same fallback window as Infobox.
// Cutting at the marker keeps stat labels from an earlier career block
// (a sports-car or junior-series section) out of scope.
func CareerStats(html string) string {
	m := careerStatsRE.FindString(html)
	if m == "" {
		return head(html, defaultScopeBytes)
	}
	if loc := careerMarkerRE.FindStringIndex(m); loc != nil {
		return m[loc[0]:]
	}
	return m
}

// FullPage returns the normalized text of the first ~12000 bytes of the
// page.
func FullPage(html string) string {
	return Normalize(head(html, fullPageBytes))
}

// head returns at most the first n bytes of s, backing off to the nearest
// rune boundary so a multibyte character is never split.
func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
