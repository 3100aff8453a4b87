package gridcrawl

import "context"

// LinkExtractor extracts candidate subject URLs from aggregator page HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns, in document order, the
	// absolute URLs of internal links whose path has a human-name shape
	// (2-4 underscore-joined, capitalized, accent-tolerant tokens).
	// The baseURL is used to resolve relative links.
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// LinkCollector discovers subject URLs from a list of aggregator pages.
type LinkCollector interface {
	// Collect scans the aggregator pages in order and returns a
	// deduplicated, discovery-ordered sequence of subject URLs capped at
	// target. An unavailable aggregator contributes zero links; collection
	// proceeds with the remaining pages. Scanning stops once target links
	// have been found.
	Collect(ctx context.Context, pages []string, target int) ([]string, error)
}

// DefaultAggregatorPages are the Wikipedia list pages scanned for driver
// links when no other pages are configured.
func DefaultAggregatorPages() []string {
	return []string{
		"https://en.wikipedia.org/wiki/List_of_Formula_One_drivers",
		"https://en.wikipedia.org/wiki/Formula_One_drivers_who_have_competed_in_100_or_more_Grands_Prix",
		"https://en.wikipedia.org/wiki/List_of_Formula_One_World_Drivers%27_Champions",
	}
}

// DefaultExcludeWords is the exclusion vocabulary for link discovery.
// A candidate path containing any of these words (case-insensitive) is
// rejected as a non-subject page: namespace pages, list/category/season/
// circuit/team-aggregate pages, and a few club-football rejections kept
// from the original filter list. This is configuration, not logic; callers
// may supply their own vocabulary.
func DefaultExcludeWords() []string {
	return []string{
		"Wikipedia", "Category", "File", "Template", "Help", "Special",
		"Portal", "Talk", "User", "Main_Page", "List_of", "History_of",
		"Season", "Grand_Prix_of", "Championship", "Circuit",
		"Constructors", "Team_", "engine", "Liberty", "Formula_One",
		"East", "West", "North", "South",
	}
}
