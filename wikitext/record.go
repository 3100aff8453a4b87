package wikitext

import (
	"time"

	"github.com/fwojciec/gridcrawl"
)

// Record runs every field extractor over its designated scope and
// assembles a fully populated DriverRecord in one pass. Missing fields
// are converted to the sentinel here, at the serialization boundary.
// Extractors are independent: a miss in one never blocks the others.
func Record(html, pageURL string, now time.Time) *gridcrawl.DriverRecord {
	infobox := Infobox(html)
	stats := CareerStats(html)
	page := FullPage(html)

	name := Name(html, pageURL)
	first, last := SplitName(name)
	dob := DateOfBirth(infobox)

	return &gridcrawl.DriverRecord{
		Name:        name,
		FirstName:   first,
		LastName:    last,
		DateOfBirth: dob.OrSentinel(),
		Age:         Age(dob, now).OrSentinel(),
		Birthplace:  Birthplace(infobox).OrSentinel(),
		Nationality: Nationality(infobox).OrSentinel(),
		Team:        Team(stats).OrSentinel(),
		Titles:      Titles(page).OrSentinel(),
		Wins:        Wins(stats).OrSentinel(),
		Podiums:     Podiums(stats).OrSentinel(),
		Poles:       Poles(stats).OrSentinel(),
		CarNumber:   CarNumber(stats).OrSentinel(),
		SourceURL:   pageURL,
	}
}
