package wikitext

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/gridcrawl"
)

var (
	titleRE = regexp.MustCompile(
		`<title>\s*([A-ZÀ-Ö][a-zA-ZÀ-ö'\-\. ]+?)\s*[-–|]`)
	bdayRE = regexp.MustCompile(
		`(?i)class="bday">(\d{4}-\d{2}-\d{2})<`)
	textualDateRE = regexp.MustCompile(
		`(?i)(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})`)
	birthYearRE   = regexp.MustCompile(`(?:19|20)\d{2}`)
	birthplaceRE  = regexp.MustCompile(`(?is)class="birthplace"[^>]*>(.*?)</span>`)
	nationalityRE = regexp.MustCompile(`(?is)Nationality.*?</td>`)
	teamCellRE    = regexp.MustCompile(`(?is)Teams?</th>\s*<td[^>]*>(.*?)</td>`)
	anchorTextRE  = regexp.MustCompile(`(?s)<a[^>]*>([^<]+)</a>`)
	parenRE       = regexp.MustCompile(`\(.*?\)`)
	digitsRE      = regexp.MustCompile(`\d+`)
)

// Name extracts the subject's full display name from the page title,
// trimmed before the title separator. When the title marker is absent it
// falls back to the last path segment of the URL with underscores
// replaced by spaces, so the result is never empty for a well-formed URL.
func Name(html, pageURL string) string {
	if m := titleRE.FindStringSubmatch(html); m != nil {
		return strings.TrimSpace(m[1])
	}
	seg := pageURL
	if i := strings.LastIndex(seg, "/"); i != -1 {
		seg = seg[i+1:]
	}
	return strings.ReplaceAll(seg, "_", " ")
}

// SplitName derives the first/last name split of a full display name.
// The last name is empty for single-word names.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return full, ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// DateOfBirth extracts the birth date from the infobox scope: the
// machine-readable bday span first, then any "Day Month Year" textual
// pattern.
func DateOfBirth(infobox string) gridcrawl.Field {
	if m := bdayRE.FindStringSubmatch(infobox); m != nil {
		return gridcrawl.NewField(m[1])
	}
	if m := textualDateRE.FindStringSubmatch(infobox); m != nil {
		return gridcrawl.NewField(m[1])
	}
	return gridcrawl.MissingField()
}

// Age derives the subject's age from the birth year embedded in dob,
// computed against now rather than a fixed reference year.
func Age(dob gridcrawl.Field, now time.Time) gridcrawl.Field {
	if !dob.Present() {
		return gridcrawl.MissingField()
	}
	y := birthYearRE.FindString(dob.Value())
	if y == "" {
		return gridcrawl.MissingField()
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return gridcrawl.MissingField()
	}
	return gridcrawl.NewField(strconv.Itoa(now.Year() - year))
}

// Birthplace extracts the birthplace-labeled markup region from the
// infobox scope, normalized to plain text.
func Birthplace(infobox string) gridcrawl.Field {
	m := birthplaceRE.FindStringSubmatch(infobox)
	if m == nil {
		return gridcrawl.MissingField()
	}
	return gridcrawl.NewField(Normalize(m[1]))
}

// Nationality extracts the last linked text inside the Nationality table
// cell. Cells listing several entries put the most specific one last.
// Parenthetical qualifiers are stripped.
func Nationality(infobox string) gridcrawl.Field {
	cell := nationalityRE.FindString(infobox)
	if cell == "" {
		return gridcrawl.MissingField()
	}
	link := lastAnchorText(cell)
	if link == "" {
		return gridcrawl.MissingField()
	}
	return gridcrawl.NewField(parenRE.ReplaceAllString(link, ""))
}

// Team extracts the last linked text inside the team/Teams cell of the
// career-stats scope. Cells list affiliations in career order, so the
// last link is the current or most recent team.
func Team(careerStats string) gridcrawl.Field {
	m := teamCellRE.FindStringSubmatch(careerStats)
	if m == nil {
		return gridcrawl.MissingField()
	}
	link := lastAnchorText(m[1])
	if link == "" {
		return gridcrawl.MissingField()
	}
	return gridcrawl.NewField(link)
}

func lastAnchorText(cell string) string {
	links := anchorTextRE.FindAllStringSubmatch(cell, -1)
	if len(links) == 0 {
		return ""
	}
	return strings.TrimSpace(links[len(links)-1][1])
}

// Spelled-out counts accepted by the titles phrase, mapped to digits.
var numberWords = map[string]string{
	"one": "1", "two": "2", "three": "3", "four": "4", "five": "5",
	"six": "6", "seven": "7", "eight": "8", "nine": "9", "ten": "10",
}

var (
	titlesPhraseRE = regexp.MustCompile(
		`(?i)\b(\d+|one|two|three|four|five|six|seven|eight|nine|ten)[-\s–]time\s+World\s+(?:Drivers'?\s+)?Champion`)
	championMarkerRE = regexp.MustCompile(`(?i)World\s+Champion|Championships?`)
)

// Titles extracts the championship count from a "N-time World Champion"
// phrase, accepting a digit or a spelled-out number word. Text carrying a
// champion marker without a count yields "0"; text with no marker at all
// yields a missing field.
func Titles(text string) gridcrawl.Field {
	if m := titlesPhraseRE.FindStringSubmatch(text); m != nil {
		word := strings.ToLower(m[1])
		if d, ok := numberWords[word]; ok {
			return gridcrawl.NewField(d)
		}
		return gridcrawl.NewField(m[1])
	}
	if championMarkerRE.MatchString(text) {
		return gridcrawl.NewField("0")
	}
	return gridcrawl.MissingField()
}

// Labeled career-stats cell patterns. Each matches a label followed by
// the next table cell; the stat is the first digit run inside that cell.
var statCellRE = map[string]*regexp.Regexp{
	"wins":    regexp.MustCompile(`(?is)Wins.*?<td[^>]*>(.*?)</td>`),
	"podiums": regexp.MustCompile(`(?is)Podiums.*?<td[^>]*>(.*?)</td>`),
	"poles":   regexp.MustCompile(`(?is)Pole\s+positions.*?<td[^>]*>(.*?)</td>`),
	"number":  regexp.MustCompile(`(?is)Car\s+number.*?<td[^>]*>(.*?)</td>`),
}

// Wins extracts the race wins count from the career-stats scope.
func Wins(careerStats string) gridcrawl.Field {
	return statCell(careerStats, "wins")
}

// Podiums extracts the podiums count from the career-stats scope.
func Podiums(careerStats string) gridcrawl.Field {
	return statCell(careerStats, "podiums")
}

// Poles extracts the pole positions count from the career-stats scope.
func Poles(careerStats string) gridcrawl.Field {
	return statCell(careerStats, "poles")
}

// CarNumber extracts the racing number from the career-stats scope.
func CarNumber(careerStats string) gridcrawl.Field {
	return statCell(careerStats, "number")
}

func statCell(careerStats, key string) gridcrawl.Field {
	m := statCellRE[key].FindStringSubmatch(careerStats)
	if m == nil {
		return gridcrawl.MissingField()
	}
	d := digitsRE.FindString(m[1])
	if d == "" {
		return gridcrawl.MissingField()
	}
	return gridcrawl.NewField(d)
}
