package wikitext_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/gridcrawl"
	"github.com/fwojciec/gridcrawl/wikitext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// driverPage is a synthetic subject page carrying every marker the
// extractors look for, including the nested table every real infobox has.
const driverPage = `<!DOCTYPE html>
<html><head><title>Lewis Hamilton - Wikipedia</title></head>
<body>
<p>Sir Lewis Hamilton (born 7 January 1985) is a British racing driver.
He is a seven-time World Champion and holds the record for wins.</p>
<table class="infobox vcard">
<tr><th>Born</th><td><span class="bday">1985-01-07</span><br/>
<span class="birthplace"><a href="/wiki/Stevenage">Stevenage</a>, Hertfordshire, England</span></td></tr>
<tr><th>Nationality</th><td><a href="/wiki/United_Kingdom">United Kingdom</a> <a href="/wiki/British_people">British</a></td></tr>
<tr><th colspan="2">Formula One World Championship career</th></tr>
<tr><th>Car number</th><td>44</td></tr>
<tr><th>Teams</th><td><a href="/wiki/McLaren">McLaren</a>, <a href="/wiki/Mercedes">Mercedes</a>, <a href="/wiki/Ferrari">Ferrari</a></td></tr>
<tr><th>Wins</th><td>105</td></tr>
<tr><th>Podiums</th><td>202</td></tr>
<tr><th>Pole positions</th><td>104</td></tr>
<tr><td><table><tr><td>nested stats table</td></tr></table></td></tr>
</table>
<p>Article body continues here.</p>
</body></html>`

const pageURL = "https://en.wikipedia.org/wiki/Lewis_Hamilton"

func TestName(t *testing.T) {
	t.Parallel()

	t.Run("from page title before the separator", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Lewis Hamilton", wikitext.Name(driverPage, pageURL))
	})

	t.Run("falls back to URL path segment", func(t *testing.T) {
		t.Parallel()
		got := wikitext.Name("<html><body>no title here</body></html>",
			"https://en.wikipedia.org/wiki/Nigel_Mansell")
		assert.Equal(t, "Nigel Mansell", got)
	})
}

func TestSplitName(t *testing.T) {
	t.Parallel()

	first, last := wikitext.SplitName("Lewis Carl Hamilton")
	assert.Equal(t, "Lewis", first)
	assert.Equal(t, "Carl Hamilton", last)

	first, last = wikitext.SplitName("Fangio")
	assert.Equal(t, "Fangio", first)
	assert.Empty(t, last)
}

func TestDateOfBirth(t *testing.T) {
	t.Parallel()

	t.Run("machine-readable bday span", func(t *testing.T) {
		t.Parallel()
		dob := wikitext.DateOfBirth(wikitext.Infobox(driverPage))
		require.True(t, dob.Present())
		assert.Equal(t, "1985-01-07", dob.Value())
	})

	t.Run("falls back to textual day month year", func(t *testing.T) {
		t.Parallel()
		dob := wikitext.DateOfBirth("born on 29 July 1981 in Spain")
		require.True(t, dob.Present())
		assert.Equal(t, "29 July 1981", dob.Value())
	})

	t.Run("missing when no date marker", func(t *testing.T) {
		t.Parallel()
		assert.False(t, wikitext.DateOfBirth("<p>no dates at all</p>").Present())
	})
}

func TestAge(t *testing.T) {
	t.Parallel()

	t.Run("computed against the reference year", func(t *testing.T) {
		t.Parallel()

		dob := gridcrawl.NewField("29 July 1981")
		for _, year := range []int{2024, 2026, 2030} {
			now := time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
			age := wikitext.Age(dob, now)
			require.True(t, age.Present())
			assert.Equal(t, year-1981, atoi(t, age.Value()))
		}
	})

	t.Run("missing dob yields missing age", func(t *testing.T) {
		t.Parallel()
		assert.False(t, wikitext.Age(gridcrawl.MissingField(), time.Now()).Present())
	})

	t.Run("dob without a plausible year yields missing age", func(t *testing.T) {
		t.Parallel()
		age := wikitext.Age(gridcrawl.NewField("29 July 81"), time.Now())
		assert.False(t, age.Present())
	})
}

func TestBirthplace(t *testing.T) {
	t.Parallel()

	t.Run("normalized birthplace span", func(t *testing.T) {
		t.Parallel()
		bp := wikitext.Birthplace(wikitext.Infobox(driverPage))
		require.True(t, bp.Present())
		assert.Equal(t, "Stevenage , Hertfordshire, England", bp.Value())
	})

	t.Run("missing without a birthplace span", func(t *testing.T) {
		t.Parallel()
		assert.False(t, wikitext.Birthplace("<table>plain</table>").Present())
	})
}

func TestNationality(t *testing.T) {
	t.Parallel()

	t.Run("takes the last linked entry in the cell", func(t *testing.T) {
		t.Parallel()
		nat := wikitext.Nationality(wikitext.Infobox(driverPage))
		require.True(t, nat.Present())
		assert.Equal(t, "British", nat.Value())
	})

	t.Run("strips parenthetical qualifiers", func(t *testing.T) {
		t.Parallel()
		cell := `<tr><th>Nationality</th><td><a href="/wiki/X">British (racing licence)</a></td></tr>`
		nat := wikitext.Nationality(cell)
		require.True(t, nat.Present())
		assert.Equal(t, "British", nat.Value())
	})

	t.Run("missing without a nationality cell", func(t *testing.T) {
		t.Parallel()
		assert.False(t, wikitext.Nationality("<td>Born 1985</td>").Present())
	})

	t.Run("missing when the cell has no links", func(t *testing.T) {
		t.Parallel()
		assert.False(t, wikitext.Nationality("Nationality</th><td>British</td>").Present())
	})
}

func TestTeam(t *testing.T) {
	t.Parallel()

	t.Run("takes the last linked team as the most recent", func(t *testing.T) {
		t.Parallel()
		team := wikitext.Team(wikitext.CareerStats(driverPage))
		require.True(t, team.Present())
		assert.Equal(t, "Ferrari", team.Value())
	})

	t.Run("missing without a teams cell", func(t *testing.T) {
		t.Parallel()
		assert.False(t, wikitext.Team("<table>no career here</table>").Present())
	})
}

func TestTitles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		present bool
	}{
		{
			name:    "spelled-out count maps to its integer",
			input:   "He is a seven-time World Champion.",
			want:    "7",
			present: true,
		},
		{
			name:    "digit count",
			input:   "a 2-time World Champion from Spain",
			want:    "2",
			present: true,
		},
		{
			name:    "drivers championship phrasing",
			input:   "three-time World Drivers' Champion",
			want:    "3",
			present: true,
		},
		{
			name:    "champion marker without a count yields zero",
			input:   "He never became World Champion.",
			want:    "0",
			present: true,
		},
		{
			name:    "championships marker without a count yields zero",
			input:   "World Championship career spanned a decade",
			want:    "0",
			present: true,
		},
		{
			name:    "no marker at all yields missing",
			input:   "a rally driver of some repute",
			present: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := wikitext.Titles(tt.input)
			assert.Equal(t, tt.present, got.Present())
			if tt.present {
				assert.Equal(t, tt.want, got.Value())
			}
		})
	}
}

func TestCareerStats(t *testing.T) {
	t.Parallel()

	stats := wikitext.CareerStats(driverPage)

	assert.Equal(t, "105", wikitext.Wins(stats).OrSentinel())
	assert.Equal(t, "202", wikitext.Podiums(stats).OrSentinel())
	assert.Equal(t, "104", wikitext.Poles(stats).OrSentinel())
	assert.Equal(t, "44", wikitext.CarNumber(stats).OrSentinel())
}

func TestCareerStats_SkipsEarlierCareerSection(t *testing.T) {
	t.Parallel()

	// Stat labels from an earlier career block in the same infobox must
	// not leak into the championship scope.
	page := `<html><body>
<table class="infobox vcard">
<tr><th colspan="2">24 Hours of Le Mans career</th></tr>
<tr><th>Wins</th><td>2</td></tr>
<tr><th>Teams</th><td><a href="/wiki/Toyota">Toyota</a></td></tr>
<tr><th colspan="2">Formula One World Championship career</th></tr>
<tr><th>Wins</th><td>32</td></tr>
<tr><th>Teams</th><td><a href="/wiki/Scuderia_Ferrari">Ferrari</a></td></tr>
<tr><td><table><tr><td>nested</td></tr></table></td></tr>
</table>
</body></html>`

	stats := wikitext.CareerStats(page)

	assert.Equal(t, "32", wikitext.Wins(stats).OrSentinel())
	assert.Equal(t, "Ferrari", wikitext.Team(stats).OrSentinel())
}

func TestCareerStats_MissingMarkers(t *testing.T) {
	t.Parallel()

	// No career-stats block anywhere: every stat extractor must return a
	// missing field, never an error.
	empty := wikitext.CareerStats("<html><body><p>short page</p></body></html>")

	assert.False(t, wikitext.Wins(empty).Present())
	assert.False(t, wikitext.Podiums(empty).Present())
	assert.False(t, wikitext.Poles(empty).Present())
	assert.False(t, wikitext.CarNumber(empty).Present())
}

func TestScopes(t *testing.T) {
	t.Parallel()

	t.Run("infobox scope isolates the infobox table", func(t *testing.T) {
		t.Parallel()

		scope := wikitext.Infobox(driverPage)
		assert.Contains(t, scope, `class="bday"`)
		assert.NotContains(t, scope, "Article body continues")
	})

	t.Run("falls back to page head when no infobox", func(t *testing.T) {
		t.Parallel()

		page := "<html><body><p>plain page</p></body></html>"
		assert.Equal(t, page, wikitext.Infobox(page))
		assert.Equal(t, page, wikitext.CareerStats(page))
	})

	t.Run("full page scope is normalized text", func(t *testing.T) {
		t.Parallel()

		page := wikitext.FullPage(driverPage)
		assert.NotContains(t, page, "<")
		assert.Contains(t, page, "seven-time World Champion")
	})

	t.Run("fallback windows never split a multibyte rune", func(t *testing.T) {
		t.Parallel()

		// A two-byte rune straddling each window boundary.
		assert.True(t, utf8.ValidString(wikitext.FullPage(strings.Repeat("x", 11999)+"é and more")))
		assert.True(t, utf8.ValidString(wikitext.Infobox(strings.Repeat("x", 7999)+"é and more")))
		assert.True(t, utf8.ValidString(wikitext.CareerStats(strings.Repeat("x", 7999)+"é and more")))
	})
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	var n int
	for _, r := range s {
		require.True(t, r >= '0' && r <= '9', "not a digit: %q", s)
		n = n*10 + int(r-'0')
	}
	return n
}
