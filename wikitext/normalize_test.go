package wikitext_test

import (
	"testing"

	"github.com/fwojciec/gridcrawl/wikitext"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "replaces tags with spaces to avoid token collisions",
			input: "<b>Stevenage</b>,<i>England</i>",
			want:  "Stevenage , England",
		},
		{
			name:  "decodes ampersand entity",
			input: "Marlboro &amp; McLaren",
			want:  "Marlboro & McLaren",
		},
		{
			name:  "decodes non-breaking space entity",
			input: "7&nbsp;January",
			want:  "7 January",
		},
		{
			name:  "removes numeric entities",
			input: "Hulkenberg&#252;",
			want:  "Hulkenberg",
		},
		{
			name:  "removes template blocks",
			input: "born {{birth date|1985|1|7}} in England",
			want:  "born in England",
		},
		{
			name:  "unwraps piped wiki links to their label",
			input: "drives for [[Scuderia Ferrari|Ferrari]]",
			want:  "drives for Ferrari",
		},
		{
			name:  "unwraps plain wiki links",
			input: "born in [[Stevenage]]",
			want:  "born in Stevenage",
		},
		{
			name:  "collapses whitespace runs and trims",
			input: "  Lewis \n\t Hamilton  ",
			want:  "Lewis Hamilton",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wikitext.Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<td><a href=\"/wiki/Stevenage\">Stevenage</a>, England</td>",
		"Marlboro &amp; McLaren {{cite}} [[Scuderia Ferrari|Ferrari]]",
		"plain text with   spaces",
	}

	for _, input := range inputs {
		once := wikitext.Normalize(input)
		twice := wikitext.Normalize(once)
		assert.Equal(t, once, twice, "normalize(normalize(x)) must equal normalize(x) for %q", input)
	}
}
