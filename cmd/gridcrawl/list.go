package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/gridcrawl"
)

// sanitizeRE strips characters that never appear in driver names, so a
// query like "räikkönen?" still matches the stored "Kimi Räikkönen" after
// both sides are reduced to plain letters, digits, spaces and hyphens.
var sanitizeRE = regexp.MustCompile(`[^a-zA-Z0-9\s\-']`)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.ReadAll(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gridcrawl.ErrorMessage(err))
		return err
	}

	matched := 0
	for _, r := range records {
		if !c.matches(r) {
			continue
		}
		matched++
		fmt.Fprintf(deps.Stdout, "%-28s %-14s %-24s titles=%s wins=%s\n",
			r.Name, r.Nationality, r.Team, r.Titles, r.Wins)
	}

	if matched == 0 {
		fmt.Fprintln(deps.Stdout, "No drivers found. Use 'gridcrawl crawl' to build the artifact.")
	}

	return nil
}

func (c *ListCmd) matches(r *gridcrawl.DriverRecord) bool {
	if c.Nationality != "" && !strings.EqualFold(r.Nationality, c.Nationality) {
		return false
	}
	if c.Team != "" && !containsFold(r.Team, c.Team) {
		return false
	}
	if c.Search != "" {
		query := sanitizeRE.ReplaceAllString(c.Search, "")
		if !containsFold(sanitizeRE.ReplaceAllString(r.Name, ""), query) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
