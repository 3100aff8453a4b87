package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/gridcrawl"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.ReadAll(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gridcrawl.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No drivers found. Use 'gridcrawl crawl' to build the artifact.")
		return nil
	}

	champions := 0
	byNationality := map[string]int{}
	byTeam := map[string]int{}
	for _, r := range records {
		if r.Titles != gridcrawl.Sentinel && r.Titles != "0" {
			champions++
		}
		if r.Nationality != gridcrawl.Sentinel {
			byNationality[r.Nationality]++
		}
		if r.Team != gridcrawl.Sentinel {
			byTeam[r.Team]++
		}
	}

	fmt.Fprintf(deps.Stdout, "Drivers:   %d\n", len(records))
	fmt.Fprintf(deps.Stdout, "Champions: %d\n", champions)

	fmt.Fprintln(deps.Stdout, "\nBy nationality:")
	printCounts(deps, byNationality)

	fmt.Fprintln(deps.Stdout, "\nBy team:")
	printCounts(deps, byTeam)

	return nil
}

// printCounts writes counts sorted by descending count, then name.
func printCounts(deps *Dependencies, counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		fmt.Fprintf(deps.Stdout, "  %-24s %d\n", name, counts[name])
	}
}
