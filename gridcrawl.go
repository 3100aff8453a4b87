// Package gridcrawl extracts structured biographical and career records
// for Formula 1 drivers from Wikipedia articles. It discovers candidate
// driver pages from aggregator list pages, fetches them politely, runs a
// set of independent pattern-based field extractors over the raw markup,
// and persists the assembled records as a single JSON artifact.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package gridcrawl
