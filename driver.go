package gridcrawl

import "context"

// Sentinel is the fixed placeholder written for any record field whose
// value could not be determined. The consumer contract depends on every
// field being present as a string, so missing data is never represented
// by omission or null.
const Sentinel = "N/A"

// MinNameLength is the minimum length of a record name. Candidates with
// shorter names are expected noise from link discovery and are dropped.
const MinNameLength = 4

// DriverRecord represents one driver extracted from a subject page.
// The JSON keys are the persisted artifact schema and must not change
// without coordinating with consumers of the output file.
type DriverRecord struct {
	Name        string `json:"name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"dob"`
	Age         string `json:"age"`
	Birthplace  string `json:"birthplace"`
	Nationality string `json:"nationality"`
	Team        string `json:"team"`
	Titles      string `json:"titles"`
	Wins        string `json:"wins"`
	Podiums     string `json:"podiums"`
	Poles       string `json:"poles"`
	CarNumber   string `json:"number"`
	SourceURL   string `json:"wiki_url"`
}

// Validate returns an error if the record contains invalid fields.
func (r *DriverRecord) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	if len(r.Name) < MinNameLength {
		return Errorf(EINVALID, "record name %q too short", r.Name)
	}
	return nil
}

// RecordStore persists a crawl's full record collection as one unit.
type RecordStore interface {
	// WriteAll atomically replaces the stored collection with records.
	// Either the full new collection becomes visible or the previous
	// artifact remains unchanged. An empty slice writes a valid empty
	// collection.
	WriteAll(ctx context.Context, records []*DriverRecord) error

	// ReadAll loads the stored collection as a whole. A store that has
	// never been written reads as an empty collection, not an error.
	ReadAll(ctx context.Context) ([]*DriverRecord, error)
}
