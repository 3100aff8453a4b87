// Package fs provides a file-based implementation of gridcrawl.RecordStore
// with atomic whole-file update semantics.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/gridcrawl"
)

// Ensure Store implements gridcrawl.RecordStore at compile time.
var _ gridcrawl.RecordStore = (*Store)(nil)

// Store persists the crawl's record collection as a single JSON file.
// Writes go to a temporary file in the same directory and are renamed
// over the final path, so a crawl interrupted mid-write leaves the
// previous artifact untouched.
type Store struct {
	path string
}

// NewStore creates a Store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the artifact path.
func (s *Store) Path() string {
	return s.path
}

// WriteAll atomically replaces the artifact with the full record
// collection. An empty or nil slice writes a valid empty collection.
func (s *Store) WriteAll(ctx context.Context, records []*gridcrawl.DriverRecord) error {
	if records == nil {
		records = []*gridcrawl.DriverRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

// ReadAll loads the whole artifact. A store that has never been written
// reads as an empty collection.
func (s *Store) ReadAll(ctx context.Context) ([]*gridcrawl.DriverRecord, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []*gridcrawl.DriverRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []*gridcrawl.DriverRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, gridcrawl.Errorf(gridcrawl.EINTERNAL, "corrupt record artifact %s: %v", s.path, err)
	}
	if records == nil {
		records = []*gridcrawl.DriverRecord{}
	}
	return records, nil
}
