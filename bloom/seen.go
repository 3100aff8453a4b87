// Package bloom provides seen-URL tracking for link discovery using a
// Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Seen tracks URLs already observed during aggregator scanning.
// A false positive drops a fresh URL from discovery; a false negative
// never happens, so no duplicate passes through. The first-occurrence-wins
// contract of the collector depends on exactly this asymmetry.
type Seen struct {
	f *bloom.BloomFilter
}

// NewSeen creates a tracker sized for n expected URLs with the given
// false positive rate.
func NewSeen(n uint, fpRate float64) *Seen {
	return &Seen{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Observe marks the URL as seen and reports whether it had been seen
// before.
func (s *Seen) Observe(url string) bool {
	return s.f.TestAndAddString(url)
}

// Count returns the approximate number of distinct URLs observed.
func (s *Seen) Count() uint {
	return uint(s.f.ApproximatedSize())
}
