package mock

import (
	"context"

	"github.com/fwojciec/gridcrawl"
)

var _ gridcrawl.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of gridcrawl.RecordStore.
type RecordStore struct {
	WriteAllFn func(ctx context.Context, records []*gridcrawl.DriverRecord) error
	ReadAllFn  func(ctx context.Context) ([]*gridcrawl.DriverRecord, error)
}

func (s *RecordStore) WriteAll(ctx context.Context, records []*gridcrawl.DriverRecord) error {
	return s.WriteAllFn(ctx, records)
}

func (s *RecordStore) ReadAll(ctx context.Context) ([]*gridcrawl.DriverRecord, error) {
	return s.ReadAllFn(ctx)
}

var _ gridcrawl.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of gridcrawl.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *Limiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
