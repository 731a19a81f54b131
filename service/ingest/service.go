package ingest

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/cpusched/model/process"
)

// DefaultMaxRecords caps the number of records of one input
const DefaultMaxRecords = 100

// Service loads process records from any afs supported location
type Service struct {
	fs         afs.Service
	maxRecords int
}

// Option customises the service
type Option func(*Service)

// WithMaxRecords sets the record cap; 0 disables it
func WithMaxRecords(max int) Option {
	return func(s *Service) {
		s.maxRecords = max
	}
}

// WithFs sets the storage service
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// New creates an ingest service
func New(options ...Option) *Service {
	s := &Service{maxRecords: DefaultMaxRecords}
	for _, opt := range options {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	return s
}

// Load downloads and parses records from URL
func (s *Service) Load(ctx context.Context, URL string, options ...storage.Option) ([]*process.Process, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load records from %s: %w", URL, err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", URL, err)
	}
	if s.maxRecords > 0 && len(records) > s.maxRecords {
		return nil, fmt.Errorf("%w: %s has %d records, max %d", ErrTooManyRecords, URL, len(records), s.maxRecords)
	}
	return records, nil
}
