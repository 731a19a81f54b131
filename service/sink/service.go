package sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/cpusched/model/dispatch"
)

// Service writes traces to any afs supported location
type Service struct {
	fs afs.Service
}

// New creates a sink service; a nil fs uses afs.New()
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}

// Write uploads the rendered log to URL, replacing any previous content.
func (s *Service) Write(ctx context.Context, URL string, log *dispatch.Log) error {
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(Encode(log))); err != nil {
		return fmt.Errorf("failed to write trace to %s: %w", URL, err)
	}
	return nil
}

// Compare downloads the trace at URL and diffs it against log
func (s *Service) Compare(ctx context.Context, URL string, log *dispatch.Log) (string, error) {
	expected, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", fmt.Errorf("failed to load expected trace %s: %w", URL, err)
	}
	return Diff(expected, Encode(log))
}
