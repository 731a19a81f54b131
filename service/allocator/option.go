package allocator

import "log/slog"

type Option func(*Service)

// WithLogger sets the logger admission decisions are written to
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithQueueCapacity sets the initial capacity of every class queue
func WithQueueCapacity(capacity int) Option {
	return func(s *Service) {
		s.queueCapacity = capacity
	}
}
