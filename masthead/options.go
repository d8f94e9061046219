package masthead

import "log/slog"

// Option configures a Synchronizer at construction time.
type Option func(*Synchronizer)

// WithLogger routes the Synchronizer's debug notes to logger. Without it the
// Synchronizer is silent; nothing it logs is load-bearing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synchronizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}
