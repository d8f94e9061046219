package cli

import (
	"github.com/google/uuid"
)

// TokenGenerator mints run tokens for output/log correlation.
//
// Every build gets one token; it is stamped into the JSON envelope as
// trace_id and attached to every log line the build emits, so a failed
// CI run can be matched to its logs after the fact.
type TokenGenerator interface {
	// Generate returns a new unique run token.
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, making tokens
// sortable by creation time, which keeps interleaved CI logs readable.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
