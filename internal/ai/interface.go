// README: Extraction contract between the planner and the LLM provider.
package ai

import (
	"context"
	"errors"

	"rupeetravel/internal/modules/intent"
	"rupeetravel/internal/types"
)

// ErrUnparseable signals that the text could not be parsed into the minimum
// required intent shape (origin, destination, trip type all unresolved and no
// clarification offered). Callers recover from it locally; it is not a fault.
var ErrUnparseable = errors.New("query could not be parsed into a trip intent")

// IntentExtractor turns free text into a structured trip intent. The
// implementation is treated as non-deterministic and untrusted: its output is
// always passed through the guardrail normalizer before use, and it never
// influences store queries except through the typed TripIntent.
//
// today anchors relative-date reasoning so extraction is reproducible for a
// given request.
type IntentExtractor interface {
	Extract(ctx context.Context, queryText string, today types.Date) (intent.TripIntent, error)
}
