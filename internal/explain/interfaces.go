package explain

import (
	"context"
)

// Explainer produces alternate human-readable explanation bullets for a plan
// from a compact, PII-free summary of the request. Implementations may call
// external services; callers own the timeout and must fall back to the plan's
// deterministic explanation on any error. An Explainer never influences a
// plan's changes or metrics.
type Explainer interface {
	Explain(ctx context.Context, summary string) ([]string, error)
}
