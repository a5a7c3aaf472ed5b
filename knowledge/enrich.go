package knowledge

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pharmamesh/core"
)

// EnrichContexts folds looked-up facts for the query into a copy of the base
// instruction-context mapping. Specialists whose lookup finds nothing keep
// their base context; the synthesizer context is never enriched. The input
// mapping is not mutated.
//
// Lookup failures other than ErrNotFound are returned so operators see
// broken knowledge backends instead of silently degraded answers.
func EnrichContexts(base map[core.Specialist]string, src Source, query string) (map[core.Specialist]string, error) {
	out := make(map[core.Specialist]string, len(base))
	for k, v := range base {
		out[k] = v
	}

	for _, s := range core.Specialists() {
		ctx, ok := out[s]
		if !ok {
			continue
		}

		records, err := src.Lookup(s, query)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("knowledge lookup for %s: %w", s, err)
		}

		out[s] = fmt.Sprintf(
			"%s\n\nRelevant records from the internal knowledge base:\n\n%s",
			ctx, FormatRecords(records),
		)
	}

	return out, nil
}
