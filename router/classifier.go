package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/pharmamesh/core"
	"github.com/hupe1980/pharmamesh/model"
)

// Classifier resolves a specialist when keyword scoring is inconclusive.
type Classifier interface {
	Classify(ctx context.Context, text string, candidates []core.Specialist) (core.Specialist, error)
}

// ModelClassifier asks the generation capability to pick a specialist. The
// model's reply is scanned for a known identifier; anything else fails with
// core.ErrRoutingAmbiguous rather than guessing silently.
type ModelClassifier struct {
	model model.Model
}

// NewModelClassifier creates a classifier backed by the given model.
func NewModelClassifier(m model.Model) *ModelClassifier {
	return &ModelClassifier{model: m}
}

// Classify implements Classifier with exactly one generation call.
func (c *ModelClassifier) Classify(ctx context.Context, text string, candidates []core.Specialist) (core.Specialist, error) {
	resp, err := c.model.Generate(ctx, model.Request{
		Instructions: buildClassifyPrompt(candidates),
		Messages:     []core.Message{core.NewUserMessage(text)},
	})
	if err != nil {
		return "", fmt.Errorf("%w: classifier call: %v", core.ErrGenerationFailed, err)
	}

	reply := strings.ToLower(resp.Text)
	for _, candidate := range candidates {
		if strings.Contains(reply, string(candidate)) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: classifier returned %q", core.ErrRoutingAmbiguous, resp.Text)
}

// buildClassifyPrompt enumerates the candidate specialists for the model.
func buildClassifyPrompt(candidates []core.Specialist) string {
	var sb strings.Builder
	sb.WriteString("You route pharmaceutical research queries to the right expert.\n")
	sb.WriteString("Choose exactly one of the following specialists for the query:\n")
	for _, candidate := range candidates {
		fmt.Fprintf(&sb, "- %s: %s\n", candidate, candidate.Description())
	}
	sb.WriteString("Respond with only the specialist name (e.g. 'clinical').")
	return sb.String()
}
