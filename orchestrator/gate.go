package orchestrator

import "github.com/hupe1980/pharmamesh/core"

// Gate decides, after one or more specialists have answered, whether a
// fusion step is required. It must be a pure predicate over conversation
// state; no model calls.
type Gate func(conv *core.Conversation) bool

// SynthesisGate is the default gate: synthesize iff at least two specialist
// answers have been produced in this request. A single answer stands on its
// own and is returned as-is.
func SynthesisGate(conv *core.Conversation) bool {
	return conv.AnswerCount() >= 2
}
