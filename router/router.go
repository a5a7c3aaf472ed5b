package router

import (
	"context"

	"github.com/hupe1980/pharmamesh/core"
	"github.com/hupe1980/pharmamesh/logging"
	"github.com/hupe1980/pharmamesh/model"
)

// Decision is the outcome of one routing step: either the specialist to
// invoke next or a terminal marker meaning no further specialist is needed.
// Decisions are produced fresh per step and never persisted.
type Decision struct {
	Specialist core.Specialist
	Terminal   bool
}

// Options configures a Router instance.
type Options struct {
	Scorer     Scorer
	Classifier Classifier
	Logger     logging.Logger
}

// Router picks the next specialist for a conversation.
//
// Deciding is pure with respect to conversation state except for the
// fallback path, which performs exactly one generation call. Specialists
// that already answered in this conversation are excluded from scoring, so
// repeated consultation walks through the matching specialists exactly once.
type Router struct {
	scorer     Scorer
	classifier Classifier
	logger     logging.Logger
}

// New constructs a Router. The model backs the fallback classifier unless a
// custom Classifier is supplied.
func New(m model.Model, optFns ...func(o *Options)) *Router {
	opts := Options{
		Scorer:     NewKeywordScorer(nil),
		Classifier: NewModelClassifier(m),
		Logger:     logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Router{
		scorer:     opts.Scorer,
		classifier: opts.Classifier,
		logger:     opts.Logger,
	}
}

// Decide returns the next specialist for the conversation, or a terminal
// decision when routing is exhausted.
//
// Algorithm:
//  1. Extract the most recent user turn (falling back to the last message
//     of any role).
//  2. Score the specialists that have not yet answered. The highest score
//     wins; ties break in favor of the first-declared specialist.
//  3. On an all-zero score with no answers so far, fall back to one
//     model-based classification. Once any specialist has answered, an
//     all-zero score is terminal instead, so the fallback fires at most
//     once per request.
func (r *Router) Decide(ctx context.Context, conv *core.Conversation) (Decision, error) {
	candidates := remaining(conv)
	if len(candidates) == 0 {
		r.logger.Debug("router.decide.terminal", "reason", "all specialists answered")
		return Decision{Terminal: true}, nil
	}

	text := conv.LastUserContent()
	scores := r.scorer.Score(text, candidates)

	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if scores[candidate] > scores[best] {
			best = candidate
		}
	}

	if scores[best] > 0 {
		r.logger.Debug("router.decide.keyword", "specialist", best, "score", scores[best])
		return Decision{Specialist: best}, nil
	}

	if conv.AnswerCount() > 0 {
		r.logger.Debug("router.decide.terminal", "reason", "no further keyword match")
		return Decision{Terminal: true}, nil
	}

	r.logger.Debug("router.decide.fallback", "query", text)
	specialist, err := r.classifier.Classify(ctx, text, candidates)
	if err != nil {
		return Decision{}, err
	}

	r.logger.Debug("router.decide.classified", "specialist", specialist)
	return Decision{Specialist: specialist}, nil
}

// remaining lists the routable specialists that have not yet answered, in
// declared order.
func remaining(conv *core.Conversation) []core.Specialist {
	var out []core.Specialist
	for _, s := range core.Specialists() {
		if !conv.HasAnswered(s) {
			out = append(out, s)
		}
	}
	return out
}
