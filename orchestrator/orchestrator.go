package orchestrator

import (
	"context"
	"fmt"

	"github.com/hupe1980/pharmamesh/core"
	"github.com/hupe1980/pharmamesh/logging"
	"github.com/hupe1980/pharmamesh/model"
	"github.com/hupe1980/pharmamesh/router"
	"github.com/hupe1980/pharmamesh/specialist"
)

// phase enumerates the states of the orchestration loop.
type phase int

const (
	phaseRouting phase = iota
	phaseSpecialistRun
	phaseSynthesisCheck
	phaseSynthesize
	phaseDone
)

// FinalAnswer is the terminal result of one orchestrated request.
type FinalAnswer struct {
	// Text is the content of the last specialist-answer message.
	Text string `json:"text"`
	// Specialists lists the domain specialists that produced an answer, in
	// invocation order. The synthesizer is reported separately via
	// Synthesized rather than listed here.
	Specialists []core.Specialist `json:"specialists"`
	// Synthesized reports whether the synthesizer produced the final text.
	Synthesized bool `json:"synthesized"`
	// HistoryLen is the full message history length, for cost/audit
	// reporting.
	HistoryLen int `json:"history_len"`
}

// Router abstracts the routing decision so custom strategies and test
// doubles can replace the default implementation.
type Router interface {
	Decide(ctx context.Context, conv *core.Conversation) (router.Decision, error)
}

// Options configures an Orchestrator instance.
type Options struct {
	// Router overrides the default keyword-then-classifier router.
	Router Router
	// Gate overrides the default synthesis gate.
	Gate Gate
	// MaxSpecialists caps how many specialists may answer one request.
	// Zero means no cap beyond the specialist set itself; 1 reproduces the
	// minimal single-specialist policy.
	MaxSpecialists int
	// Logger receives structured progress events.
	Logger logging.Logger
}

// Orchestrator is the single entry point collaborators use to run a query
// through routing, specialist invocation and optional synthesis.
//
// The instruction-context mapping is fixed at construction and shared
// read-only across requests; each request receives its own freshly seeded
// conversation, so concurrent Run calls are independent.
type Orchestrator struct {
	model          model.Model
	contexts       map[core.Specialist]string
	router         Router
	gate           Gate
	maxSpecialists int
	logger         logging.Logger
}

// New constructs an Orchestrator over the given generation capability and
// instruction-context mapping. The mapping must contain a context for every
// routable specialist and for the reserved synthesizer role.
func New(m model.Model, contexts map[core.Specialist]string, optFns ...func(o *Options)) (*Orchestrator, error) {
	for _, s := range append(core.Specialists(), core.SpecialistSynthesizer) {
		if contexts[s] == "" {
			return nil, fmt.Errorf("missing instruction context for specialist %q", s)
		}
	}

	opts := Options{
		Gate:   SynthesisGate,
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Router == nil {
		opts.Router = router.New(m, func(o *router.Options) { o.Logger = opts.Logger })
	}

	cp := make(map[core.Specialist]string, len(contexts))
	for k, v := range contexts {
		cp[k] = v
	}

	return &Orchestrator{
		model:          m,
		contexts:       cp,
		router:         opts.Router,
		gate:           opts.Gate,
		maxSpecialists: opts.MaxSpecialists,
		logger:         opts.Logger,
	}, nil
}

// Run executes one query end to end and returns the final answer.
//
// Failures abort the loop immediately and are returned as a *core.RunError
// carrying the conversation state accumulated so far; use errors.Is with
// core.ErrRoutingAmbiguous or core.ErrGenerationFailed to classify the
// cause. Cancellation of ctx stops the loop before the next generation
// call; no retries are performed.
func (o *Orchestrator) Run(ctx context.Context, query string) (*FinalAnswer, error) {
	conv := core.NewConversation(query, o.contexts)
	return o.run(ctx, conv)
}

func (o *Orchestrator) run(ctx context.Context, conv *core.Conversation) (*FinalAnswer, error) {
	o.logger.Info("orchestrator.run.start", "conversation", conv.ID())

	var (
		answered    []core.Specialist
		next        core.Specialist
		routingDone bool
		synthesized bool
	)

	st := phaseRouting
	for st != phaseDone {
		if err := ctx.Err(); err != nil {
			return nil, &core.RunError{State: conv, Err: err}
		}

		switch st {
		case phaseRouting:
			dec, err := o.router.Decide(ctx, conv)
			if err != nil {
				return nil, &core.RunError{State: conv, Err: err}
			}
			if dec.Terminal {
				routingDone = true
				st = phaseSynthesisCheck
				break
			}
			if dec.Specialist == core.SpecialistSynthesizer {
				return nil, &core.RunError{State: conv, Err: fmt.Errorf("router selected reserved specialist %q", dec.Specialist)}
			}
			next = dec.Specialist
			st = phaseSpecialistRun

		case phaseSpecialistRun:
			inv := specialist.NewInvoker(next, o.model, func(io *specialist.Options) { io.Logger = o.logger })
			if _, err := inv.Invoke(ctx, conv); err != nil {
				return nil, &core.RunError{State: conv, Err: err}
			}
			answered = append(answered, next)
			o.logger.Info("orchestrator.specialist.answered", "specialist", next, "answers", len(answered))
			st = phaseSynthesisCheck

		case phaseSynthesisCheck:
			if !routingDone && (o.maxSpecialists <= 0 || len(answered) < o.maxSpecialists) {
				st = phaseRouting
				break
			}
			if o.gate(conv) {
				st = phaseSynthesize
			} else {
				st = phaseDone
			}

		case phaseSynthesize:
			inv := specialist.NewInvoker(core.SpecialistSynthesizer, o.model, func(io *specialist.Options) { io.Logger = o.logger })
			if _, err := inv.Invoke(ctx, conv); err != nil {
				return nil, &core.RunError{State: conv, Err: err}
			}
			synthesized = true
			st = phaseDone
		}
	}

	answer := &FinalAnswer{
		Text:        finalText(conv),
		Specialists: answered,
		Synthesized: synthesized,
		HistoryLen:  conv.Len(),
	}

	o.logger.Info(
		"orchestrator.run.done",
		"conversation", conv.ID(),
		"specialists", len(answer.Specialists),
		"synthesized", answer.Synthesized,
		"history_len", answer.HistoryLen,
	)

	return answer, nil
}

// finalText returns the content of the last specialist-answer message, or
// the empty string when no specialist answered.
func finalText(conv *core.Conversation) string {
	messages := conv.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == core.RoleSpecialistAnswer {
			return messages[i].Content
		}
	}
	return ""
}
