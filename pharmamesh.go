// Package pharmamesh provides a high-level façade over the routing and
// synthesis orchestration engine for pharmaceutical research queries. Most
// applications interact with this package by:
//  1. Creating a Mesh via New() with a model implementation (optionally
//     overriding instruction contexts, knowledge source or fan-out policy)
//  2. Calling Run() with a free-text research query
//
// The façade performs the collaborator-layer work the core stays out of:
// it looks up grounding facts in the knowledge source, folds them into the
// specialists' instruction contexts, and hands the resulting strings to the
// orchestrator. Defaults are safe for local development; production
// deployments supply a real model adapter, their own knowledge backend and
// a structured logger.
package pharmamesh

import (
	"context"

	"github.com/hupe1980/pharmamesh/core"
	"github.com/hupe1980/pharmamesh/knowledge"
	"github.com/hupe1980/pharmamesh/logging"
	"github.com/hupe1980/pharmamesh/model"
	"github.com/hupe1980/pharmamesh/orchestrator"
	"github.com/hupe1980/pharmamesh/prompts"
)

// Options configures the Mesh instance.
type Options struct {
	// Contexts overrides the default instruction-context mapping. It must
	// cover every specialist plus the synthesizer role.
	Contexts map[core.Specialist]string
	// Knowledge grounds specialist contexts with looked-up facts before
	// each run. Nil disables enrichment.
	Knowledge knowledge.Source
	// MaxSpecialists caps specialist fan-out per request (0 = no cap).
	MaxSpecialists int
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Mesh is the high-level façade aggregating the orchestrator and its
// collaborators. It is safe for concurrent use; each Run gets its own
// conversation state.
type Mesh struct {
	model model.Model
	opts  Options
}

// New creates a new Mesh instance with optional overrides.
func New(m model.Model, optFns ...func(o *Options)) *Mesh {
	opts := Options{
		Contexts:  prompts.Contexts(),
		Knowledge: knowledge.NewInMemorySource(),
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Mesh{model: m, opts: opts}
}

// Run routes a query to one or more specialists, optionally synthesizes
// their answers, and returns the final answer. On failure the returned
// error is a *core.RunError carrying the partial conversation history.
func (m *Mesh) Run(ctx context.Context, query string) (*orchestrator.FinalAnswer, error) {
	contexts := m.opts.Contexts
	if m.opts.Knowledge != nil {
		enriched, err := knowledge.EnrichContexts(contexts, m.opts.Knowledge, query)
		if err != nil {
			return nil, err
		}
		contexts = enriched
	}

	orc, err := orchestrator.New(m.model, contexts, func(o *orchestrator.Options) {
		o.MaxSpecialists = m.opts.MaxSpecialists
		o.Logger = m.opts.Logger
	})
	if err != nil {
		return nil, err
	}

	return orc.Run(ctx, query)
}
