package specialist

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/pharmamesh/core"
	"github.com/hupe1980/pharmamesh/logging"
	"github.com/hupe1980/pharmamesh/model"
)

// Options configures an Invoker instance.
type Options struct {
	Logger logging.Logger
}

// Invoker binds one specialist identity to the generation capability.
type Invoker struct {
	id     core.Specialist
	model  model.Model
	logger logging.Logger
}

// NewInvoker constructs an Invoker answering as the given specialist.
func NewInvoker(id core.Specialist, m model.Model, optFns ...func(o *Options)) *Invoker {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Invoker{id: id, model: m, logger: opts.Logger}
}

// Specialist returns the identity the invoker answers as.
func (i *Invoker) Specialist() core.Specialist { return i.id }

// Invoke performs one generation call for the bound specialist and appends
// the answer to the conversation.
//
// The model sees the specialist's instruction context followed by the entire
// message history, so later specialists and the synthesizer observe what
// earlier specialists said. All messages present before the call remain
// unchanged and in order; exactly one message is appended on success. On
// failure nothing is appended and the error wraps core.ErrGenerationFailed.
func (i *Invoker) Invoke(ctx context.Context, conv *core.Conversation) (core.Message, error) {
	instructions, ok := conv.Instruction(i.id)
	if !ok {
		return core.Message{}, fmt.Errorf("no instruction context configured for specialist %q", i.id)
	}

	i.logger.Debug("invoker.generate.start", "specialist", i.id, "history_len", conv.Len())

	resp, err := i.model.Generate(ctx, model.Request{
		Instructions: instructions,
		Messages:     conv.Messages(),
	})
	if err != nil {
		i.logger.Error("invoker.generate.error", "specialist", i.id, "error", err)
		return core.Message{}, fmt.Errorf("%w: specialist %s: %v", core.ErrGenerationFailed, i.id, err)
	}

	if strings.TrimSpace(resp.Text) == "" {
		i.logger.Error("invoker.generate.empty", "specialist", i.id)
		return core.Message{}, fmt.Errorf("%w: specialist %s returned no content", core.ErrGenerationFailed, i.id)
	}

	msg := core.NewSpecialistMessage(i.id, resp.Text)
	conv.Append(msg)

	i.logger.Debug("invoker.generate.done", "specialist", i.id, "message_id", msg.ID)

	return msg, nil
}
