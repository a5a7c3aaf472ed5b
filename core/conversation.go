package core

// Conversation is the shared state threaded through one orchestration
// request: an append-only message history plus an immutable mapping from
// specialist identifier to instruction context.
//
// Contract:
//   - The instruction-context mapping is fixed at construction; only the
//     message history grows.
//   - Messages are never mutated or reordered after Append.
//   - A Conversation is confined to the single goroutine executing its
//     request; concurrent requests each get their own instance.
type Conversation struct {
	id       string
	contexts map[Specialist]string
	messages []Message
}

// NewConversation seeds a conversation with a single user message and the
// full instruction-context mapping. The mapping is copied so later mutation
// of the caller's map cannot leak into the conversation.
func NewConversation(query string, contexts map[Specialist]string) *Conversation {
	cp := make(map[Specialist]string, len(contexts))
	for k, v := range contexts {
		cp[k] = v
	}
	return &Conversation{
		id:       NewID(),
		contexts: cp,
		messages: []Message{NewUserMessage(query)},
	}
}

// ID returns the conversation's unique identifier.
func (c *Conversation) ID() string { return c.id }

// Append adds one message at the end of the history.
func (c *Conversation) Append(m Message) { c.messages = append(c.messages, m) }

// Messages returns a defensive copy of the ordered history.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages in the history.
func (c *Conversation) Len() int { return len(c.messages) }

// Last returns the most recent message and false when the history is empty.
func (c *Conversation) Last() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// LastUserContent returns the content of the most recent user turn. When no
// user turn exists it falls back to the most recent message of any role, and
// to the empty string for an empty history.
func (c *Conversation) LastUserContent() string {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == RoleUser {
			return c.messages[i].Content
		}
	}
	if last, ok := c.Last(); ok {
		return last.Content
	}
	return ""
}

// Instruction returns the instruction context configured for a specialist.
func (c *Conversation) Instruction(s Specialist) (string, bool) {
	text, ok := c.contexts[s]
	return text, ok
}

// AnswerCount reports how many specialist-answer turns have been produced
// so far in this request.
func (c *Conversation) AnswerCount() int {
	n := 0
	for _, m := range c.messages {
		if m.Role == RoleSpecialistAnswer {
			n++
		}
	}
	return n
}

// Answered returns the specialists that have produced an answer so far, in
// answer order and without duplicates.
func (c *Conversation) Answered() []Specialist {
	seen := make(map[Specialist]bool, len(c.messages))
	var out []Specialist
	for _, m := range c.messages {
		if m.Role != RoleSpecialistAnswer || m.Origin == "" || seen[m.Origin] {
			continue
		}
		seen[m.Origin] = true
		out = append(out, m.Origin)
	}
	return out
}

// HasAnswered reports whether the given specialist has already produced an
// answer in this conversation.
func (c *Conversation) HasAnswered(s Specialist) bool {
	for _, m := range c.messages {
		if m.Role == RoleSpecialistAnswer && m.Origin == s {
			return true
		}
	}
	return false
}
