package core

import "testing"

func testContexts() map[Specialist]string {
	return map[Specialist]string{
		SpecialistClinical:    "clinical context",
		SpecialistPatent:      "patent context",
		SpecialistRegulatory:  "regulatory context",
		SpecialistLiterature:  "literature context",
		SpecialistSynthesizer: "synthesizer context",
	}
}

func TestNewConversation_Seeding(t *testing.T) {
	conv := NewConversation("what about DTZ-100?", testContexts())

	if conv.Len() != 1 {
		t.Fatalf("expected seeded length 1, got %d", conv.Len())
	}
	last, ok := conv.Last()
	if !ok {
		t.Fatalf("expected a seeded message")
	}
	if last.Role != RoleUser {
		t.Fatalf("expected user role, got %q", last.Role)
	}
	if last.Origin != "" {
		t.Fatalf("user turns must have no origin, got %q", last.Origin)
	}
	if last.Content != "what about DTZ-100?" {
		t.Fatalf("unexpected content %q", last.Content)
	}
}

func TestNewConversation_IndependentStates(t *testing.T) {
	contexts := testContexts()

	a := NewConversation("same query", contexts)
	b := NewConversation("same query", contexts)

	a.Append(NewSpecialistMessage(SpecialistClinical, "answer"))

	if a.Len() != 2 || b.Len() != 1 {
		t.Fatalf("seeding leaked state across conversations: a=%d b=%d", a.Len(), b.Len())
	}
}

func TestNewConversation_ContextMapCopied(t *testing.T) {
	contexts := testContexts()
	conv := NewConversation("q", contexts)

	contexts[SpecialistClinical] = "mutated"

	got, ok := conv.Instruction(SpecialistClinical)
	if !ok || got != "clinical context" {
		t.Fatalf("instruction mapping must be immutable, got %q", got)
	}
}

func TestConversation_AppendOnly(t *testing.T) {
	conv := NewConversation("q", testContexts())
	before := conv.Messages()

	conv.Append(NewSpecialistMessage(SpecialistClinical, "first"))
	conv.Append(NewSpecialistMessage(SpecialistPatent, "second"))

	after := conv.Messages()
	if len(after) != len(before)+2 {
		t.Fatalf("expected %d messages, got %d", len(before)+2, len(after))
	}
	for i, m := range before {
		if after[i] != m {
			t.Fatalf("message %d changed after append", i)
		}
	}
	if after[len(after)-1].Content != "second" {
		t.Fatalf("appends must preserve order")
	}
}

func TestConversation_MessagesDefensiveCopy(t *testing.T) {
	conv := NewConversation("q", testContexts())

	msgs := conv.Messages()
	msgs[0].Content = "tampered"

	if got := conv.LastUserContent(); got != "q" {
		t.Fatalf("external mutation leaked into history: %q", got)
	}
}

func TestConversation_LastUserContent(t *testing.T) {
	conv := NewConversation("first question", testContexts())
	conv.Append(NewSpecialistMessage(SpecialistClinical, "an answer"))

	if got := conv.LastUserContent(); got != "first question" {
		t.Fatalf("expected latest user turn, got %q", got)
	}

	conv.Append(NewUserMessage("follow-up"))
	if got := conv.LastUserContent(); got != "follow-up" {
		t.Fatalf("expected follow-up, got %q", got)
	}
}

func TestConversation_LastUserContent_FallbackToLastMessage(t *testing.T) {
	// History without any user turn: fall back to the last message of any role.
	conv := &Conversation{
		messages: []Message{NewSpecialistMessage(SpecialistClinical, "only answer")},
	}

	if got := conv.LastUserContent(); got != "only answer" {
		t.Fatalf("expected fallback to last message, got %q", got)
	}

	empty := &Conversation{}
	if got := empty.LastUserContent(); got != "" {
		t.Fatalf("expected empty string for empty history, got %q", got)
	}
}

func TestConversation_AnswerAccounting(t *testing.T) {
	conv := NewConversation("q", testContexts())

	if conv.AnswerCount() != 0 {
		t.Fatalf("expected 0 answers, got %d", conv.AnswerCount())
	}
	if conv.HasAnswered(SpecialistClinical) {
		t.Fatalf("clinical has not answered yet")
	}

	conv.Append(NewSpecialistMessage(SpecialistClinical, "a1"))
	conv.Append(NewSpecialistMessage(SpecialistPatent, "a2"))
	conv.Append(NewSpecialistMessage(SpecialistSynthesizer, "fused"))

	if conv.AnswerCount() != 3 {
		t.Fatalf("expected 3 answers, got %d", conv.AnswerCount())
	}
	if !conv.HasAnswered(SpecialistClinical) || !conv.HasAnswered(SpecialistPatent) {
		t.Fatalf("answer tracking lost a specialist")
	}

	answered := conv.Answered()
	want := []Specialist{SpecialistClinical, SpecialistPatent, SpecialistSynthesizer}
	if len(answered) != len(want) {
		t.Fatalf("expected %v, got %v", want, answered)
	}
	for i := range want {
		if answered[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, answered)
		}
	}
}
