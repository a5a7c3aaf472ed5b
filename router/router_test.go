package router

import (
	"context"
	"testing"

	"github.com/hupe1980/pharmamesh/core"
	"github.com/hupe1980/pharmamesh/model"
	"github.com/hupe1980/pharmamesh/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConversation(query string) *core.Conversation {
	return core.NewConversation(query, prompts.Contexts())
}

func TestRouter_KeywordDominance(t *testing.T) {
	cases := []struct {
		query string
		want  core.Specialist
	}{
		{"What are the patient efficacy outcomes of the Phase 3 clinical trial?", core.SpecialistClinical},
		{"Who holds the patent on this formulation and when does exclusivity end?", core.SpecialistPatent},
		{"Has the FDA granted approval and what adverse events were reported?", core.SpecialistRegulatory},
		{"Which peer review journal published the latest research on this topic?", core.SpecialistLiterature},
	}

	for _, tc := range cases {
		m := model.NewMockModel("test")
		r := New(m)

		dec, err := r.Decide(context.Background(), newConversation(tc.query))
		require.NoError(t, err, tc.query)
		assert.False(t, dec.Terminal, tc.query)
		assert.Equal(t, tc.want, dec.Specialist, tc.query)
		assert.Zero(t, m.Calls(), "keyword routing must not call the model")
	}
}

func TestRouter_TieBreakFirstDeclared(t *testing.T) {
	m := model.NewMockModel("test")
	r := New(m)

	// One clinical keyword ("patient") and one patent keyword
	// ("formulation"): the tie goes to the first-declared specialist.
	dec, err := r.Decide(context.Background(), newConversation("patient response to the new formulation"))
	require.NoError(t, err)
	assert.Equal(t, core.SpecialistClinical, dec.Specialist)
}

func TestRouter_FallbackClassifiesOnce(t *testing.T) {
	query := "tell me about quantum computing hardware"

	m := model.NewMockModel("test")
	m.AddResponse(query, "regulatory")
	r := New(m)

	dec, err := r.Decide(context.Background(), newConversation(query))
	require.NoError(t, err)
	assert.Equal(t, core.SpecialistRegulatory, dec.Specialist)
	assert.Equal(t, 1, m.Calls(), "fallback must perform exactly one generation call")
}

func TestRouter_FallbackUnknownIdentifier(t *testing.T) {
	query := "tell me about quantum computing hardware"

	m := model.NewMockModel("test")
	m.AddResponse(query, "ask an astrology expert")
	r := New(m)

	_, err := r.Decide(context.Background(), newConversation(query))
	assert.ErrorIs(t, err, core.ErrRoutingAmbiguous)
}

func TestRouter_ExcludesAnsweredSpecialists(t *testing.T) {
	m := model.NewMockModel("test")
	r := New(m)

	conv := newConversation("Compare the clinical trial efficacy with the patent formulation claims")
	conv.Append(core.NewSpecialistMessage(core.SpecialistClinical, "clinical findings"))

	dec, err := r.Decide(context.Background(), conv)
	require.NoError(t, err)
	assert.Equal(t, core.SpecialistPatent, dec.Specialist)
}

func TestRouter_TerminalWhenNoFurtherMatch(t *testing.T) {
	m := model.NewMockModel("test")
	r := New(m)

	// Only clinical keywords; once clinical answered there is nothing left
	// to route and the fallback must not fire.
	conv := newConversation("patient outcomes in the clinical trial")
	conv.Append(core.NewSpecialistMessage(core.SpecialistClinical, "clinical findings"))

	dec, err := r.Decide(context.Background(), conv)
	require.NoError(t, err)
	assert.True(t, dec.Terminal)
	assert.Zero(t, m.Calls())
}

func TestRouter_TerminalWhenAllAnswered(t *testing.T) {
	m := model.NewMockModel("test")
	r := New(m)

	conv := newConversation("anything")
	for _, s := range core.Specialists() {
		conv.Append(core.NewSpecialistMessage(s, "answer"))
	}

	dec, err := r.Decide(context.Background(), conv)
	require.NoError(t, err)
	assert.True(t, dec.Terminal)
}

func TestKeywordScorer_CountsOccurrences(t *testing.T) {
	s := NewKeywordScorer(nil)

	scores := s.Score("patent patent formulation", core.Specialists())
	assert.Equal(t, 3, scores[core.SpecialistPatent])
	assert.Zero(t, scores[core.SpecialistClinical])
}

func TestKeywordScorer_CaseInsensitive(t *testing.T) {
	s := NewKeywordScorer(nil)

	scores := s.Score("FDA APPROVAL pending", core.Specialists())
	assert.Equal(t, 2, scores[core.SpecialistRegulatory])
}
