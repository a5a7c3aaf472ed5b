package orchestrator

import (
	"fmt"
	"testing"

	"github.com/hupe1980/pharmamesh/core"
	"github.com/hupe1980/pharmamesh/prompts"
	"github.com/stretchr/testify/assert"
)

func TestSynthesisGate(t *testing.T) {
	cases := []struct {
		answers int
		want    bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, true},
	}

	specialists := core.Specialists()
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d answers", tc.answers), func(t *testing.T) {
			conv := core.NewConversation("q", prompts.Contexts())
			for i := 0; i < tc.answers; i++ {
				conv.Append(core.NewSpecialistMessage(specialists[i%len(specialists)], "answer"))
			}
			assert.Equal(t, tc.want, SynthesisGate(conv))
		})
	}
}
