package router

import (
	"strings"

	"github.com/hupe1980/pharmamesh/core"
)

// DefaultKeywords returns the built-in keyword sets, one per routable
// specialist. Keywords are matched as case-insensitive substrings; a term
// may legitimately appear in more than one set ("study" signals both
// clinical trials and literature).
func DefaultKeywords() map[core.Specialist][]string {
	return map[core.Specialist][]string{
		core.SpecialistClinical: {
			"clinical trial", "patient", "study", "efficacy", "phase", "outcome", "nct",
		},
		core.SpecialistPatent: {
			"patent", "intellectual property", "formulation", "chemical", "drug structure", "exclusivity",
		},
		core.SpecialistRegulatory: {
			"fda", "approval", "compliance", "safety", "adverse", "regulation", "nda", "bla", "ind",
		},
		core.SpecialistLiterature: {
			"research", "literature", "published", "journal", "peer review", "paper", "study",
		},
	}
}

// Scorer ranks candidate specialists by affinity to a piece of text. Higher
// scores indicate a better match; all-zero scores mean "no opinion".
type Scorer interface {
	Score(text string, candidates []core.Specialist) map[core.Specialist]int
}

// KeywordScorer counts case-insensitive substring occurrences of each
// candidate's keyword set. It is a pure function of its inputs.
type KeywordScorer struct {
	keywords map[core.Specialist][]string
}

// NewKeywordScorer creates a scorer over the given keyword sets, falling
// back to DefaultKeywords when nil.
func NewKeywordScorer(keywords map[core.Specialist][]string) *KeywordScorer {
	if keywords == nil {
		keywords = DefaultKeywords()
	}
	return &KeywordScorer{keywords: keywords}
}

// Score implements Scorer. Every occurrence of a keyword counts, so a query
// that repeats a term weighs it more heavily.
func (s *KeywordScorer) Score(text string, candidates []core.Specialist) map[core.Specialist]int {
	lowered := strings.ToLower(text)
	scores := make(map[core.Specialist]int, len(candidates))
	for _, candidate := range candidates {
		total := 0
		for _, kw := range s.keywords[candidate] {
			total += strings.Count(lowered, strings.ToLower(kw))
		}
		scores[candidate] = total
	}
	return scores
}
