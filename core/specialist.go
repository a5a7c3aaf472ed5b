package core

import (
	"fmt"
	"strings"
)

// Specialist identifies a domain-bound responder. The zero value is not a
// valid specialist.
type Specialist string

const (
	// SpecialistClinical covers clinical trial data, study designs and
	// patient outcomes.
	SpecialistClinical Specialist = "clinical"
	// SpecialistPatent covers patent filings, intellectual property and
	// drug formulations.
	SpecialistPatent Specialist = "patent"
	// SpecialistRegulatory covers FDA approval pathways, compliance and
	// drug safety.
	SpecialistRegulatory Specialist = "regulatory"
	// SpecialistLiterature covers published peer-reviewed research and
	// scientific literature.
	SpecialistLiterature Specialist = "literature"
	// SpecialistSynthesizer is the reserved orchestrator-level role that
	// consolidates multiple specialist answers into one. It is never a
	// routing target.
	SpecialistSynthesizer Specialist = "synthesizer"
)

// Specialists returns the routable (non-synthesizer) specialists in their
// declared order. The order is significant: the router breaks scoring ties
// in favor of the earliest entry.
func Specialists() []Specialist {
	return []Specialist{
		SpecialistClinical,
		SpecialistPatent,
		SpecialistRegulatory,
		SpecialistLiterature,
	}
}

// Description returns a short human-readable summary of the specialist's
// domain, used when asking a model to classify a query.
func (s Specialist) Description() string {
	switch s {
	case SpecialistClinical:
		return "clinical trial data, patient outcomes, study designs"
	case SpecialistPatent:
		return "patent information, intellectual property, drug formulations"
	case SpecialistRegulatory:
		return "FDA approval, regulatory compliance, drug safety"
	case SpecialistLiterature:
		return "published research, scientific literature, peer-reviewed studies"
	case SpecialistSynthesizer:
		return "consolidation of multiple specialist answers"
	default:
		return string(s)
	}
}

// String implements fmt.Stringer.
func (s Specialist) String() string { return string(s) }

// ParseSpecialist maps free text onto a known specialist identifier. It
// accepts the identifier itself modulo case and surrounding whitespace.
func ParseSpecialist(text string) (Specialist, error) {
	switch Specialist(strings.ToLower(strings.TrimSpace(text))) {
	case SpecialistClinical:
		return SpecialistClinical, nil
	case SpecialistPatent:
		return SpecialistPatent, nil
	case SpecialistRegulatory:
		return SpecialistRegulatory, nil
	case SpecialistLiterature:
		return SpecialistLiterature, nil
	case SpecialistSynthesizer:
		return SpecialistSynthesizer, nil
	default:
		return "", fmt.Errorf("unknown specialist %q", text)
	}
}
