package knowledge

import (
	"strings"

	"github.com/hupe1980/pharmamesh/core"
)

// InMemorySource is a fixed, process-local Source standing in for real
// research databases. Lookups match the query case-insensitively against
// record identifiers, titles and drug names. The data is read-only and safe
// for concurrent use.
type InMemorySource struct {
	trials    []Trial
	patents   []Patent
	approvals []Approval
	articles  []Article
}

// NewInMemorySource constructs a source preloaded with the demo dataset.
func NewInMemorySource() *InMemorySource {
	return &InMemorySource{
		trials: []Trial{
			{
				NCT: "NCT04567890", Title: "Phase 3 Clinical Trial for Cancer Drug XYZ",
				Drug: "Cancer Drug XYZ", Phase: "Phase 3", Status: "Recruiting", Enrollment: 500,
				Outcome: "Overall Survival", EfficacyRate: "82%",
				Safety: "Well tolerated, mild side effects", Sponsor: "PharmaCorp Inc",
			},
			{
				NCT: "NCT04123456", Title: "Phase 2 Trial for Diabetes Treatment DTZ-100",
				Drug: "DTZ-100", Phase: "Phase 2", Status: "Active", Enrollment: 300,
				Outcome: "HbA1c Reduction", EfficacyRate: "78%",
				Safety: "Generally safe with acceptable tolerability", Sponsor: "EndoPharm LLC",
			},
			{
				NCT: "NCT03987654", Title: "Phase 1 Safety Study for Immunotherapy IMT-50",
				Drug: "IMT-50", Phase: "Phase 1", Status: "Enrolling by invitation", Enrollment: 50,
				Outcome: "Safety and Tolerability", EfficacyRate: "Early data promising",
				Safety: "Dose escalation ongoing", Sponsor: "ImmunoGen Corp",
			},
		},
		patents: []Patent{
			{
				Number: "US10234567", Title: "Novel Cancer Drug Formulation XYZ",
				Drug: "Cancer Drug XYZ", FilingDate: "2018-05-15", Expiration: "2038-05-15",
				Status: "Active", Assignee: "PharmaCorp Inc",
				Abstract:  "A novel formulation of cancer-fighting compound with improved bioavailability",
				KeyClaims: []string{"Crystalline form of compound A", "Dosage between 50-200mg", "Method of treatment for NSCLC"},
			},
			{
				Number: "US10567890", Title: "Diabetes Treatment Method DTZ-100",
				Drug: "DTZ-100", FilingDate: "2017-08-20", Expiration: "2037-08-20",
				Status: "Active", Assignee: "EndoPharm LLC",
				Abstract:  "Method for treating Type 2 diabetes with DTZ-100 compound",
				KeyClaims: []string{"DTZ-100 compound structure", "Oral dosage form", "Daily dosing 100-500mg"},
			},
			{
				Number: "US9876543", Title: "Immunotherapy Agent IMT-50",
				Drug: "IMT-50", FilingDate: "2016-02-10", Expiration: "2036-02-10",
				Status: "Active", Assignee: "ImmunoGen Corp",
				Abstract:  "Monoclonal antibody-based immunotherapy for advanced cancers",
				KeyClaims: []string{"IMT-50 antibody structure", "Intravenous administration", "Treatment of melanoma and lung cancer"},
			},
		},
		approvals: []Approval{
			{
				Application: "NDA-207524", Drug: "Cancer Drug XYZ",
				Submitted: "2020-06-15", Approved: "2021-03-22", Status: "Approved",
				ApprovalType: "Accelerated Approval",
				Indication:   "Treatment of advanced non-small cell lung cancer",
				Manufacturer: "PharmaCorp Inc",
				Commitments:  "Phase 4 trial to study long-term efficacy",
			},
			{
				Application: "NDA-207892", Drug: "DTZ-100",
				Submitted: "2019-11-20", Approved: "2020-09-14", Status: "Approved",
				ApprovalType: "Standard Review",
				Indication:   "Treatment of Type 2 Diabetes",
				Manufacturer: "EndoPharm LLC",
				Commitments:  "Monitor for pancreatitis in post-marketing surveillance",
			},
		},
		articles: []Article{
			{
				DOI: "10.1038/s41586-021-03570-6", Title: "Novel cancer drug demonstrates superior efficacy in Phase 3 trial",
				Authors: []string{"Smith, J.", "Johnson, S.", "Williams, R."},
				Journal: "Nature Medicine", Year: "2021", Design: "Randomized Controlled Trial",
				Results:  "Median OS: 16.2 months vs 11.1 months (p<0.001)",
				Keywords: []string{"cancer", "drug efficacy", "clinical trial", "NSCLC"},
			},
			{
				DOI: "10.1056/NEJMoa1906239", Title: "DTZ-100: A novel DPP-4 inhibitor for Type 2 diabetes management",
				Authors: []string{"Davis, E.", "Chen, M.", "Wong, L."},
				Journal: "New England Journal of Medicine", Year: "2020", Design: "Double-blind Placebo-controlled Trial",
				Results:  "Mean HbA1c reduction: 1.8% vs 0.3% placebo (p<0.001)",
				Keywords: []string{"diabetes", "DPP-4 inhibitor", "HbA1c", "clinical trial"},
			},
			{
				DOI: "10.1200/JCO.20.01651", Title: "IMT-50 monoclonal antibody improves survival in advanced melanoma",
				Authors: []string{"Chen, M.", "Wong, L.", "Martinez, D."},
				Journal: "Journal of Clinical Oncology", Year: "2021", Design: "Open-label Phase 2 Trial",
				Results:  "12-month survival: 71% vs 58% historical control",
				Keywords: []string{"melanoma", "immunotherapy", "monoclonal antibody"},
			},
		},
	}
}

// Lookup implements Source. An unknown domain (including the synthesizer)
// yields ErrNotFound, as does a query matching no records.
func (s *InMemorySource) Lookup(domain core.Specialist, query string) ([]Record, error) {
	q := strings.ToLower(query)

	var out []Record
	switch domain {
	case core.SpecialistClinical:
		for _, t := range s.trials {
			if matches(q, t.NCT, t.Title, t.Drug, t.Phase) {
				out = append(out, t)
			}
		}
	case core.SpecialistPatent:
		for _, p := range s.patents {
			if matches(q, p.Number, p.Title, p.Drug) {
				out = append(out, p)
			}
		}
	case core.SpecialistRegulatory:
		for _, a := range s.approvals {
			if matches(q, a.Application, a.Drug, a.Indication) {
				out = append(out, a)
			}
		}
	case core.SpecialistLiterature:
		for _, a := range s.articles {
			if matches(q, a.DOI, a.Title, strings.Join(a.Keywords, " ")) {
				out = append(out, a)
			}
		}
	}

	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// matches reports whether any record field appears in the query or the query
// appears in a field. Matching in both directions lets short identifiers
// ("nct04123456") and long free-text queries both hit.
func matches(query string, fields ...string) bool {
	for _, f := range fields {
		lf := strings.ToLower(f)
		if lf == "" {
			continue
		}
		if strings.Contains(query, lf) || strings.Contains(lf, query) {
			return true
		}
	}
	return false
}
