package knowledge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/pharmamesh/core"
)

var (
	// ErrNotFound is returned when a lookup matches no records for the
	// given domain and query.
	ErrNotFound = errors.New("no records found")
)

// Record is a single knowledge entry renderable for model consumption.
type Record interface {
	Format() string
}

// Source looks up grounding facts for a specialist domain.
type Source interface {
	Lookup(domain core.Specialist, query string) ([]Record, error)
}

// Trial is one clinical trial record.
type Trial struct {
	NCT          string
	Title        string
	Drug         string
	Phase        string
	Status       string
	Enrollment   int
	Outcome      string
	EfficacyRate string
	Safety       string
	Sponsor      string
}

// Format implements Record.
func (t Trial) Format() string {
	return fmt.Sprintf(
		"Trial %s: %s\n  Drug: %s | %s | Status: %s | Enrollment: %d\n  Primary outcome: %s | Efficacy: %s\n  Safety: %s | Sponsor: %s",
		t.NCT, t.Title, t.Drug, t.Phase, t.Status, t.Enrollment, t.Outcome, t.EfficacyRate, t.Safety, t.Sponsor,
	)
}

// Patent is one patent record.
type Patent struct {
	Number     string
	Title      string
	Drug       string
	FilingDate string
	Expiration string
	Status     string
	Assignee   string
	Abstract   string
	KeyClaims  []string
}

// Format implements Record.
func (p Patent) Format() string {
	return fmt.Sprintf(
		"Patent %s: %s\n  Drug: %s | Filed: %s | Expires: %s | Status: %s | Assignee: %s\n  Abstract: %s\n  Key claims: %s",
		p.Number, p.Title, p.Drug, p.FilingDate, p.Expiration, p.Status, p.Assignee, p.Abstract, strings.Join(p.KeyClaims, "; "),
	)
}

// Approval is one regulatory submission/approval record.
type Approval struct {
	Application  string
	Drug         string
	Submitted    string
	Approved     string
	Status       string
	ApprovalType string
	Indication   string
	Manufacturer string
	Commitments  string
}

// Format implements Record.
func (a Approval) Format() string {
	return fmt.Sprintf(
		"Application %s (%s)\n  Drug: %s | Submitted: %s | Approved: %s | Type: %s\n  Indication: %s | Manufacturer: %s\n  Post-marketing: %s",
		a.Application, a.Status, a.Drug, a.Submitted, a.Approved, a.ApprovalType, a.Indication, a.Manufacturer, a.Commitments,
	)
}

// Article is one peer-reviewed journal article record.
type Article struct {
	DOI      string
	Title    string
	Authors  []string
	Journal  string
	Year     string
	Design   string
	Results  string
	Keywords []string
}

// Format implements Record.
func (a Article) Format() string {
	return fmt.Sprintf(
		"Article %s: %s\n  Authors: %s | %s (%s)\n  Design: %s | Results: %s\n  Keywords: %s",
		a.DOI, a.Title, strings.Join(a.Authors, ", "), a.Journal, a.Year, a.Design, a.Results, strings.Join(a.Keywords, ", "),
	)
}

// FormatRecords renders a record list as a newline-separated block for
// inclusion in an instruction context.
func FormatRecords(records []Record) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, r.Format())
	}
	return strings.Join(parts, "\n\n")
}
