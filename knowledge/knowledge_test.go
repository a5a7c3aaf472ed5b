package knowledge

import (
	"strings"
	"testing"

	"github.com/hupe1980/pharmamesh/core"
	"github.com/hupe1980/pharmamesh/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySource_LookupByDrugName(t *testing.T) {
	src := NewInMemorySource()

	records, err := src.Lookup(core.SpecialistClinical, "efficacy data for DTZ-100")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Contains(t, records[0].Format(), "NCT04123456")
}

func TestInMemorySource_LookupByIdentifier(t *testing.T) {
	src := NewInMemorySource()

	records, err := src.Lookup(core.SpecialistPatent, "status of US10234567")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Contains(t, records[0].Format(), "Novel Cancer Drug Formulation XYZ")
}

func TestInMemorySource_LookupNotFound(t *testing.T) {
	src := NewInMemorySource()

	_, err := src.Lookup(core.SpecialistClinical, "nonexistent compound QQQ-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemorySource_SynthesizerHasNoData(t *testing.T) {
	src := NewInMemorySource()

	_, err := src.Lookup(core.SpecialistSynthesizer, "DTZ-100")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnrichContexts_AddsFactsToMatchingDomains(t *testing.T) {
	base := prompts.Contexts()

	enriched, err := EnrichContexts(base, NewInMemorySource(), "clinical results for DTZ-100")
	require.NoError(t, err)

	clinical := enriched[core.SpecialistClinical]
	assert.True(t, strings.HasPrefix(clinical, base[core.SpecialistClinical]))
	assert.Contains(t, clinical, "NCT04123456")

	// Synthesizer context is never enriched.
	assert.Equal(t, base[core.SpecialistSynthesizer], enriched[core.SpecialistSynthesizer])
}

func TestEnrichContexts_LeavesBaseUntouched(t *testing.T) {
	base := prompts.Contexts()
	want := base[core.SpecialistClinical]

	_, err := EnrichContexts(base, NewInMemorySource(), "DTZ-100")
	require.NoError(t, err)

	assert.Equal(t, want, base[core.SpecialistClinical])
}

func TestEnrichContexts_NoMatchesKeepsContexts(t *testing.T) {
	base := prompts.Contexts()

	enriched, err := EnrichContexts(base, NewInMemorySource(), "a compound nobody has heard of")
	require.NoError(t, err)

	assert.Equal(t, base, enriched)
}

func TestFormatRecords(t *testing.T) {
	src := NewInMemorySource()

	records, err := src.Lookup(core.SpecialistLiterature, "melanoma")
	require.NoError(t, err)

	formatted := FormatRecords(records)
	assert.Contains(t, formatted, "IMT-50 monoclonal antibody")
}
