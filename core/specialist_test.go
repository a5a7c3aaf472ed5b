package core

import "testing"

func TestSpecialists_DeclaredOrder(t *testing.T) {
	want := []Specialist{SpecialistClinical, SpecialistPatent, SpecialistRegulatory, SpecialistLiterature}
	got := Specialists()

	if len(got) != len(want) {
		t.Fatalf("expected %d specialists, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("declared order changed: expected %v, got %v", want, got)
		}
	}
}

func TestParseSpecialist(t *testing.T) {
	cases := []struct {
		in      string
		want    Specialist
		wantErr bool
	}{
		{"clinical", SpecialistClinical, false},
		{" Patent ", SpecialistPatent, false},
		{"REGULATORY", SpecialistRegulatory, false},
		{"literature", SpecialistLiterature, false},
		{"synthesizer", SpecialistSynthesizer, false},
		{"astrology", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseSpecialist(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseSpecialist(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSpecialist(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSpecialist(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
