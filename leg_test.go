package airlift

// go test -v github.com/skypies/airlift

import "testing"

// Shared builders for the _test files in this package.
func sp(s string) *string { return &s }
func ep(e int64) *int64   { return &e }
func fp(f float64) *float64 { return &f }
func bp(b bool) *bool     { return &b }

func ref(code string) *AirportRef {
	if code == "" { return &AirportRef{} }
	return &AirportRef{Code: sp(code)}
}

func leg(epoch int64, from, to string) FlightLeg {
	l := FlightLeg{From: ref(from), To: ref(to)}
	if epoch != 0 { l.DateEpoch = ep(epoch) }
	return l
}

func TestSortLegsByDateEpoch(t *testing.T) {
	legs := []FlightLeg{
		leg(300, "SJC", "TEB"),
		leg(100, "TEB", "SJC"),
		{From: ref("OAK"), To: ref("SJC")}, // no epoch; should be dropped
		leg(200, "SJC", "OAK"),
	}

	sorted := SortLegsByDateEpoch(legs)
	if len(sorted) != 3 {
		t.Fatalf("expected 3 epoch-bearing legs, got %d", len(sorted))
	}
	for i := 1; i < len(sorted); i++ {
		if *sorted[i-1].DateEpoch > *sorted[i].DateEpoch {
			t.Errorf("legs out of order at %d: %d > %d", i,
				*sorted[i-1].DateEpoch, *sorted[i].DateEpoch)
		}
	}

	// Input order untouched
	if legs[0].FromCode() != "SJC" || *legs[0].DateEpoch != 300 {
		t.Errorf("input slice was mutated: %v", legs[0])
	}
}
