package fa

// go test -v github.com/skypies/airlift/fa

import "testing"

var kTestBody = []byte(`{
  "tail_number": "N103DY",
  "summary": {
    "summary": "2019 GULFSTREAM G600  Fixed wing multi engine  (19 seats / 2 engines)",
    "owner": "WILMINGTON TRUST CO TRUSTEE",
    "mode_s_code": "52460437 / A8C31F",
    "serial_number": "73021",
    "airworthiness_class": "Standard/Transport",
    "engine": "P&W CANADA PW815GA",
    "fractional_owner": "NO"
  },
  "details": {
    "status": "Valid",
    "certificate_issue_date": "2019-11-07",
    "airworthiness_date": "2019-10-21",
    "expiration": "2026-11-30",
    "registry_source": "FAA",
    "registry_source_url": "https://registry.faa.gov/N103DY"
  }
}`)

func TestParseRegistration(t *testing.T) {
	reg,err := ParseRegistration("N103DY", kTestBody)
	if err != nil { t.Fatalf("ParseRegistration: %v", err) }

	if reg.ModeSCode != "52460437 / A8C31F" {
		t.Errorf("mode-s code: got %q", reg.ModeSCode)
	}
	if HexFromModeS(reg.ModeSCode) != "A8C31F" {
		t.Errorf("hex: got %q", HexFromModeS(reg.ModeSCode))
	}

	info := reg.Info
	if info.Owner == nil || *info.Owner != "WILMINGTON TRUST CO TRUSTEE" {
		t.Errorf("owner: got %v", info.Owner)
	}
	if info.ModelYear == nil || *info.ModelYear != "2019 GULFSTREAM G600" {
		t.Errorf("model year: got %v", info.ModelYear)
	}
	if info.Seats == nil || *info.Seats != "19" {
		t.Errorf("seats: got %v", info.Seats)
	}
	if info.EnginesCount == nil || *info.EnginesCount != "2" {
		t.Errorf("engines: got %v", info.EnginesCount)
	}
	if info.FractionalOwner == nil || *info.FractionalOwner != false {
		t.Errorf("fractional: got %v", info.FractionalOwner)
	}
	if info.SourceURL == nil || *info.SourceURL != "https://registry.faa.gov/N103DY" {
		t.Errorf("source url: got %v", info.SourceURL)
	}
}

func TestParseRegistrationSparse(t *testing.T) {
	reg,err := ParseRegistration("N1", []byte(`{"summary":{},"details":{}}`))
	if err != nil { t.Fatalf("ParseRegistration: %v", err) }

	info := reg.Info
	if info.Owner != nil || info.Seats != nil || info.FractionalOwner != nil {
		t.Errorf("expected absent fields, got %+v", info)
	}
	// Falls back to the registration page when the registry gives no link
	if info.SourceURL == nil || *info.SourceURL != RegistrationPageUrl("N1") {
		t.Errorf("source url fallback: got %v", info.SourceURL)
	}
}

var hexTests = []struct{ Raw, Hex string }{
	{"52460437 / A8C31F", "A8C31F"},
	{"A8C31F",            "A8C31F"},
	{"",                  ""},
}

func TestHexFromModeS(t *testing.T) {
	for _,test := range hexTests {
		if got := HexFromModeS(test.Raw); got != test.Hex {
			t.Errorf("'%s' - expected %q, got %q", test.Raw, test.Hex, got)
		}
	}
}
