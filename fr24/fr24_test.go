package fr24

// go test -v github.com/skypies/airlift/fr24

import "testing"

var kTestBody = []byte(`{
  "result": {
    "request": {"query": "N605FX", "fetchBy": "reg"},
    "response": {
      "aircraftInfo": {
        "model": {"code": "C750", "text": "Cessna Citation X"},
        "registration": "N605FX",
        "hex": "A7DA65",
        "msn": "750-0123",
        "airline": {"name": "Flexjet", "code": {"iata": "", "icao": "LXJ"}},
        "operator": {"name": "Flexjet", "code": {"iata": "", "icao": "LXJ"}}
      },
      "data": [
        {
          "identification": {"id": "2f1a9c4d", "number": {"default": ""}, "callsign": "LXJ605"},
          "status": {"text": "Landed 14:21"},
          "aircraft": {"registration": "N605FX"},
          "airport": {
            "origin": {"code": {"iata": "SJC", "icao": "KSJC"},
                       "position": {"region": {"city": "San Jose"}}},
            "destination": {"code": {"iata": "TEB", "icao": "KTEB"},
                            "position": {"region": {"city": "Teterboro"}}}
          },
          "time": {
            "scheduled": {"departure": 1734000000, "arrival": 1734018000},
            "real": {"departure": 1734000600, "arrival": 1734017700},
            "estimated": {"departure": 0, "arrival": 0}
          }
        },
        {
          "identification": {"id": "2f1a9b00", "number": {"default": ""}, "callsign": ""},
          "status": {"text": ""},
          "aircraft": {"registration": "N605FX"},
          "airport": {"origin": null, "destination": null},
          "time": {
            "scheduled": {"departure": 0, "arrival": 0},
            "real": {"departure": 0, "arrival": 0},
            "estimated": {"departure": 0, "arrival": 0}
          }
        }
      ]
    }
  }
}`)

func TestParseHistory(t *testing.T) {
	fr := NewFr24(nil)

	h,err := fr.ParseHistory("N605FX", kTestBody)
	if err != nil { t.Fatalf("ParseHistory: %v", err) }

	p := h.Profile
	if p.Model == nil || *p.Model != "Cessna Citation X" {
		t.Errorf("model: got %v", p.Model)
	}
	if p.ModeS == nil || *p.ModeS != "A7DA65" {
		t.Errorf("mode-s: got %v", p.ModeS)
	}
	if p.OperatorCode == nil || *p.OperatorCode != "LXJ" {
		t.Errorf("operator code: got %v", p.OperatorCode)
	}
	if p.SourceURL == nil || *p.SourceURL != "https://www.flightradar24.com/data/aircraft/N605FX" {
		t.Errorf("source url: got %v", p.SourceURL)
	}

	if len(h.Legs) != 2 { t.Fatalf("expected 2 legs, got %d", len(h.Legs)) }

	leg := h.Legs[0]
	if leg.FromCode() != "SJC" || leg.ToCode() != "TEB" {
		t.Errorf("route: got %s-%s", leg.FromCode(), leg.ToCode())
	}
	if leg.To.CityString() != "Teterboro" {
		t.Errorf("city: got %q", leg.To.CityString())
	}
	if leg.DateEpoch == nil || *leg.DateEpoch != 1734000000 {
		t.Errorf("date epoch: got %v", leg.DateEpoch)
	}
	if leg.StaEpoch == nil || *leg.StaEpoch != 1734018000 {
		t.Errorf("sta epoch: got %v", leg.StaEpoch)
	}
	if leg.AtdEpoch == nil || *leg.AtdEpoch != 1734000600 {
		t.Errorf("atd epoch: got %v", leg.AtdEpoch)
	}
	if leg.Status == nil || *leg.Status != "Landed 14:21" {
		t.Errorf("status: got %v", leg.Status)
	}
	if leg.FlightTime == nil || *leg.FlightTime != "4:45" {
		t.Errorf("flight time: got %v", leg.FlightTime)
	}

	// The empty row: every zero epoch must come through as absent
	blank := h.Legs[1]
	if blank.DateEpoch != nil || blank.StaEpoch != nil || blank.AtdEpoch != nil {
		t.Errorf("zero epochs should be absent, got %v", blank)
	}
	if blank.From != nil || blank.To != nil {
		t.Errorf("null airports should be absent, got %v", blank)
	}
}

func TestParseHistoryGarbage(t *testing.T) {
	fr := NewFr24(nil)
	if _,err := fr.ParseHistory("N1", []byte("not json")); err == nil {
		t.Errorf("expected a parse error")
	}
}
