package globe

import (
	"testing"

	"github.com/skypies/adsb"
)

var kTestFeed = `{
  "now": 1734018100.5,
  "messages": 12345678,
  "aircraft": [
    {
      "hex": "a0b1c2",
      "flight": "LXJ605  ",
      "r": "N605FX",
      "t": "E55P",
      "desc": "EMBRAER Phenom 300",
      "ownOp": "FLEXJET LLC",
      "alt_baro": 4300,
      "gs": 182.4,
      "track": 274.9,
      "squawk": "4621",
      "category": "A2",
      "lat": 40.741900,
      "lon": -74.174500,
      "messages": 4821,
      "seen": 0.4,
      "seen_pos": 2.5
    },
    {
      "hex": "abc123",
      "flight": "GROUNDY",
      "r": "N103DY",
      "t": "GLF6",
      "alt_baro": "ground",
      "seen": 12.0
    }
  ]
}`

func TestParseAircraftJson(t *testing.T) {
	s,err := ParseAircraftJson("A0B1C2", []byte(kTestFeed))
	if err != nil {
		t.Fatalf("ParseAircraftJson: %v", err)
	} else if s == nil {
		t.Fatal("expected a sample for A0B1C2")
	}

	if s.IcaoId != adsb.IcaoId("A0B1C2") { t.Errorf("IcaoId: %q", s.IcaoId) }
	if s.Callsign != "LXJ605" { t.Errorf("Callsign not trimmed: %q", s.Callsign) }
	if s.Registration != "N605FX" { t.Errorf("Registration: %q", s.Registration) }
	if s.OwnersOps != "FLEXJET LLC" { t.Errorf("OwnersOps: %q", s.OwnersOps) }
	if s.BaroAltitude == nil || *s.BaroAltitude != 4300 {
		t.Errorf("BaroAltitude: %v", s.BaroAltitude)
	}
	if s.Position == nil {
		t.Fatal("no position")
	} else if s.Position.Lat != 40.7419 || s.Position.Long != -74.1745 {
		t.Errorf("Position: %v", *s.Position)
	}

	// 1734018100.5 - 2.5 == 1734018098
	if s.PosEpoch == nil || *s.PosEpoch != 1734018098 {
		t.Errorf("PosEpoch: %v", s.PosEpoch)
	}
}

func TestParseAircraftJsonGround(t *testing.T) {
	s,err := ParseAircraftJson("abc123", []byte(kTestFeed))
	if err != nil || s == nil {
		t.Fatalf("lookup by lowercase hex: %v, %v", s, err)
	}

	// "ground" doesn't coerce to a number, so the altitude is simply absent
	if s.BaroAltitude != nil { t.Errorf("BaroAltitude: %v", *s.BaroAltitude) }
	if s.Position != nil { t.Errorf("Position: %v", *s.Position) }
	if s.PosEpoch != nil { t.Errorf("PosEpoch: %v", *s.PosEpoch) }
}

func TestParseAircraftJsonMiss(t *testing.T) {
	s,err := ParseAircraftJson("DEAD99", []byte(kTestFeed))
	if err != nil {
		t.Fatalf("ParseAircraftJson: %v", err)
	} else if s != nil {
		t.Errorf("expected no sample, got %v", s)
	}

	if _,err := ParseAircraftJson("DEAD99", []byte("this is not json")); err == nil {
		t.Errorf("expected a parse error")
	}
}

func TestToADSBInfo(t *testing.T) {
	s,_ := ParseAircraftJson("A0B1C2", []byte(kTestFeed))
	info := s.ToADSBInfo()

	if info.Callsign == nil || *info.Callsign != "LXJ605" {
		t.Errorf("Callsign: %v", info.Callsign)
	}
	if info.GroundspeedKt == nil || *info.GroundspeedKt != "182" {
		t.Errorf("GroundspeedKt: %v", info.GroundspeedKt)
	}
	if info.Position == nil || *info.Position != "40.741900, -74.174500" {
		t.Errorf("Position: %v", info.Position)
	}
	if info.Mach != nil { t.Errorf("Mach should be absent: %v", *info.Mach) }
	if info.PosEpoch == nil || *info.PosEpoch != 1734018098 {
		t.Errorf("PosEpoch: %v", info.PosEpoch)
	}
	if info.Source == nil || *info.Source != "ADS-B Exchange" {
		t.Errorf("Source: %v", info.Source)
	}
}

func TestGlobePageUrl(t *testing.T) {
	s := Sample{IcaoId: "A0B1C2"}
	if got := s.GlobePageUrl(); got != "https://globe.adsbexchange.com/?icao=a0b1c2" {
		t.Errorf("GlobePageUrl: %q", got)
	}
}
