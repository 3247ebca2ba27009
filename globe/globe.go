package globe

// There have been several generations of live-position scraper (headless
// browser against the globe panel, opensky state vectors, now the readsb
// JSON endpoint). Callers only ever see PositionSource; strategies can be
// swapped out without anyone noticing.

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/skypies/adsb"
	"github.com/skypies/geo"

	"github.com/skypies/airlift"
)

const(
	kGlobeHost = "globe.adsbexchange.com"
	kGlobePage = "https://globe.adsbexchange.com/?icao=%s"
)

// PositionSource is the one capability the rest of the system depends on:
// fetch a current position/status sample for an airframe, within whatever
// deadline ctx carries. (nil, nil) is a legitimate answer - the aircraft
// simply isn't transmitting right now.
type PositionSource interface {
	Lookup(ctx context.Context, id adsb.IcaoId) (*Sample, error)
}

// {{{ Sample{}

// Sample is one live observation. Numeric fields are pointers: the feed
// omits most of them most of the time, and zero is a meaningful altitude.
type Sample struct {
	IcaoId        adsb.IcaoId
	Callsign      string
	Registration  string
	IcaoType      string
	TypeDesc      string
	OwnersOps     string
	Squawk        string
	Category      string
	GroundspeedKt *float64
	BaroAltitude  *float64 // feet; absent when the feed says "ground"
	GroundTrack   *float64
	TrueHeading   *float64
	MagHeading    *float64
	Mach          *float64
	MessageRate   *float64
	Position      *geo.Latlong
	SeenSec       *float64 // age of the last message of any kind
	SeenPosSec    *float64 // age of the position fix at sample time
	PosEpoch      *int64   // when the position fix happened
}

func (s Sample)GlobePageUrl() string {
	return fmt.Sprintf(kGlobePage, strings.ToLower(string(s.IcaoId)))
}

// ToADSBInfo renders the sample into the insight's stringly live-panel
// block. Absent fields stay absent.
func (s Sample)ToADSBInfo() airlift.ADSBInfo {
	hex := string(s.IcaoId)
	out := airlift.ADSBInfo{
		Callsign:      strOrNil(s.Callsign),
		Hex:           strOrNil(hex),
		Registration:  strOrNil(s.Registration),
		IcaoType:      strOrNil(s.IcaoType),
		TypeDesc:      strOrNil(s.TypeDesc),
		OwnersOps:     strOrNil(s.OwnersOps),
		Squawk:        strOrNil(s.Squawk),
		Category:      strOrNil(s.Category),
		GroundspeedKt: f2s(s.GroundspeedKt, "%.0f"),
		BaroAltitude:  f2s(s.BaroAltitude, "%.0f"),
		GroundTrack:   f2s(s.GroundTrack, "%.1f"),
		TrueHeading:   f2s(s.TrueHeading, "%.1f"),
		MagHeading:    f2s(s.MagHeading, "%.1f"),
		Mach:          f2s(s.Mach, "%.3f"),
		MessageRate:   f2s(s.MessageRate, "%.1f"),
		PosEpoch:      s.PosEpoch,
	}
	if out.Callsign == nil { out.Callsign = out.Registration }
	if s.Position != nil {
		pos := fmt.Sprintf("%.6f, %.6f", s.Position.Lat, s.Position.Long)
		out.Position = &pos
	}
	if s.SeenPosSec != nil {
		age := fmt.Sprintf("%.0fs ago", *s.SeenPosSec)
		out.LastPosAge = &age
	}
	if s.SeenSec != nil {
		age := fmt.Sprintf("%.0fs ago", *s.SeenSec)
		out.LastSeen = &age
	}
	src := "ADS-B Exchange"
	out.Source = &src
	return out
}

// }}}

// {{{ GlobeSource{}

// GlobeSource is the production strategy: the aggregator's readsb-style
// aircraft.json, filtered to one hex id.
type GlobeSource struct {
	Client *http.Client
	Prefix  string // for tests
}

func NewGlobeSource(c *http.Client) *GlobeSource {
	if c == nil {
		c = &http.Client{}
	}
	return &GlobeSource{Client: c}
}

func (gs *GlobeSource)GetAircraftUrl(id adsb.IcaoId) string {
	return fmt.Sprintf("%s%s/data/aircraft.json?icao=%s",
		gs.Prefix, kGlobeHost, strings.ToLower(string(id)))
}

func (gs *GlobeSource)Lookup(ctx context.Context, id adsb.IcaoId) (*Sample, error) {
	if string(id) == "" { return nil, nil }

	req,err := http.NewRequestWithContext(ctx, "GET", "https://"+gs.GetAircraftUrl(id), nil)
	if err != nil {
		return nil, err
	}
	resp,err := gs.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Bad status: %v", resp.Status)
	}

	body,err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return ParseAircraftJson(id, body)
}

// }}}
// {{{ ParseAircraftJson

func ParseAircraftJson(id adsb.IcaoId, body []byte) (*Sample, error) {
	feed := aircraftFeedJson{}
	if err := json.Unmarshal(body, &feed); err != nil { return nil, err }

	want := strings.ToLower(string(id))
	for _,target := range feed.Aircraft {
		if strings.ToLower(target.Hex) != want { continue }
		return target2Sample(feed.Now, target), nil
	}
	return nil, nil // not transmitting; that's fine
}

func target2Sample(now float64, t targetJson) *Sample {
	s := Sample{
		IcaoId:        adsb.IcaoId(strings.ToUpper(t.Hex)),
		Callsign:      strings.TrimSpace(t.Flight),
		Registration:  t.Registration,
		IcaoType:      t.IcaoType,
		TypeDesc:      t.Desc,
		OwnersOps:     t.OwnOp,
		Squawk:        t.Squawk,
		Category:      t.Category,
		GroundspeedKt: t.GS,
		GroundTrack:   t.Track,
		TrueHeading:   t.TrueHeading,
		MagHeading:    t.MagHeading,
		Mach:          t.Mach,
		SeenSec:       t.Seen,
		SeenPosSec:    t.SeenPos,
	}

	// alt_baro is feet, except when it's the string "ground"; any value we
	// can't coerce to a number is treated as absent, not an error
	var feet float64
	if len(t.AltBaro) > 0 && json.Unmarshal(t.AltBaro, &feet) == nil {
		s.BaroAltitude = &feet
	}

	if t.Lat != nil && t.Lon != nil {
		s.Position = &geo.Latlong{Lat: *t.Lat, Long: *t.Lon}
	}

	if now > 0 && t.SeenPos != nil {
		epoch := int64(now - *t.SeenPos)
		s.PosEpoch = &epoch
	}

	if t.Messages != nil {
		s.MessageRate = t.Messages
	}

	return &s
}

// }}}

// {{{ helpers

func strOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" { return nil }
	return &s
}

func f2s(f *float64, format string) *string {
	if f == nil { return nil }
	s := fmt.Sprintf(format, *f)
	return &s
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
