package fr24

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"encoding/json"

	"github.com/skypies/airlift"
)

const(
	kURLHistoryList = "api.flightradar24.com/common/v1/flight/list.json"
	kURLAircraftPage = "www.flightradar24.com/data/aircraft/"
)

var ErrNotFound = fmt.Errorf("Not found anywhere")
var ErrBadInput = fmt.Errorf("Not enough data to work with")

// {{{ Fr24{}

type Fr24 struct {
	Client *http.Client
	Prefix  string // for tests, to point at a local server
}

func NewFr24(c *http.Client) *Fr24 {
	if c == nil {
		c = &http.Client{}
	}
	return &Fr24{Client: c}
}

// }}}
// {{{ Get*Url

func (fr *Fr24) GetHistoryUrl(reg string) string {
	return fmt.Sprintf("%s%s?query=%s&fetchBy=reg&limit=100", fr.Prefix, kURLHistoryList, reg)
}

// The human-facing page; goes in the insight's links block, never fetched.
func AircraftPageUrl(reg string) string {
	return "https://" + kURLAircraftPage + reg
}

// }}}

// {{{ fr24.url2{resp,body}

func (fr *Fr24) url2resp(ctx context.Context, url string) (resp *http.Response, err error) {
	req,err := http.NewRequestWithContext(ctx, "GET", "https://"+url, nil)
	if err != nil {
		return nil, err
	}
	if resp,err = fr.Client.Do(req); err != nil {
		return
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("Bad status: %v", resp.Status)
	}
	return
}

func (fr *Fr24) Url2Body(ctx context.Context, url string) (body []byte, err error) {
	if resp,err := fr.url2resp(ctx, url); err != nil {
		return nil, err
	} else {
		defer resp.Body.Close()
		return ioutil.ReadAll(resp.Body)
	}
}

// }}}

// History is everything we pull about one airframe in a single lookup: the
// profile block, the leg list (newest-first, as fr24 serves it - downstream
// analyzers re-sort where they need chronology), and a page URL for humans.
type History struct {
	Profile airlift.FR24Info
	Legs    []airlift.FlightLeg
}

// {{{ db.LookupHistory

// LookupHistory is the heavyweight lookup: given a registration, fetch the
// aircraft profile and every leg fr24 still remembers for it.
func (fr *Fr24)LookupHistory(ctx context.Context, reg string) (*History, error) {
	if reg == "" { return nil, ErrBadInput }

	if body,err := fr.Url2Body(ctx, fr.GetHistoryUrl(reg)); err != nil {
		return nil, err
	} else {
		return fr.ParseHistory(reg, body)
	}
}

// }}}
// {{{ db.ParseHistory

func (fr *Fr24)ParseHistory(reg string, body []byte) (*History, error) {
	resp := HistoryListResponse{}
	if err := json.Unmarshal(body, &resp); err != nil { return nil, err }

	h := History{Profile: profile2Info(reg, resp.Result.Response.AircraftInfo)}
	for _,row := range resp.Result.Response.Data {
		h.Legs = append(h.Legs, row2Leg(row))
	}
	return &h, nil
}

// }}}
// {{{ profile2Info

func profile2Info(reg string, info *AircraftInfo) airlift.FR24Info {
	url := AircraftPageUrl(reg)
	out := airlift.FR24Info{SourceURL: &url}
	if info == nil { return out }

	out.Model = strOrNil(info.Model.Text)
	out.TypeCode = strOrNil(info.Model.Code)
	out.Airline = strOrNil(info.Airline.Name)
	out.AirlineCode = strOrNil(info.Airline.Code.Icao)
	out.Operator = strOrNil(info.Operator.Name)
	out.OperatorCode = strOrNil(info.Operator.Code.Icao)
	if out.Operator == nil {
		// Private airframes often list only an airline; treat it as the operator code-wise
		out.OperatorCode = out.AirlineCode
	}
	out.ModeS = strOrNil(info.Hex)
	out.SerialMSN = strOrNil(info.Msn)
	return out
}

// }}}
// {{{ row2Leg

// Epochs of zero mean "fr24 doesn't know"; they become absent fields, so the
// analyzers can't mistake them for 1970.
func row2Leg(row HistoryRow) airlift.FlightLeg {
	leg := airlift.FlightLeg{
		From:     airport2Ref(row.Airport.Origin),
		To:       airport2Ref(row.Airport.Destination),
		Callsign: strOrNil(row.Identification.Callsign),
		Status:   strOrNil(row.Status.Text),
		StdEpoch: epochOrNil(row.Time.Scheduled.Departure),
		AtdEpoch: epochOrNil(row.Time.Real.Departure),
		StaEpoch: epochOrNil(row.Time.Scheduled.Arrival),
	}

	// The leg's date is its scheduled departure; unscheduled movements fall
	// back to whenever the wheels actually left.
	leg.DateEpoch = leg.StdEpoch
	if leg.DateEpoch == nil { leg.DateEpoch = leg.AtdEpoch }
	if leg.DateEpoch != nil {
		s := time.Unix(*leg.DateEpoch, 0).UTC().Format("02 Jan 2006")
		leg.DateLocal = &s
	}

	leg.STD = epoch2HHMM(leg.StdEpoch)
	leg.ATD = epoch2HHMM(leg.AtdEpoch)
	leg.STA = epoch2HHMM(leg.StaEpoch)

	if dep,arr := row.Time.Real.Departure, row.Time.Real.Arrival; dep > 0 && arr > dep {
		dur := time.Duration(arr-dep) * time.Second
		s := fmt.Sprintf("%d:%02d", int(dur.Hours()), int(dur.Minutes())%60)
		leg.FlightTime = &s
	}

	return leg
}

func airport2Ref(ap *HistoryAirport) *airlift.AirportRef {
	if ap == nil { return nil }
	code := ap.Code.Iata
	if code == "" { code = ap.Code.Icao }
	return &airlift.AirportRef{
		Code: strOrNil(code),
		City: strOrNil(ap.Position.Region.City),
	}
}

// }}}

// {{{ helpers

func strOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" { return nil }
	return &s
}

func epochOrNil(e int64) *int64 {
	if e <= 0 { return nil }
	return &e
}

func epoch2HHMM(e *int64) *string {
	if e == nil { return nil }
	s := time.Unix(*e, 0).UTC().Format("15:04")
	return &s
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
