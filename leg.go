package airlift

import(
	"fmt"
	"sort"
	"time"
)

// AirportRef names one end of a leg, as reported by the history feed.
// Either field (or both) may be missing; a leg with no codes at all still
// counts as a movement, it just can't contribute to airport stats.
type AirportRef struct {
	Code *string `json:"code"`
	City *string `json:"city"`
}

func (ar *AirportRef)CodeString() string {
	if ar == nil || ar.Code == nil { return "" }
	return *ar.Code
}
func (ar *AirportRef)CityString() string {
	if ar == nil || ar.City == nil { return "" }
	return *ar.City
}

// FlightLeg is one recorded movement between two airports, as produced by the
// history feed. Everything is optional; the feed omits fields freely, and the
// analyzers must treat absent data as "no signal" rather than an error.
//
// Legs arrive newest-first, but no analyzer may rely on that beyond "as
// supplied" - anything needing chronology re-sorts by DateEpoch itself.
type FlightLeg struct {
	DateLocal  *string     `json:"date_local"`
	DateEpoch  *int64      `json:"date_epoch"`
	From       *AirportRef `json:"from"`
	To         *AirportRef `json:"to"`
	Callsign   *string     `json:"callsign"`
	FlightTime *string     `json:"flight_time"`
	STD        *string     `json:"std"`
	ATD        *string     `json:"atd"`
	STA        *string     `json:"sta"`
	StdEpoch   *int64      `json:"std_epoch"`
	AtdEpoch   *int64      `json:"atd_epoch"`
	StaEpoch   *int64      `json:"sta_epoch"`
	Status     *string     `json:"status"`
	State      *string     `json:"state"`
}

func (l FlightLeg)FromCode() string { return l.From.CodeString() }
func (l FlightLeg)ToCode() string   { return l.To.CodeString() }

func (l FlightLeg)String() string {
	when := "?"
	if l.DateEpoch != nil {
		when = time.Unix(*l.DateEpoch, 0).UTC().Format("2006/01/02")
	}
	return fmt.Sprintf("%s[%s-%s]c:%s", when, l.FromCode(), l.ToCode(), strv(l.Callsign))
}

// Yay, sorting funtime here again !
type LegsByDateEpoch []FlightLeg
func (a LegsByDateEpoch) Len() int      { return len(a) }
func (a LegsByDateEpoch) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a LegsByDateEpoch) Less(i, j int) bool {
	return epochv(a[i].DateEpoch) < epochv(a[j].DateEpoch)
}

// SortLegsByDateEpoch returns the epoch-bearing legs in ascending date order;
// legs with no epoch are dropped, since they can't be placed on a timeline.
// The sort is stable, so same-epoch legs keep their as-supplied order.
func SortLegsByDateEpoch(legs []FlightLeg) []FlightLeg {
	out := []FlightLeg{}
	for _,leg := range legs {
		if leg.DateEpoch != nil { out = append(out, leg) }
	}
	sort.Stable(LegsByDateEpoch(out))
	return out
}

func strv(s *string) string {
	if s == nil { return "" }
	return *s
}
func epochv(e *int64) int64 {
	if e == nil { return 0 }
	return *e
}
