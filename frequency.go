package airlift

import(
	"sort"
	"time"
)

// AirportHit is one airport's visit count within some trailing window.
type AirportHit struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

const kMaxAirportHits = 8

// TopAirports ranks airports by visit count (arrivals + departures both
// count) over the trailing window of `days` before `now`. Legs with no date
// epoch can't be excluded by the cutoff, so they always count; we rank
// whatever history depth the feed happened to return, with no pretence that
// `days` of data actually exists.
//
// Ties rank in first-encountered order, which for a newest-first feed means
// the more recently visited airport wins.
func TopAirports(legs []FlightLeg, days int, now time.Time) []AirportHit {
	cutoff := now.Unix() - int64(days)*86400

	counts := map[string]int{}
	order := []string{}
	for _,leg := range legs {
		if leg.DateEpoch != nil && *leg.DateEpoch < cutoff { continue }
		for _,code := range []string{leg.FromCode(), leg.ToCode()} {
			if code == "" { continue }
			if _,seen := counts[code]; !seen { order = append(order, code) }
			counts[code]++
		}
	}

	hits := []AirportHit{}
	for _,code := range order {
		hits = append(hits, AirportHit{Code:code, Count:counts[code]})
	}
	sort.Stable(hitsByCount(hits))

	if len(hits) > kMaxAirportHits { hits = hits[:kMaxAirportHits] }
	return hits
}

type hitsByCount []AirportHit
func (a hitsByCount) Len() int           { return len(a) }
func (a hitsByCount) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a hitsByCount) Less(i, j int) bool { return a[i].Count > a[j].Count }
