package airlift

import(
	"math"
	"sort"
)

// OperatingBase is the inferred home base: the most-visited airport over the
// whole history, with confidence = its share of all visits. Both fields are
// nil when no leg carried an airport code.
type OperatingBase struct {
	Code       *string  `json:"code"`
	Confidence *float64 `json:"confidence"`
}

// OvernightStat aggregates the ground-time evidence for one airport.
// Overnights counts stays of at least eight hours; AvgGroundHours averages
// over every measured stay there, not just the overnight ones.
type OvernightStat struct {
	Airport        string  `json:"airport"`
	Overnights     int     `json:"overnights"`
	AvgGroundHours float64 `json:"avg_ground_hours"`
}

const(
	kOvernightThresholdSec = 8 * 3600
	kMaxOvernightStats     = 5
)

// LikelyBaseAndOvernights runs both whole-history analyses in one pass over
// the leg list.
//
// Base inference needs no timestamps: count visits per airport code across
// every leg, take the max. First airport to reach the max count wins ties,
// so a newest-first feed favors the more recently seen airport.
//
// Ground time needs chronology, so it works only on epoch-bearing legs,
// re-sorted ascending (never trust the feed's ordering). Each adjacent pair
// that stays at the same airport, with a scheduled arrival and a later actual
// departure both present, contributes one measured stay to that airport's
// bucket. Airports with no measured stays are omitted entirely.
func LikelyBaseAndOvernights(legs []FlightLeg) (OperatingBase, []OvernightStat) {
	base := OperatingBase{}
	stats := []OvernightStat{}
	if len(legs) == 0 { return base, stats }

	// Visit counting, as per TopAirports but unwindowed
	counts := map[string]int{}
	order := []string{}
	for _,leg := range legs {
		for _,code := range []string{leg.FromCode(), leg.ToCode()} {
			if code == "" { continue }
			if _,seen := counts[code]; !seen { order = append(order, code) }
			counts[code]++
		}
	}
	if len(order) > 0 {
		total := 0
		bestCode,bestCount := "",0
		for _,code := range order {
			total += counts[code]
			if counts[code] > bestCount { bestCode,bestCount = code,counts[code] }
		}
		confidence := float64(bestCount) / float64(total)
		base.Code = &bestCode
		base.Confidence = &confidence
	}

	// Ground-time pairing
	rows := SortLegsByDateEpoch(legs)
	buckets := map[string][]int64{}
	bucketOrder := []string{}
	for i := 0; i+1 < len(rows); i++ {
		arriving,departing := rows[i],rows[i+1]

		code := arriving.ToCode()
		if code == "" || code != departing.FromCode() { continue }

		sta,atd := arriving.StaEpoch, departing.AtdEpoch
		if sta == nil || atd == nil || *atd <= *sta { continue }

		if _,seen := buckets[code]; !seen { bucketOrder = append(bucketOrder, code) }
		buckets[code] = append(buckets[code], *atd - *sta)
	}

	for _,airport := range bucketOrder {
		stays := buckets[airport]
		overnights := 0
		totalSec := int64(0)
		for _,sec := range stays {
			if sec >= kOvernightThresholdSec { overnights++ }
			totalSec += sec
		}
		avgHours := float64(totalSec) / float64(len(stays)) / 3600.0
		stats = append(stats, OvernightStat{
			Airport:        airport,
			Overnights:     overnights,
			AvgGroundHours: math.Round(avgHours*10) / 10,
		})
	}

	sort.Stable(statsByEvidence(stats))
	if len(stats) > kMaxOvernightStats { stats = stats[:kMaxOvernightStats] }

	return base, stats
}

type statsByEvidence []OvernightStat
func (a statsByEvidence) Len() int      { return len(a) }
func (a statsByEvidence) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a statsByEvidence) Less(i, j int) bool {
	if a[i].Overnights != a[j].Overnights { return a[i].Overnights > a[j].Overnights }
	return a[i].AvgGroundHours > a[j].AvgGroundHours
}
