package airlift

import "strings"

const(
	SpottedSourceHistory  = "FR24 flights"
	SpottedSourceLiveFeed = "ADS-B Exchange (epoch)"
)

// LastSpotted describes the freshest known location for an airframe, merged
// from the history feed and (maybe) the live-position feed. Source says which
// feed supplied the timestamp; the place always comes from history.
type LastSpotted struct {
	PlaceCode *string `json:"place_code"`
	PlaceCity *string `json:"place_city"`
	Epoch     *int64  `json:"epoch"`
	Source    *string `json:"source"`
}

// LastSpottedFromHistory reads the first leg as supplied (the feed's
// newest-first ordering is trusted here, and only here, because "most recent
// as received" is the contract). A leg whose status says it landed puts the
// aircraft at its arrival airport; anything else - en route, cancelled,
// unknown - leaves it at the departure airport, the last place it was
// definitely on the ground.
func LastSpottedFromHistory(legs []FlightLeg) LastSpotted {
	src := SpottedSourceHistory
	spotted := LastSpotted{Source: &src}
	if len(legs) == 0 { return spotted }

	leg := legs[0]
	status := strings.ToLower(strv(leg.Status))
	if strings.Contains(status, "landed") && (leg.To.CodeString() != "" || leg.To.CityString() != "") {
		spotted.PlaceCode, spotted.PlaceCity = derefRef(leg.To)
	} else {
		spotted.PlaceCode, spotted.PlaceCity = derefRef(leg.From)
	}
	spotted.Epoch = leg.DateEpoch

	return spotted
}

// ChooseLastSpotted reconciles the history-derived location against the
// live feed's position timestamp, keeping whichever is fresher. The live feed
// only ever contributes freshness: the place fields stay whatever history
// said, since a bare epoch carries no location we can name.
func ChooseLastSpotted(fromHistory LastSpotted, liveEpoch *int64) LastSpotted {
	if liveEpoch != nil && (fromHistory.Epoch == nil || *liveEpoch > *fromHistory.Epoch) {
		src := SpottedSourceLiveFeed
		return LastSpotted{
			PlaceCode: fromHistory.PlaceCode,
			PlaceCity: fromHistory.PlaceCity,
			Epoch:     liveEpoch,
			Source:    &src,
		}
	}
	return fromHistory
}

func derefRef(ar *AirportRef) (*string, *string) {
	if ar == nil { return nil, nil }
	return ar.Code, ar.City
}
