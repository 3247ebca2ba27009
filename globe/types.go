package globe

import "encoding/json"

// These mirror the readsb aircraft.json schema; see the wiki at
// https://github.com/wiedehopf/readsb for the field zoo.

type aircraftFeedJson struct {
	Now      float64      `json:"now"` // epoch at sample time, fractional seconds
	Messages int64        `json:"messages"`
	Aircraft []targetJson `json:"aircraft"`
}

type targetJson struct {
	Hex          string          `json:"hex"`
	Flight       string          `json:"flight"` // callsign, space padded
	Registration string          `json:"r"`
	IcaoType     string          `json:"t"`
	Desc         string          `json:"desc"`
	OwnOp        string          `json:"ownOp"`
	AltBaro      json.RawMessage `json:"alt_baro"` // feet, or the literal "ground"
	GS           *float64        `json:"gs"`
	Track        *float64        `json:"track"`
	TrueHeading  *float64        `json:"true_heading"`
	MagHeading   *float64        `json:"mag_heading"`
	Mach         *float64        `json:"mach"`
	Squawk       string          `json:"squawk"`
	Category     string          `json:"category"`
	Lat          *float64        `json:"lat"`
	Lon          *float64        `json:"lon"`
	Messages     *float64        `json:"messages"`
	Seen         *float64        `json:"seen"`
	SeenPos      *float64        `json:"seen_pos"`
}
