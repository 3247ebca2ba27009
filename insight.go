package airlift

import "time"

// The pass-through blocks. These hold whatever the collaborator clients
// managed to extract; the aggregator copies them into the insight untouched
// (bar the classifier reading owner/operator/fractional out of them).

type FR24Info struct {
	Model        *string `json:"model"`
	Airline      *string `json:"airline"`
	Operator     *string `json:"operator"`
	TypeCode     *string `json:"type_code"`
	AirlineCode  *string `json:"airline_code"`
	OperatorCode *string `json:"operator_code"`
	ModeS        *string `json:"mode_s"`
	SerialMSN    *string `json:"serial_msn"`
	SourceURL    *string `json:"source_url"`
}

type RegistryInfo struct {
	Owner                *string `json:"owner"`
	Status               *string `json:"status"`
	AirworthinessClass   *string `json:"airworthiness_class"`
	CertificateIssueDate *string `json:"certificate_issue_date"`
	AirworthinessDate    *string `json:"airworthiness_date"`
	Expiration           *string `json:"expiration"`
	Engine               *string `json:"engine"`
	SerialNumber         *string `json:"serial_number"`
	ModelYear            *string `json:"model_year"`
	FractionalOwner      *bool   `json:"fractional_owner"`
	Seats                *string `json:"seats"`
	EnginesCount         *string `json:"engines_count"`
	SourceURL            *string `json:"source_url"`
}

type ADSBInfo struct {
	Callsign      *string `json:"callsign"`
	Hex           *string `json:"hex"`
	Registration  *string `json:"registration"`
	IcaoType      *string `json:"icao_type"`
	TypeFull      *string `json:"type_full"`
	TypeDesc      *string `json:"type_desc"`
	OwnersOps     *string `json:"owners_ops"`
	Squawk        *string `json:"squawk"`
	GroundspeedKt *string `json:"groundspeed_kt"`
	BaroAltitude  *string `json:"baro_altitude"`
	GroundTrack   *string `json:"ground_track"`
	TrueHeading   *string `json:"true_heading"`
	MagHeading    *string `json:"mag_heading"`
	Mach          *string `json:"mach"`
	Category      *string `json:"category"`
	Position      *string `json:"position"`
	LastSeen      *string `json:"last_seen"`
	LastPosAge    *string `json:"last_pos_age"`
	Source        *string `json:"source"`
	MessageRate   *string `json:"message_rate"`
	PosEpoch      *int64  `json:"pos_epoch"`
}

type Links struct {
	FR24URL           *string `json:"fr24_url"`
	RegistrySourceURL *string `json:"registry_source_url"`
	ADSBGlobeURL      *string `json:"adsb_globe_url"`
}

// FlightRow is the trimmed leg view for the recent-flights table.
type FlightRow struct {
	DateLocal   *string `json:"date_local"`
	FromAirport *string `json:"from_airport"`
	ToAirport   *string `json:"to_airport"`
	Callsign    *string `json:"callsign"`
	FlightTime  *string `json:"flight_time"`
}

// AircraftInsight is the whole decision-ready summary for one airframe.
// Built fresh per request and never mutated afterwards.
type AircraftInsight struct {
	TailNumber string       `json:"tail_number"`
	FR24       FR24Info     `json:"fr24"`
	Registry   RegistryInfo `json:"registry"`
	ADSB       ADSBInfo     `json:"adsb"`
	Links      Links        `json:"links"`

	InferredOperation string   `json:"inferred_operation"`
	IsFractional      bool     `json:"is_fractional"`
	BuyerRolesHint    []string `json:"buyer_roles_hint"`

	LastSpotted    LastSpotted  `json:"last_spotted"`
	TopAirports7d  []AirportHit `json:"top_airports_7d"`
	TopAirports30d []AirportHit `json:"top_airports_30d"`
	TopAirports90d []AirportHit `json:"top_airports_90d"`
	RecentFlights  []FlightRow  `json:"recent_flights"`

	LikelyBase    OperatingBase   `json:"likely_base"`
	OvernightsTop []OvernightStat `json:"overnights_top"`
	Chase         ChaseScore      `json:"chase"`
}

// InsightInput is the pre-fetched snapshot an insight is derived from. The
// caller does all the fetching; by the time this struct exists, everything
// is plain immutable data and no I/O remains.
type InsightInput struct {
	Tail     string
	Legs     []FlightLeg
	FR24     FR24Info
	Registry RegistryInfo
	ADSB     ADSBInfo
	Links    Links
}

const kRecentFlightsMax = 15

// Who to call about a plane depends on how it's operated.
var buyerRolesPrivate = []string{
	"Director of Maintenance (DOM)",
	"Chief Pilot",
	"Fleet Manager / Aviation Dept.",
}
var buyerRolesFractional = []string{
	"OCC / Dispatch",
	"Base Manager (FBO/Operator)",
	"Director of Maintenance (DOM)",
}

// BuildInsight runs every analyzer over the snapshot and assembles the
// aggregate. Each analyzer is an independent pure function of the inputs;
// the only cross-wiring happens here (chase score consumes the reconciled
// last-spotted epoch and the overnight list). `now` is the evaluation clock
// for the windowed rankings and the recency signal - thread it in, don't
// read it ambiently, so identical calls give identical answers.
func BuildInsight(in InsightInput, brands BrandTable, now time.Time) AircraftInsight {
	operation,isFractional := brands.ClassifyOperation(
		in.Registry.Owner, in.FR24.Operator, in.Registry.FractionalOwner)

	// Three separate calls; each applies its own cutoff to the full list
	top7  := TopAirports(in.Legs,  7, now)
	top30 := TopAirports(in.Legs, 30, now)
	top90 := TopAirports(in.Legs, 90, now) // only as deep as the feed's history actually goes

	base,overnights := LikelyBaseAndOvernights(in.Legs)

	recent := []FlightRow{}
	for i,leg := range in.Legs {
		if i >= kRecentFlightsMax { break }
		var fromCode,toCode *string
		if leg.From != nil { fromCode = leg.From.Code }
		if leg.To != nil   { toCode = leg.To.Code }
		recent = append(recent, FlightRow{
			DateLocal:   leg.DateLocal,
			FromAirport: fromCode,
			ToAirport:   toCode,
			Callsign:    leg.Callsign,
			FlightTime:  leg.FlightTime,
		})
	}

	spotted := ChooseLastSpotted(LastSpottedFromHistory(in.Legs), in.ADSB.PosEpoch)
	chase := ComputeChaseScore(spotted.Epoch, isFractional, overnights, now)

	roles := buyerRolesFractional
	if operation == OperationPrivate { roles = buyerRolesPrivate }

	return AircraftInsight{
		TailNumber:        in.Tail,
		FR24:              in.FR24,
		Registry:          in.Registry,
		ADSB:              in.ADSB,
		Links:             in.Links,
		InferredOperation: operation,
		IsFractional:      isFractional,
		BuyerRolesHint:    roles,
		LastSpotted:       spotted,
		TopAirports7d:     top7,
		TopAirports30d:    top30,
		TopAirports90d:    top90,
		RecentFlights:     recent,
		LikelyBase:        base,
		OvernightsTop:     overnights,
		Chase:             chase,
	}
}
