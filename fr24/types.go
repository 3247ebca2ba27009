package fr24

// Shapes for the list.json history endpoint. Only the fields we consume are
// declared; fr24 sends plenty more.

// {{{ HistoryListResponse

type HistoryListResponse struct {
	Result struct {
		Response struct {
			AircraftInfo *AircraftInfo `json:"aircraftInfo"`
			Data         []HistoryRow  `json:"data"`
		} `json:"response"`
		Request struct {
			Query   string `json:"query"`
			FetchBy string `json:"fetchBy"`
		} `json:"request"`
	} `json:"result"`
}

// }}}
// {{{ AircraftInfo

type CodePair struct {
	Iata string `json:"iata"`
	Icao string `json:"icao"`
}

type AircraftInfo struct {
	Model struct {
		Code string `json:"code"`
		Text string `json:"text"`
	} `json:"model"`
	Registration string `json:"registration"`
	Hex          string `json:"hex"`   // Mode-S id
	Msn          string `json:"msn"`
	Airline struct {
		Name string   `json:"name"`
		Code CodePair `json:"code"`
	} `json:"airline"`
	Operator struct {
		Name string   `json:"name"`
		Code CodePair `json:"code"`
	} `json:"operator"`
}

// }}}
// {{{ HistoryRow

type HistoryAirport struct {
	Code     CodePair `json:"code"`
	Position struct {
		Region struct {
			City string `json:"city"`
		} `json:"region"`
	} `json:"position"`
}

type HistoryRow struct {
	Identification struct {
		Id     string `json:"id"`
		Number struct {
			Default string `json:"default"`
		} `json:"number"`
		Callsign string `json:"callsign"`
	} `json:"identification"`
	Status struct {
		Text string `json:"text"` // e.g. "Landed 14:21"
	} `json:"status"`
	Aircraft struct {
		Registration string `json:"registration"`
	} `json:"aircraft"`
	Airport struct {
		Origin      *HistoryAirport `json:"origin"`
		Destination *HistoryAirport `json:"destination"`
	} `json:"airport"`
	Time struct {
		Scheduled struct {
			Departure int64 `json:"departure"`
			Arrival   int64 `json:"arrival"`
		} `json:"scheduled"`
		Real struct {
			Departure int64 `json:"departure"`
			Arrival   int64 `json:"arrival"`
		} `json:"real"`
		Estimated struct {
			Departure int64 `json:"departure"`
			Arrival   int64 `json:"arrival"`
		} `json:"estimated"`
	} `json:"time"`
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
