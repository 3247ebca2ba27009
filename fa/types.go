package fa

// Shapes for the registration resource. Field names mirror the labels on the
// registry page; everything is optional text, absent fields stay "".

// {{{ RegistrationResponse

type RegistrationResponse struct {
	TailNumber string              `json:"tail_number"`
	Summary    RegistrationSummary `json:"summary"`
	Details    RegistrationDetails `json:"details"`
}

type RegistrationSummary struct {
	Summary            string `json:"summary"` // "2015 GULFSTREAM G650  ...  (18 seats / 2 engines)"
	Owner              string `json:"owner"`
	ModeSCode          string `json:"mode_s_code"` // "50526406 / A8C31F"
	SerialNumber       string `json:"serial_number"`
	AirworthinessClass string `json:"airworthiness_class"`
	Engine             string `json:"engine"`
	Weight             string `json:"weight"`
	FractionalOwner    string `json:"fractional_owner"` // "YES" / "NO"
}

type RegistrationDetails struct {
	Status               string `json:"status"`
	CertificateIssueDate string `json:"certificate_issue_date"`
	AirworthinessDate    string `json:"airworthiness_date"`
	Expiration           string `json:"expiration"`
	RegistrySource       string `json:"registry_source"`
	RegistrySourceURL    string `json:"registry_source_url"`
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
