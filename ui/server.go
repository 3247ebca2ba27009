package ui

import(
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/skypies/adsb"

	"github.com/skypies/airlift"
	"github.com/skypies/airlift/contacts"
	"github.com/skypies/airlift/fa"
	"github.com/skypies/airlift/fr24"
	"github.com/skypies/airlift/globe"
)

// Server glues the collaborator clients to the analyzers. Each client may
// be nil (or fail), in which case its block of the insight stays empty;
// one upstream having a bad day shouldn't blank the whole page.
type Server struct {
	FR        *fr24.Fr24
	FA        *fa.Flightaware
	Positions  globe.PositionSource
	Contacts  *contacts.Directory
	Brands     airlift.BrandTable
}

// {{{ sv.BuildInsight

func (sv *Server)BuildInsight(ctx context.Context, tail string, now time.Time) airlift.AircraftInsight {
	in := airlift.InsightInput{Tail: tail}

	if sv.FR != nil {
		if h,err := sv.FR.LookupHistory(ctx, tail); err != nil {
			log.Printf("insight/%s: fr24 history: %v", tail, err)
		} else {
			in.FR24 = h.Profile
			in.Legs = h.Legs
		}
	}

	regModeS := ""
	if sv.FA != nil {
		if reg,err := sv.FA.LookupRegistration(ctx, tail); err != nil {
			log.Printf("insight/%s: registration: %v", tail, err)
		} else {
			in.Registry = reg.Info
			regModeS = reg.ModeSCode
		}
	}

	// Prefer the hex fr24 reports; the registry's "octal / HEX" is the backup
	hex := ""
	if in.FR24.ModeS != nil {
		hex = *in.FR24.ModeS
	} else if regModeS != "" {
		hex = fa.HexFromModeS(regModeS)
	}

	if hex != "" && sv.Positions != nil {
		if sample,err := sv.Positions.Lookup(ctx, adsb.IcaoId(hex)); err != nil {
			log.Printf("insight/%s: live position: %v", tail, err)
		} else if sample != nil {
			in.ADSB = sample.ToADSBInfo()
		}
	}
	if in.ADSB.Hex == nil && hex != "" {
		in.ADSB.Hex = &hex
	}

	in.Links = airlift.Links{
		FR24URL:           in.FR24.SourceURL,
		RegistrySourceURL: in.Registry.SourceURL,
	}
	if in.Links.FR24URL == nil {
		url := fr24.AircraftPageUrl(tail)
		in.Links.FR24URL = &url
	}
	if in.ADSB.Hex != nil {
		url := fmt.Sprintf("https://globe.adsbexchange.com/?icao=%s",
			strings.ToLower(*in.ADSB.Hex))
		in.Links.ADSBGlobeURL = &url
	}

	return airlift.BuildInsight(in, sv.Brands, now)
}

// }}}
// {{{ sv.ContactsByTail

// TailContacts is the response for the contacts-by-tail lookup.
type TailContacts struct {
	TailNumber string              `json:"tail_number"`
	Airline    string              `json:"airline"`
	Contacts   contacts.ContactSet `json:"contacts"`
}

// ContactsByTail resolves the tail to an operator via fr24, then pulls the
// matching rows from the workbook. Unlike BuildInsight, this can't degrade:
// no operator means there is nothing to look up.
func (sv *Server)ContactsByTail(ctx context.Context, tail string) (*TailContacts, error) {
	if sv.FR == nil || sv.Contacts == nil {
		return nil, fmt.Errorf("contacts lookup not configured")
	}

	h,err := sv.FR.LookupHistory(ctx, tail)
	if err != nil {
		return nil, err
	}

	operator := ""
	if h.Profile.Operator != nil {
		operator = *h.Profile.Operator
	} else if h.Profile.Airline != nil {
		operator = *h.Profile.Airline
	}
	if operator == "" {
		return nil, ErrNoOperator
	}

	set := sv.Contacts.FindForAirline(operator)
	return &TailContacts{TailNumber:tail, Airline:operator, Contacts:set}, nil
}

var ErrNoOperator = fmt.Errorf("Could not determine operator/airline for this tail.")

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
