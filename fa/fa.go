package fa

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"regexp"
	"strings"

	"github.com/skypies/airlift"
)

const kURLRegistration = "www.flightaware.com/resources/registration/"

// Flightaware pulls FAA registry data via the registration resource.
type Flightaware struct {
	Client *http.Client
	Prefix  string // for tests
}

func (fa *Flightaware)Init() {
	if fa.Client == nil {
		fa.Client = &http.Client{}
	}
}

// {{{ Get*Url

func (fa *Flightaware)GetRegistrationUrl(tail string) string {
	return fmt.Sprintf("%s%s%s?output=json", fa.Prefix, kURLRegistration, tail)
}

// The human-facing page, for the insight's links block.
func RegistrationPageUrl(tail string) string {
	return "https://" + kURLRegistration + tail
}

// }}}
// {{{ fa.url2body

func (fa *Flightaware)url2body(ctx context.Context, url string) ([]byte, error) {
	req,err := http.NewRequestWithContext(ctx, "GET", "https://"+url, nil)
	if err != nil {
		return nil, err
	}
	if resp,err := fa.Client.Do(req); err != nil {
		return nil, err
	} else {
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("Bad status: %v", resp.Status)
		}
		return ioutil.ReadAll(resp.Body)
	}
}

// }}}

// Registration is the parsed registry snapshot. Info is what flows into the
// insight; ModeSCode stays here because only the live-feed lookup wants it.
type Registration struct {
	TailNumber string
	ModeSCode  string // "50526406 / A8C31F" - octal, then hex
	Info       airlift.RegistryInfo
}

// {{{ fa.LookupRegistration

func (fa *Flightaware)LookupRegistration(ctx context.Context, tail string) (*Registration, error) {
	body,err := fa.url2body(ctx, fa.GetRegistrationUrl(tail))
	if err != nil {
		return nil, err
	}
	return ParseRegistration(tail, body)
}

// }}}
// {{{ ParseRegistration

func ParseRegistration(tail string, body []byte) (*Registration, error) {
	resp := RegistrationResponse{}
	if err := json.Unmarshal(body, &resp); err != nil { return nil, err }

	reg := Registration{TailNumber: tail, ModeSCode: resp.Summary.ModeSCode}
	if resp.TailNumber != "" { reg.TailNumber = resp.TailNumber }

	url := RegistrationPageUrl(reg.TailNumber)
	info := airlift.RegistryInfo{
		Owner:                strOrNil(resp.Summary.Owner),
		Status:               strOrNil(resp.Details.Status),
		AirworthinessClass:   strOrNil(resp.Summary.AirworthinessClass),
		CertificateIssueDate: strOrNil(resp.Details.CertificateIssueDate),
		AirworthinessDate:    strOrNil(resp.Details.AirworthinessDate),
		Expiration:           strOrNil(resp.Details.Expiration),
		Engine:               strOrNil(resp.Summary.Engine),
		SerialNumber:         strOrNil(resp.Summary.SerialNumber),
		SourceURL:            &url,
	}
	if resp.Details.RegistrySourceURL != "" {
		info.SourceURL = strOrNil(resp.Details.RegistrySourceURL)
	}

	// The summary line packs several facts into one string, e.g.
	// "2015 GULFSTREAM G650  Fixed wing multi engine  (18 seats / 2 engines)"
	if s := resp.Summary.Summary; s != "" {
		parts := regexp.MustCompile(`\s{2,}`).Split(s, -1)
		info.ModelYear = strOrNil(parts[0])
		info.Seats, info.EnginesCount = parseSeatsEngines(s)
	}

	if v := strings.ToUpper(resp.Summary.FractionalOwner); v != "" {
		frac := strings.Contains(v, "YES")
		info.FractionalOwner = &frac
	}

	reg.Info = info
	return &reg, nil
}

// }}}
// {{{ helpers

// "... (18 seats / 2 engines)" => ("18", "2")
func parseSeatsEngines(summary string) (seats, engines *string) {
	open := strings.LastIndex(summary, "(")
	end := strings.LastIndex(summary, ")")
	if open < 0 || end < open { return }

	digits := regexp.MustCompile(`[0-9]+`)
	for _,part := range strings.Split(summary[open+1:end], "/") {
		n := digits.FindString(part)
		if n == "" { continue }
		if strings.Contains(part, "seat") { seats = &n }
		if strings.Contains(part, "engine") {
			m := n
			engines = &m
		}
	}
	return
}

// HexFromModeS pulls the hex airframe id out of the registry's "octal / HEX"
// Mode-S field. Empty when there's nothing usable.
func HexFromModeS(raw string) string {
	if raw == "" { return "" }
	parts := strings.Split(raw, "/")
	return strings.TrimSpace(parts[len(parts)-1])
}

func strOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" { return nil }
	return &s
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
