// Renders an aircraft insight as a one-page PDF, for reps who want
// something printable to walk into an FBO with.
package fpdf

import(
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/skypies/airlift"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

var(
	kPageMarginMM   = 12.0
	kLineHeightMM   =  5.0
	kLabelWidthMM   = 38.0
	kHeaderGrey     = []int{0x40, 0x40, 0x40}
)

// {{{ InsightSheet

func InsightSheet(ins airlift.AircraftInsight) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(kPageMarginMM, kPageMarginMM, kPageMarginMM)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("") // operation labels contain an en-dash

	w := sheetWriter{Fpdf:pdf, tr:tr}

	w.title(ins.TailNumber)
	w.keyval("Operation", ins.InferredOperation)
	if ins.Chase.Score > 0 {
		w.keyval("Chase score", fmt.Sprintf("%d (%s)", ins.Chase.Score,
			strings.Join(ins.Chase.Reasons, "; ")))
	}
	w.keyval("Who to ask for", strings.Join(ins.BuyerRolesHint, ", "))

	w.section("Aircraft")
	w.keyval("Model", firstOf(ins.Registry.ModelYear, ins.FR24.Model))
	w.keyval("Owner", strv(ins.Registry.Owner))
	w.keyval("Operator", firstOf(ins.FR24.Operator, ins.FR24.Airline))
	w.keyval("Mode S", firstOf(ins.FR24.ModeS, ins.ADSB.Hex))
	w.keyval("Serial", firstOf(ins.Registry.SerialNumber, ins.FR24.SerialMSN))

	w.section("Last spotted")
	w.keyval("Where", placeString(ins.LastSpotted))
	w.keyval("When", epochString(ins.LastSpotted.Epoch))
	w.keyval("Source", strv(ins.LastSpotted.Source))

	w.section("Where it flies")
	w.keyval("Last 7 days", airportsString(ins.TopAirports7d))
	w.keyval("Last 30 days", airportsString(ins.TopAirports30d))
	w.keyval("Last 90 days", airportsString(ins.TopAirports90d))
	if ins.LikelyBase.Code != nil {
		conf := ""
		if ins.LikelyBase.Confidence != nil {
			conf = fmt.Sprintf(" (%.0f%% of visits)", *ins.LikelyBase.Confidence * 100.0)
		}
		w.keyval("Likely base", *ins.LikelyBase.Code + conf)
	}
	w.keyval("Overnights", overnightsString(ins.OvernightsTop))

	w.recentFlights(ins.RecentFlights)

	return pdf
}

// WriteInsightSheet renders straight into w, e.g. an http.ResponseWriter.
func WriteInsightSheet(ins airlift.AircraftInsight, w io.Writer) error {
	return InsightSheet(ins).Output(w)
}

// }}}
// {{{ sheetWriter{}

type sheetWriter struct {
	*gofpdf.Fpdf
	tr func(string) string
}

func (w sheetWriter)title(tail string) {
	w.SetFont("Arial", "B", 18)
	w.CellFormat(0, 10, tail, "", 1, "L", false, 0, "")
	w.SetFont("Arial", "", 10)
}

func (w sheetWriter)section(name string) {
	w.Ln(2)
	w.SetFont("Arial", "B", 11)
	w.SetTextColor(kHeaderGrey[0], kHeaderGrey[1], kHeaderGrey[2])
	w.CellFormat(0, 6, name, "B", 1, "L", false, 0, "")
	w.SetTextColor(0, 0, 0)
	w.SetFont("Arial", "", 10)
}

func (w sheetWriter)keyval(key, val string) {
	if val == "" { return }
	w.SetFont("Arial", "B", 10)
	w.CellFormat(kLabelWidthMM, kLineHeightMM, key, "", 0, "L", false, 0, "")
	w.SetFont("Arial", "", 10)
	w.MultiCell(0, kLineHeightMM, w.tr(val), "", "L", false)
}

func (w sheetWriter)recentFlights(rows []airlift.FlightRow) {
	if len(rows) == 0 { return }

	w.section("Recent flights")
	w.SetFont("Arial", "", 9)
	for _,row := range rows {
		str := fmt.Sprintf("%-12.12s %4.4s > %-4.4s %-9.9s %s", strv(row.DateLocal),
			strv(row.FromAirport), strv(row.ToAirport), strv(row.Callsign),
			strv(row.FlightTime))
		w.CellFormat(0, 4.5, str, "", 1, "L", false, 0, "")
	}
	w.SetFont("Arial", "", 10)
}

// }}}

// {{{ helpers

func strv(s *string) string {
	if s == nil { return "" }
	return *s
}

func firstOf(strs ...*string) string {
	for _,s := range strs {
		if s != nil && *s != "" { return *s }
	}
	return ""
}

func placeString(ls airlift.LastSpotted) string {
	code,city := strv(ls.PlaceCode), strv(ls.PlaceCity)
	switch {
	case code != "" && city != "": return fmt.Sprintf("%s (%s)", code, city)
	case code != "":               return code
	default:                       return city
	}
}

func epochString(e *int64) string {
	if e == nil { return "" }
	return time.Unix(*e, 0).UTC().Format("2006/01/02 15:04 MST")
}

func airportsString(hits []airlift.AirportHit) string {
	strs := []string{}
	for _,hit := range hits {
		strs = append(strs, fmt.Sprintf("%s (%d)", hit.Code, hit.Count))
	}
	return strings.Join(strs, ", ")
}

func overnightsString(stats []airlift.OvernightStat) string {
	strs := []string{}
	for _,stat := range stats {
		strs = append(strs, fmt.Sprintf("%s x%d (avg %.1fh)", stat.Airport,
			stat.Overnights, stat.AvgGroundHours))
	}
	return strings.Join(strs, ", ")
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
