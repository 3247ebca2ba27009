// Command line lookups, for poking at a tail without running the webapp.
//
//   airlift -tail N605FX
//   airlift -tail 605FX -contacts -workbook ./airline_fbo_data.xlsx
//   airlift -tail N605FX -json > n605fx.json
package main

import(
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/skypies/util/date"

	"github.com/skypies/airlift"
	"github.com/skypies/airlift/contacts"
	"github.com/skypies/airlift/fa"
	"github.com/skypies/airlift/fr24"
	"github.com/skypies/airlift/globe"
	"github.com/skypies/airlift/ui"
)

var(
	ctx = context.Background()
	fTail string
	fJson bool
	fContacts bool
	fWorkbook string
	fInPdt bool
)

func init() {
	flag.StringVar(&fTail, "tail", "", "N-number to look up (leading N optional)")
	flag.BoolVar(&fJson, "json", false, "dump raw JSON instead of a summary")
	flag.BoolVar(&fContacts, "contacts", false, "look up workbook contacts instead of the insight")
	flag.StringVar(&fWorkbook, "workbook", "", "path to the contacts .xlsx")
	flag.BoolVar(&fInPdt, "pdt", true, "show timestamps in PDT")
	flag.Parse()
}

func main() {
	tail := airlift.NormalizeTail(fTail)
	if tail == "" {
		log.Fatal("need a valid -tail")
	}

	server := ui.Server{
		FR:        fr24.NewFr24(nil),
		FA:        &fa.Flightaware{},
		Positions: globe.NewGlobeSource(nil),
		Brands:    airlift.DefaultBrandTable(),
	}
	server.FA.Init()

	if fContacts {
		if fWorkbook == "" {
			log.Fatal("-contacts needs a -workbook")
		}
		dir,err := contacts.LoadDirectory(fWorkbook, contacts.DefaultRoleMatchers())
		if err != nil { log.Fatal(err) }
		server.Contacts = dir

		tc,err := server.ContactsByTail(ctx, tail)
		if err != nil { log.Fatal(err) }
		dumpJson(tc)
		return
	}

	ins := server.BuildInsight(ctx, tail, time.Now())
	if fJson {
		dumpJson(ins)
		return
	}
	printInsight(ins)
}

func dumpJson(data interface{}) {
	jsonBytes,err := json.MarshalIndent(data, "", "  ")
	if err != nil { log.Fatal(err) }
	os.Stdout.Write(jsonBytes)
	fmt.Printf("\n")
}

// {{{ printInsight

func printInsight(ins airlift.AircraftInsight) {
	fmt.Printf("----{ %s }----\n", ins.TailNumber)
	fmt.Printf("    operation: %s (chase %d)\n", ins.InferredOperation, ins.Chase.Score)
	for _,reason := range ins.Chase.Reasons {
		fmt.Printf("      + %s\n", reason)
	}
	fmt.Printf("    ask for: %s\n", strings.Join(ins.BuyerRolesHint, ", "))

	if owner := ins.Registry.Owner; owner != nil {
		fmt.Printf("    owner: %s\n", *owner)
	}
	if op := ins.FR24.Operator; op != nil {
		fmt.Printf("    operator: %s\n", *op)
	}

	if ins.LastSpotted.Epoch != nil {
		t := time.Unix(*ins.LastSpotted.Epoch, 0)
		if fInPdt { t = date.InPdt(t) }
		fmt.Printf("    last spotted: %s %s (%s)\n", deref(ins.LastSpotted.PlaceCode),
			t.Format("2006/01/02 15:04 MST"), deref(ins.LastSpotted.Source))
	}

	if ins.LikelyBase.Code != nil {
		fmt.Printf("    likely base: %s\n", *ins.LikelyBase.Code)
	}
	for _,stat := range ins.OvernightsTop {
		fmt.Printf("      - %s: %d overnights, avg %.1fh on the ground\n",
			stat.Airport, stat.Overnights, stat.AvgGroundHours)
	}

	fmt.Printf("    top airports (30d):")
	for _,hit := range ins.TopAirports30d {
		fmt.Printf(" %s(%d)", hit.Code, hit.Count)
	}
	fmt.Printf("\n")

	for i,row := range ins.RecentFlights {
		fmt.Printf("    [%2d] %-12.12s %4.4s > %-4.4s %-9.9s %s\n", i, deref(row.DateLocal),
			deref(row.FromAirport), deref(row.ToAirport), deref(row.Callsign),
			deref(row.FlightTime))
	}
}

func deref(s *string) string {
	if s == nil { return "-" }
	return *s
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
