// The webapp. Serves the insight and contacts APIs, plus the PDF sheet
// and whatever static frontend sits in ./app/frontend/static.
package main

import(
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/skypies/util/widget"

	"github.com/skypies/airlift"
	"github.com/skypies/airlift/contacts"
	"github.com/skypies/airlift/fa"
	"github.com/skypies/airlift/fr24"
	"github.com/skypies/airlift/globe"
	"github.com/skypies/airlift/ui"
)

var(
	fWorkbook  string
	fStaticDir string
	fCacheTTL  time.Duration
	fCacheSize int
)

func init() {
	flag.StringVar(&fWorkbook, "workbook", "", "path to the contacts .xlsx (blank disables contact lookups)")
	flag.StringVar(&fStaticDir, "static", "./app/frontend/static", "dir of static frontend files")
	flag.DurationVar(&fCacheTTL, "cachettl", 30*time.Second, "how long to trust a live position fix")
	flag.IntVar(&fCacheSize, "cachesize", 4096, "live position cache entries")
}

func main() {
	flag.Parse()

	positions,err := globe.NewCachedSource(globe.NewGlobeSource(nil), fCacheSize, fCacheTTL)
	if err != nil {
		log.Fatal(err)
	}

	server := ui.Server{
		FR:        fr24.NewFr24(nil),
		FA:        &fa.Flightaware{},
		Positions: positions,
		Brands:    airlift.DefaultBrandTable(),
	}
	server.FA.Init()

	if fWorkbook != "" {
		dir,err := contacts.LoadDirectory(fWorkbook, contacts.DefaultRoleMatchers())
		if err != nil {
			log.Fatal(err)
		}
		server.Contacts = dir
		log.Printf("contacts workbook loaded from %s", fWorkbook)
	}

	ctxMaker := func(r *http.Request) context.Context {
		ctx,_ := context.WithTimeout(r.Context(), 55 * time.Second)
		return ctx
	}

	// ui/api.go
	http.HandleFunc("/api/aircraft", widget.WithCtx(ctxMaker, server.AircraftHandler))
	http.HandleFunc("/api/contacts-by-tail", widget.WithCtx(ctxMaker, server.ContactsHandler))

	// ui/pdf.go
	http.HandleFunc("/api/aircraft/pdf", widget.WithCtx(ctxMaker, server.PdfHandler))

	fs := http.FileServer(http.Dir(fStaticDir))
	http.Handle("/", fs)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Listening on port %s [airlift/app/frontend]", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", port), nil))
}
