package ui

import(
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/skypies/airlift"
	"github.com/skypies/airlift/fpdf"
)

// {{{ PdfHandler

// ?n=N12345

func (sv *Server)PdfHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	tail := airlift.NormalizeTail(r.FormValue("n"))
	if tail == "" {
		http.Error(w, "Provide a valid N-number.", http.StatusBadRequest)
		return
	}

	ins := sv.BuildInsight(ctx, tail, time.Now())

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`inline; filename="%s-insight.pdf"`, tail))
	if err := fpdf.WriteInsightSheet(ins, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
