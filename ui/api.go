package ui

import(
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/skypies/airlift"
)

// Handlers are widget.ContextHandler shaped, so main() can stack them with
// the usual handlerware.

// {{{ AircraftHandler

// ?n=N12345        (leading N optional; we normalize)

func (sv *Server)AircraftHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	tail := airlift.NormalizeTail(r.FormValue("n"))
	if tail == "" {
		http.Error(w, "Provide a valid N-number.", http.StatusBadRequest)
		return
	}

	ins := sv.BuildInsight(ctx, tail, time.Now())
	writeJson(w, ins)
}

// }}}
// {{{ ContactsHandler

// ?n=N12345

func (sv *Server)ContactsHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	tail := airlift.NormalizeTail(r.FormValue("n"))
	if tail == "" {
		http.Error(w, "Provide a valid N-number.", http.StatusBadRequest)
		return
	}

	tc,err := sv.ContactsByTail(ctx, tail)
	if err == ErrNoOperator {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJson(w, tc)
}

// }}}
// {{{ writeJson

func writeJson(w http.ResponseWriter, data interface{}) {
	jsonBytes,err := json.MarshalIndent(data, "", " ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonBytes)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
