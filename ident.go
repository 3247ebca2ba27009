package airlift

import "strings"

/* Some notes on identifiers for aircraft

# Registrations (N-numbers)

US-registered airframes carry a tail number starting with N. Users type
these in every way imaginable - lowercase, leading '#' from pasted
spreadsheet cells, with or without the N - so everything gets squeezed
through NormalizeTail before it touches a client or an analyzer.

# ICAO Mode-S hex ids

The live feed keys off the six-digit hex airframe id, not the tail. The
registry's "Mode S Code" field holds "octal / HEX"; callers split on the
slash and take the hex half.
*/

// NormalizeTail canonicalizes a user-supplied registration into N-number
// form: " #n605fx " becomes "N605FX", "103DY" becomes "N103DY". An empty
// (or all-whitespace) input normalizes to "", which callers must reject
// before invoking any lookups or analyzers.
func NormalizeTail(tail string) string {
	tail = strings.TrimLeft(strings.ToUpper(strings.TrimSpace(tail)), "#")
	if tail == "" {
		return ""
	}
	if !strings.HasPrefix(tail, "N") {
		tail = "N" + tail
	}
	return tail
}
