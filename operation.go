package airlift

import "strings"

const(
	OperationFractional = "Part 135 – Fractional/Charter (fractional/managed)"
	OperationPrivate    = "Part 91 – Corporate/Private"
)

// BrandTable lists fractional/charter program names. If any of them shows up
// inside the registry owner or live-feed operator strings, the aircraft is
// operating under a shared-ownership or charter program, whatever the
// registry's fractional flag says. Passed in explicitly so tests (and future
// config) can substitute their own table.
type BrandTable []string

func DefaultBrandTable() BrandTable {
	return BrandTable{
		"NETJETS",
		"FLEXJET",
		"WHEELS UP",
		"XOJET",
		"VISTAJET",
		"PLANESENSE",
		"JET LINX",
		"JET EDGE",
		"ONEFLIGHT",
		"MAGELLAN",
		"CLAY LACY",
		"SENTIENT",
	}
}

// ClassifyOperation labels the operating model from free-text ownership
// fields and the registry's fractional flag. A brand hit overrides a false
// (or absent) flag. Returns the human-readable label, plus the fractional
// boolean on its own for scoring.
func (bt BrandTable)ClassifyOperation(owner, operator *string, fractionalFlag *bool) (string, bool) {
	ownerU := strings.ToUpper(strv(owner))
	operatorU := strings.ToUpper(strv(operator))

	fractional := fractionalFlag != nil && *fractionalFlag
	if !fractional {
		for _,brand := range bt {
			if strings.Contains(ownerU, brand) || strings.Contains(operatorU, brand) {
				fractional = true
				break
			}
		}
	}

	if fractional {
		return OperationFractional, true
	}
	return OperationPrivate, false
}
