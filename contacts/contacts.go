package contacts

// Looks up sales contacts for an operator from the spreadsheet the sales
// team maintains. The workbook is whatever they last exported, so be
// forgiving about sheets and header spellings.

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

var(
	kHeaderFirstName = "First Name"
	kHeaderLastName  = "Last Name"
	kHeaderTitle     = "Title"
	kHeaderEmail     = "Email"
	kHeaderPhone     = "Corporate Phone"
	kHeaderCompanies = []string{"Company Name", "company_name"}
)

// {{{ RoleMatchers{}

// RoleMatchers decides which bucket a job title lands in. Injected rather
// than hardwired, so a deployment can tune the patterns per vertical.
type RoleMatchers struct {
	DOM []*regexp.Regexp // maintenance decision makers
	OCC []*regexp.Regexp // ops control / dispatch
}

func DefaultRoleMatchers() RoleMatchers {
	return RoleMatchers{
		DOM: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bDOM\b`),
			regexp.MustCompile(`(?i)director\s+of\s+maintenance`),
			regexp.MustCompile(`(?i)maintenance\s+director`),
			regexp.MustCompile(`(?i)principal\s+maintenance`),
		},
		OCC: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bOCC\b`),
			regexp.MustCompile(`(?i)operations\s+control\s+center`),
			regexp.MustCompile(`(?i)network\s+operations\s+center`),
			regexp.MustCompile(`(?i)dispatch(er)?`),
			regexp.MustCompile(`(?i)flight\s+control`),
		},
	}
}

func matchAny(title string, pats []*regexp.Regexp) bool {
	for _,pat := range pats {
		if pat.MatchString(title) { return true }
	}
	return false
}

// }}}
// {{{ Contact{}, ContactSet{}

type Contact struct {
	Name           string  `json:"name"`
	Title          *string `json:"title"`
	Email          *string `json:"email"`
	Company        *string `json:"company"`
	CorporatePhone *string `json:"corporate_phone"`
}

type ContactSet struct {
	Airline      string    `json:"airline"`
	DOM          []Contact `json:"dom"`
	OCC          []Contact `json:"occ"`
	Other        []Contact `json:"other"`
	WorkbookUsed string    `json:"workbook_used"`
}

// }}}

// {{{ Directory{}

// Directory holds the workbook contents, parsed once up front. A row is a
// contact; the header row names the columns, which vary between sheets.
type Directory struct {
	Path     string
	Matchers RoleMatchers

	rows []dirRow
}

type dirRow struct {
	contact Contact
	company string // lowercased, for matching
	title   string
}

func LoadDirectory(path string, matchers RoleMatchers) (*Directory, error) {
	f,err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("contacts workbook %s: %v", path, err)
	}
	defer f.Close()

	d := Directory{Path:path, Matchers:matchers}

	for _,sheet := range f.GetSheetList() {
		rows,err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("contacts sheet %s: %v", sheet, err)
		}
		d.addSheet(rows)
	}

	if len(d.rows) == 0 {
		return nil, fmt.Errorf("contacts workbook %s: no usable rows", path)
	}

	return &d, nil
}

func (d *Directory)addSheet(rows [][]string) {
	if len(rows) < 2 { return }

	cols := map[string]int{}
	for i,name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}

	companyCol := -1
	for _,name := range kHeaderCompanies {
		if i,ok := cols[name]; ok { companyCol = i; break }
	}
	if companyCol < 0 { return } // can't match against anything; skip the sheet

	cell := func(row []string, name string) string {
		i,ok := cols[name]
		if !ok || i >= len(row) { return "" }
		return strings.TrimSpace(row[i])
	}

	for _,row := range rows[1:] {
		company := ""
		if companyCol < len(row) {
			company = strings.TrimSpace(row[companyCol])
		}
		if company == "" { continue }

		name := strings.TrimSpace(strings.Join(nonEmpty(
			cell(row, kHeaderFirstName), cell(row, kHeaderLastName)), " "))

		title := cell(row, kHeaderTitle)
		c := Contact{
			Name:           name,
			Title:          strOrNil(title),
			Email:          strOrNil(cell(row, kHeaderEmail)),
			Company:        strOrNil(company),
			CorporatePhone: strOrNil(cell(row, kHeaderPhone)),
		}
		d.rows = append(d.rows, dirRow{contact:c, company:strings.ToLower(company), title:title})
	}
}

// FindForAirline returns every contact whose company contains the airline
// name, split into role buckets. DOM wins when a title matches both.
func (d *Directory)FindForAirline(airline string) ContactSet {
	out := ContactSet{
		Airline:      airline,
		DOM:          []Contact{},
		OCC:          []Contact{},
		Other:        []Contact{},
		WorkbookUsed: d.Path,
	}

	query := strings.ToLower(strings.TrimSpace(airline))
	if query == "" { return out }

	for _,row := range d.rows {
		if !strings.Contains(row.company, query) { continue }
		if matchAny(row.title, d.Matchers.DOM) {
			out.DOM = append(out.DOM, row.contact)
		} else if matchAny(row.title, d.Matchers.OCC) {
			out.OCC = append(out.OCC, row.contact)
		} else {
			out.Other = append(out.Other, row.contact)
		}
	}

	return out
}

// }}}

// {{{ helpers

func strOrNil(s string) *string {
	if s == "" { return nil }
	return &s
}

func nonEmpty(strs ...string) []string {
	out := []string{}
	for _,s := range strs {
		if s != "" { out = append(out, s) }
	}
	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
