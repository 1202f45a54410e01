// Package holiday computes public-holiday calendars analytically: every date
// is derived from the calendar itself (fixed days, Easter offsets, nth-weekday
// rules, weekend-observance substitution), never fetched from an external
// source. Each supported jurisdiction is a pure generator registered by its
// two-letter code, so substitution-rule differences stay explicit and
// independently testable.
package holiday

import (
	"sort"
	"time"
)

// ISODate is the layout used for holiday set membership across the engine.
// ISO date strings compare and sort correctly as plain strings.
const ISODate = "2006-01-02"

// Country identifies one entry of the calendar registry, exposed so a
// country-selection control can enumerate the supported set.
type Country struct {
	Code string `json:"code" example:"GB"`
	Name string `json:"name" example:"United Kingdom"`
}

// generator produces the raw (unsorted, possibly duplicated) holiday dates of
// one jurisdiction for a year. Generators must be pure and total for any
// reasonable year.
type generator func(year int) []time.Time

type definition struct {
	name     string
	generate generator
}

var registry = map[string]definition{
	"AT": {"Austria", austria},
	"AU": {"Australia", australia},
	"BE": {"Belgium", belgium},
	"BR": {"Brazil", brazil},
	"CA": {"Canada", canada},
	"CH": {"Switzerland", switzerland},
	"DE": {"Germany", germany},
	"DK": {"Denmark", denmark},
	"ES": {"Spain", spain},
	"FI": {"Finland", finland},
	"FR": {"France", france},
	"GB": {"United Kingdom", unitedKingdom},
	"GR": {"Greece", greece},
	"IE": {"Ireland", ireland},
	"IT": {"Italy", italy},
	"NL": {"Netherlands", netherlands},
	"NO": {"Norway", norway},
	"NZ": {"New Zealand", newZealand},
	"PL": {"Poland", poland},
	"PT": {"Portugal", portugal},
	"SE": {"Sweden", sweden},
	"US": {"United States", unitedStates},
}

// ForYear returns the public holidays of a country for a year as sorted,
// duplicate-free ISO date strings. An unknown code yields an empty list,
// never an error: callers treat "no calendar" and "no holidays" identically.
func ForYear(code string, year int) []string {
	def, ok := registry[code]
	if !ok {
		return nil
	}

	raw := def.generate(year)
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, d := range raw {
		iso := d.Format(ISODate)
		if _, dup := seen[iso]; dup {
			continue
		}
		seen[iso] = struct{}{}
		out = append(out, iso)
	}
	sort.Strings(out)
	return out
}

// Countries enumerates the registry sorted by code.
func Countries() []Country {
	out := make([]Country, 0, len(registry))
	for code, def := range registry {
		out = append(out, Country{Code: code, Name: def.name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
