// Package schedule computes dispatch and delivery dates from merchant
// settings: it resolves per-rule overrides against the global configuration,
// walks business days past cutoffs, closed days and public holidays, and
// produces the concrete dates the message templates present.
//
// Every function here is a pure transform of its inputs plus the instant the
// caller passes in; nothing is cached between evaluations, so concurrent
// calls need no coordination.
package schedule

import (
	"time"

	"github.com/merchware/shipcast/internal/domain/models"
	"github.com/merchware/shipcast/internal/holiday"
)

// maxWalk caps the day-by-day search so a configuration that excludes every
// candidate day degrades to a best-effort date instead of looping.
const maxWalk = 60

// LocalNow reinterprets an instant in the configured IANA timezone so day
// boundaries follow the merchant's wall clock rather than the server's.
// A blank or unresolvable timezone leaves the instant as given.
func LocalNow(now time.Time, tz string) time.Time {
	if tz == "" {
		return now
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return now
	}
	return now.In(loc)
}

// Advance steps forward from the day after from, counting days the excluded
// predicate lets through, and returns the date of the count-th qualifying
// day. A count of zero or less returns from unchanged. After maxWalk
// attempts the last date reached is returned even if count was not met.
func Advance(from time.Time, excluded func(time.Time) bool, count int) time.Time {
	if count <= 0 {
		return from
	}
	d := from
	found := 0
	for i := 0; i < maxWalk; i++ {
		d = d.AddDate(0, 0, 1)
		if excluded(d) {
			continue
		}
		found++
		if found == count {
			break
		}
	}
	return d
}

// holidayIndex memoizes one country's holiday lookups by year for the span
// of a single evaluation. Not safe for concurrent use; Compute builds a
// fresh one per call.
type holidayIndex struct {
	country string
	years   map[int]map[string]bool
}

func newHolidayIndex(country string) *holidayIndex {
	return &holidayIndex{country: country, years: make(map[int]map[string]bool)}
}

func (h *holidayIndex) contains(d time.Time) bool {
	if h.country == "" {
		return false
	}
	set, ok := h.years[d.Year()]
	if !ok {
		set = make(map[string]bool)
		for _, iso := range holiday.ForYear(h.country, d.Year()) {
			set[iso] = true
		}
		h.years[d.Year()] = set
	}
	return set[d.Format(holiday.ISODate)]
}

// nonOperating builds the exclusion predicate for one weekday set: a date is
// excluded when its weekday is in the set, its ISO date is a custom holiday,
// or it is a public holiday of the configured country.
func nonOperating(days map[time.Weekday]bool, custom map[string]bool, hols *holidayIndex) func(time.Time) bool {
	return func(d time.Time) bool {
		if days[d.Weekday()] {
			return true
		}
		if custom[d.Format(holiday.ISODate)] {
			return true
		}
		return hols.contains(d)
	}
}

// Compute evaluates one schedule at the given instant under the resolved
// parameters:
//
//  1. Shipping date is today when local now is before today's cutoff and
//     today is dispatch-eligible, otherwise the next dispatch-eligible day.
//  2. A positive lead time advances the shipping date by that many further
//     dispatch-eligible days.
//  3. The delivery window advances from the shipping date by EtaMin and
//     EtaMax courier-eligible days independently; the express date by one.
//
// The dispatch set (closed days) and the courier set (no-delivery days) are
// distinct exclusion sets and are never mixed. An inverted window
// (EtaMin > EtaMax) is computed as given; policing it is the caller's
// concern.
func Compute(now time.Time, eff Effective) models.Schedule {
	local := LocalNow(now, eff.Timezone)
	today := dateOf(local)

	hols := newHolidayIndex(eff.Country)
	dispatch := nonOperating(eff.ClosedDays, eff.Custom, hols)
	courier := nonOperating(eff.CourierDays, eff.Custom, hols)

	shipping := today
	if !beforeCutoff(local, eff.CutoffFor(today)) || dispatch(today) {
		shipping = Advance(today, dispatch, 1)
	}
	if eff.LeadTime > 0 {
		shipping = Advance(shipping, dispatch, eff.LeadTime)
	}

	cut := eff.CutoffFor(shipping)
	return models.Schedule{
		ShippingDate: shipping,
		DeliveryMin:  Advance(shipping, courier, eff.EtaMin),
		DeliveryMax:  Advance(shipping, courier, eff.EtaMax),
		ExpressDate:  Advance(shipping, courier, 1),
		CutoffAt: time.Date(shipping.Year(), shipping.Month(), shipping.Day(),
			cut.Hour, cut.Minute, 0, 0, local.Location()),
	}
}

// beforeCutoff reports whether the local time of day is strictly earlier
// than the cutoff.
func beforeCutoff(local time.Time, cutoff TimeOfDay) bool {
	return local.Hour()*60+local.Minute() < cutoff.minutes()
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
