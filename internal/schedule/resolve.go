package schedule

import (
	"time"

	"github.com/merchware/shipcast/internal/domain/models"
)

// defaultCutoff applies when neither the rule nor the global settings carry
// a parseable cutoff time.
const defaultCutoff = "14:00"

// Effective is the merged parameter set a single evaluation runs under,
// produced by Resolve and consumed by Compute. Weekend cutoffs are nil when
// no weekend-specific override is in force, in which case Cutoff applies on
// those days too.
type Effective struct {
	Cutoff         TimeOfDay
	SaturdayCutoff *TimeOfDay
	SundayCutoff   *TimeOfDay
	LeadTime       int
	ClosedDays     map[time.Weekday]bool
	CourierDays    map[time.Weekday]bool
	EtaMin         int
	EtaMax         int
	Country        string
	Custom         map[string]bool
	Timezone       string
}

// CutoffFor returns the cutoff in force on a given date: the weekend
// override when the date is a Saturday or Sunday and one is configured,
// the weekday cutoff otherwise.
func (e Effective) CutoffFor(d time.Time) TimeOfDay {
	switch d.Weekday() {
	case time.Saturday:
		if e.SaturdayCutoff != nil {
			return *e.SaturdayCutoff
		}
	case time.Sunday:
		if e.SundayCutoff != nil {
			return *e.SundayCutoff
		}
	}
	return e.Cutoff
}

// Resolve merges the global settings with one rule's overrides. The four
// categories (cutoff times, lead time, closed days, courier days) resolve
// independently: each override flag selects the authoritative source for its
// own category and nothing else. A rule value absent under an active flag
// falls back to the global value, except weekend cutoffs, which fall back to
// "no weekend override" so the resolved weekday cutoff stays in force.
func Resolve(global models.Settings, rs models.RuleSettings) Effective {
	eff := Effective{
		LeadTime:    global.LeadTime,
		ClosedDays:  weekdaySet(global.ClosedDays),
		CourierDays: weekdaySet(global.CourierDays),
		EtaMin:      rs.EtaMin,
		EtaMax:      rs.EtaMax,
		Country:     global.HolidayCountry,
		Custom:      customSet(global.CustomHolidays),
		Timezone:    global.Timezone,
	}

	weekday := global.CutoffTime
	saturday := global.SaturdayCutoff
	sunday := global.SundayCutoff
	if rs.OverrideCutoffTimes {
		if rs.CutoffTime != nil && *rs.CutoffTime != "" {
			weekday = *rs.CutoffTime
		}
		saturday = strValue(rs.SaturdayCutoff)
		sunday = strValue(rs.SundayCutoff)
	}
	eff.Cutoff = firstCutoff(weekday, global.CutoffTime)
	eff.SaturdayCutoff = weekendCutoff(saturday)
	eff.SundayCutoff = weekendCutoff(sunday)

	if rs.OverrideLeadTime && rs.LeadTime != nil {
		eff.LeadTime = *rs.LeadTime
	}
	if rs.OverrideClosedDays && rs.ClosedDays != nil {
		eff.ClosedDays = weekdaySet(rs.ClosedDays)
	}
	if rs.OverrideCourierDays && rs.CourierDays != nil {
		eff.CourierDays = weekdaySet(rs.CourierDays)
	}
	return eff
}

// firstCutoff returns the first candidate that parses as a time of day, or
// the hardcoded default when none does.
func firstCutoff(candidates ...string) TimeOfDay {
	for _, c := range candidates {
		if t, err := ParseTimeOfDay(c); err == nil {
			return t
		}
	}
	t, _ := ParseTimeOfDay(defaultCutoff)
	return t
}

// weekendCutoff parses an optional weekend-specific cutoff. Blank or
// malformed values mean no override, never a fallback to another source.
func weekendCutoff(s string) *TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return nil
	}
	return &t
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func weekdaySet(days []time.Weekday) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

func customSet(holidays []models.CustomHoliday) map[string]bool {
	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		if h.Date != "" {
			set[h.Date] = true
		}
	}
	return set
}
