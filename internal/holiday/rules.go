package holiday

import "time"

// fixed builds the date of a fixed calendar holiday.
func fixed(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// nthWeekday returns the n-th occurrence of a weekday within a month:
// n = 1 is the first occurrence, n = 2 the second, and n = -1 the last.
// For n = -1 it starts at the month's final day and walks back to the
// nearest match; for n >= 1 it finds the first match and adds (n-1) weeks.
func nthWeekday(year int, month time.Month, wd time.Weekday, n int) time.Time {
	if n == -1 {
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
		back := (int(last.Weekday()) - int(wd) + 7) % 7
		return last.AddDate(0, 0, -back)
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	fwd := (int(wd) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, fwd+(n-1)*7)
}

// saturdayBetween returns the Saturday inside an inclusive day range of one
// month. Midsummer-style holidays pin their Saturday this way (the range is
// always seven days wide, so exactly one Saturday exists).
func saturdayBetween(year int, month time.Month, fromDay, toDay int) time.Time {
	for day := fromDay; day < toDay; day++ {
		if d := fixed(year, month, day); d.Weekday() == time.Saturday {
			return d
		}
	}
	return fixed(year, month, toDay)
}

// allSaintsSaturday returns the Saturday of the Oct 31 - Nov 6 window, the
// Swedish/Finnish All Saints convention. The window crosses a month boundary
// (the last October day or the first November days), so it walks dates
// instead of day-of-month numbers.
func allSaintsSaturday(year int) time.Time {
	d := fixed(year, time.October, 31)
	for d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// mondayBefore returns the Monday strictly before a fixed day of month
// (Victoria Day pins to the Monday preceding May 25).
func mondayBefore(year int, month time.Month, day int) time.Time {
	d := fixed(year, month, day-1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// observedUS applies the US federal convention to a fixed holiday: a
// Saturday holiday adds the preceding Friday, a Sunday holiday adds the
// following Monday. The original date stays in the list.
func observedUS(d time.Time) []time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return []time.Time{d, d.AddDate(0, 0, -1)}
	case time.Sunday:
		return []time.Time{d, d.AddDate(0, 0, 1)}
	}
	return []time.Time{d}
}

// mondayised applies the single-day substitution used by GB New Year and the
// AU/NZ national days: a weekend holiday adds the following Monday.
func mondayised(d time.Time) []time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return []time.Time{d, d.AddDate(0, 0, 2)}
	case time.Sunday:
		return []time.Time{d, d.AddDate(0, 0, 1)}
	}
	return []time.Time{d}
}

// consecutivePair applies the Christmas/Boxing-Day pair convention shared by
// GB, CA, AU and NZ (NZ also uses it for Jan 1/Jan 2): the pair's weekend
// days substitute onto the next weekdays that are not already taken by the
// pair itself.
//
//	first on Fri: second lands Sat and substitutes onto Mon.
//	first on Sat: both land on the weekend and substitute onto Mon and Tue.
//	first on Sun: second already holds Mon, first substitutes onto Tue.
func consecutivePair(first time.Time) []time.Time {
	second := first.AddDate(0, 0, 1)
	out := []time.Time{first, second}
	switch first.Weekday() {
	case time.Friday:
		out = append(out, first.AddDate(0, 0, 3))
	case time.Saturday:
		out = append(out, first.AddDate(0, 0, 2), first.AddDate(0, 0, 3))
	case time.Sunday:
		out = append(out, first.AddDate(0, 0, 2))
	}
	return out
}
