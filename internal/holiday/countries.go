package holiday

import "time"

// Each generator lists the nationwide non-working days of one jurisdiction.
// Regional holidays are deliberately left out: a merchant models those as
// custom holidays on top of the country calendar.

func unitedStates(year int) []time.Time {
	var days []time.Time
	newYear := fixed(year, time.January, 1)
	days = append(days, newYear)
	if newYear.Weekday() == time.Sunday {
		days = append(days, newYear.AddDate(0, 0, 1))
	}
	// A Saturday January 1 of the following year is observed on December 31
	// of this one, so the shifted day stays inside the year being generated.
	if fixed(year+1, time.January, 1).Weekday() == time.Saturday {
		days = append(days, fixed(year, time.December, 31))
	}
	days = append(days, nthWeekday(year, time.January, time.Monday, 3))    // Martin Luther King Jr. Day
	days = append(days, nthWeekday(year, time.February, time.Monday, 3))   // Presidents' Day
	days = append(days, nthWeekday(year, time.May, time.Monday, -1))       // Memorial Day
	days = append(days, observedUS(fixed(year, time.June, 19))...)         // Juneteenth
	days = append(days, observedUS(fixed(year, time.July, 4))...)          // Independence Day
	days = append(days, nthWeekday(year, time.September, time.Monday, 1))  // Labor Day
	days = append(days, nthWeekday(year, time.October, time.Monday, 2))    // Columbus Day
	days = append(days, observedUS(fixed(year, time.November, 11))...)     // Veterans Day
	days = append(days, nthWeekday(year, time.November, time.Thursday, 4)) // Thanksgiving
	days = append(days, observedUS(fixed(year, time.December, 25))...)
	return days
}

func unitedKingdom(year int) []time.Time {
	easter := gregorianEaster(year)

	days := mondayised(fixed(year, time.January, 1))
	days = append(days, easter.AddDate(0, 0, -2)) // Good Friday
	days = append(days, easter.AddDate(0, 0, 1))  // Easter Monday
	days = append(days, nthWeekday(year, time.May, time.Monday, 1))     // Early May bank holiday
	days = append(days, nthWeekday(year, time.May, time.Monday, -1))    // Spring bank holiday
	days = append(days, nthWeekday(year, time.August, time.Monday, -1)) // Summer bank holiday
	days = append(days, consecutivePair(fixed(year, time.December, 25))...)
	return days
}

func canada(year int) []time.Time {
	easter := gregorianEaster(year)

	days := mondayised(fixed(year, time.January, 1))
	days = append(days, nthWeekday(year, time.February, time.Monday, 3)) // Family Day
	days = append(days, easter.AddDate(0, 0, -2))
	days = append(days, mondayBefore(year, time.May, 25)) // Victoria Day
	days = append(days, mondayised(fixed(year, time.July, 1))...)
	days = append(days, nthWeekday(year, time.August, time.Monday, 1))    // Civic Holiday
	days = append(days, nthWeekday(year, time.September, time.Monday, 1)) // Labour Day
	days = append(days, fixed(year, time.September, 30))                  // Truth and Reconciliation
	days = append(days, nthWeekday(year, time.October, time.Monday, 2))   // Thanksgiving
	days = append(days, fixed(year, time.November, 11))
	days = append(days, consecutivePair(fixed(year, time.December, 25))...)
	return days
}

func australia(year int) []time.Time {
	easter := gregorianEaster(year)

	days := mondayised(fixed(year, time.January, 1))
	days = append(days, mondayised(fixed(year, time.January, 26))...) // Australia Day
	days = append(days, easter.AddDate(0, 0, -2))
	days = append(days, easter.AddDate(0, 0, 1))
	days = append(days, fixed(year, time.April, 25))               // Anzac Day
	days = append(days, nthWeekday(year, time.June, time.Monday, 2)) // King's Birthday
	days = append(days, consecutivePair(fixed(year, time.December, 25))...)
	return days
}

func newZealand(year int) []time.Time {
	easter := gregorianEaster(year)

	days := consecutivePair(fixed(year, time.January, 1)) // New Year's Day + Day after
	days = append(days, mondayised(fixed(year, time.February, 6))...) // Waitangi Day
	days = append(days, easter.AddDate(0, 0, -2))
	days = append(days, easter.AddDate(0, 0, 1))
	days = append(days, mondayised(fixed(year, time.April, 25))...) // Anzac Day
	days = append(days, nthWeekday(year, time.June, time.Monday, 1))  // King's Birthday
	days = append(days, nthWeekday(year, time.October, time.Monday, 4)) // Labour Day
	days = append(days, consecutivePair(fixed(year, time.December, 25))...)
	return days
}

func ireland(year int) []time.Time {
	easter := gregorianEaster(year)

	days := []time.Time{fixed(year, time.January, 1)}
	days = append(days, nthWeekday(year, time.February, time.Monday, 1)) // St Brigid's Day
	days = append(days, fixed(year, time.March, 17))                     // St Patrick's Day
	days = append(days, easter.AddDate(0, 0, 1))
	days = append(days, nthWeekday(year, time.May, time.Monday, 1))
	days = append(days, nthWeekday(year, time.June, time.Monday, 1))
	days = append(days, nthWeekday(year, time.August, time.Monday, 1))
	days = append(days, nthWeekday(year, time.October, time.Monday, -1))
	days = append(days, fixed(year, time.December, 25), fixed(year, time.December, 26))
	return days
}

func germany(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		easter.AddDate(0, 0, -2),
		easter.AddDate(0, 0, 1),
		fixed(year, time.May, 1),
		easter.AddDate(0, 0, 39), // Ascension
		easter.AddDate(0, 0, 50), // Whit Monday
		fixed(year, time.October, 3),
		fixed(year, time.December, 25),
		fixed(year, time.December, 26),
	}
}

func france(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		easter.AddDate(0, 0, 1),
		fixed(year, time.May, 1),
		fixed(year, time.May, 8),
		easter.AddDate(0, 0, 39),
		easter.AddDate(0, 0, 50),
		fixed(year, time.July, 14),
		fixed(year, time.August, 15),
		fixed(year, time.November, 1),
		fixed(year, time.November, 11),
		fixed(year, time.December, 25),
	}
}

func netherlands(year int) []time.Time {
	easter := gregorianEaster(year)

	// King's Day moves to the preceding Saturday when April 27 is a Sunday.
	kingsDay := fixed(year, time.April, 27)
	if kingsDay.Weekday() == time.Sunday {
		kingsDay = fixed(year, time.April, 26)
	}

	return []time.Time{
		fixed(year, time.January, 1),
		easter.AddDate(0, 0, -2),
		easter,
		easter.AddDate(0, 0, 1),
		kingsDay,
		fixed(year, time.May, 5), // Liberation Day
		easter.AddDate(0, 0, 39),
		easter.AddDate(0, 0, 49),
		easter.AddDate(0, 0, 50),
		fixed(year, time.December, 25),
		fixed(year, time.December, 26),
	}
}

func belgium(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		easter.AddDate(0, 0, 1),
		fixed(year, time.May, 1),
		easter.AddDate(0, 0, 39),
		easter.AddDate(0, 0, 50),
		fixed(year, time.July, 21),
		fixed(year, time.August, 15),
		fixed(year, time.November, 1),
		fixed(year, time.November, 11),
		fixed(year, time.December, 25),
	}
}

func austria(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		fixed(year, time.January, 6),
		easter.AddDate(0, 0, 1),
		fixed(year, time.May, 1),
		easter.AddDate(0, 0, 39),
		easter.AddDate(0, 0, 50),
		easter.AddDate(0, 0, 60), // Corpus Christi
		fixed(year, time.August, 15),
		fixed(year, time.October, 26),
		fixed(year, time.November, 1),
		fixed(year, time.December, 8),
		fixed(year, time.December, 25),
		fixed(year, time.December, 26),
	}
}

func switzerland(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		easter.AddDate(0, 0, -2),
		easter.AddDate(0, 0, 1),
		easter.AddDate(0, 0, 39),
		easter.AddDate(0, 0, 50),
		fixed(year, time.August, 1),
		fixed(year, time.December, 25),
		fixed(year, time.December, 26),
	}
}

func sweden(year int) []time.Time {
	easter := gregorianEaster(year)
	midsummer := saturdayBetween(year, time.June, 20, 26)

	return []time.Time{
		fixed(year, time.January, 1),
		fixed(year, time.January, 6),
		easter.AddDate(0, 0, -2),
		easter,
		easter.AddDate(0, 0, 1),
		fixed(year, time.May, 1),
		easter.AddDate(0, 0, 39),
		easter.AddDate(0, 0, 49), // Whit Sunday
		fixed(year, time.June, 6),
		midsummer.AddDate(0, 0, -1), // Midsummer Eve
		midsummer,
		allSaintsSaturday(year),
		fixed(year, time.December, 24),
		fixed(year, time.December, 25),
		fixed(year, time.December, 26),
		fixed(year, time.December, 31),
	}
}

func norway(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		easter.AddDate(0, 0, -3), // Maundy Thursday
		easter.AddDate(0, 0, -2),
		easter,
		easter.AddDate(0, 0, 1),
		fixed(year, time.May, 1),
		fixed(year, time.May, 17), // Constitution Day
		easter.AddDate(0, 0, 39),
		easter.AddDate(0, 0, 49),
		easter.AddDate(0, 0, 50),
		fixed(year, time.December, 25),
		fixed(year, time.December, 26),
	}
}

func denmark(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		easter.AddDate(0, 0, -3),
		easter.AddDate(0, 0, -2),
		easter,
		easter.AddDate(0, 0, 1),
		easter.AddDate(0, 0, 26), // Great Prayer Day
		easter.AddDate(0, 0, 39),
		easter.AddDate(0, 0, 49),
		easter.AddDate(0, 0, 50),
		fixed(year, time.December, 25),
		fixed(year, time.December, 26),
	}
}

func finland(year int) []time.Time {
	easter := gregorianEaster(year)
	midsummer := saturdayBetween(year, time.June, 20, 26)

	return []time.Time{
		fixed(year, time.January, 1),
		fixed(year, time.January, 6),
		easter.AddDate(0, 0, -2),
		easter,
		easter.AddDate(0, 0, 1),
		fixed(year, time.May, 1),
		easter.AddDate(0, 0, 39),
		easter.AddDate(0, 0, 49),
		midsummer.AddDate(0, 0, -1),
		midsummer,
		allSaintsSaturday(year),
		fixed(year, time.December, 6), // Independence Day
		fixed(year, time.December, 24),
		fixed(year, time.December, 25),
		fixed(year, time.December, 26),
	}
}

func spain(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		fixed(year, time.January, 6),
		easter.AddDate(0, 0, -2),
		fixed(year, time.May, 1),
		fixed(year, time.August, 15),
		fixed(year, time.October, 12),
		fixed(year, time.November, 1),
		fixed(year, time.December, 6),
		fixed(year, time.December, 8),
		fixed(year, time.December, 25),
	}
}

func italy(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		fixed(year, time.January, 6),
		easter.AddDate(0, 0, 1),
		fixed(year, time.April, 25),
		fixed(year, time.May, 1),
		fixed(year, time.June, 2),
		fixed(year, time.August, 15),
		fixed(year, time.November, 1),
		fixed(year, time.December, 8),
		fixed(year, time.December, 25),
		fixed(year, time.December, 26),
	}
}

func portugal(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		easter.AddDate(0, 0, -2),
		easter,
		fixed(year, time.April, 25),
		fixed(year, time.May, 1),
		easter.AddDate(0, 0, 60),
		fixed(year, time.June, 10),
		fixed(year, time.August, 15),
		fixed(year, time.October, 5),
		fixed(year, time.November, 1),
		fixed(year, time.December, 1),
		fixed(year, time.December, 8),
		fixed(year, time.December, 25),
	}
}

func poland(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		fixed(year, time.January, 6),
		easter,
		easter.AddDate(0, 0, 1),
		fixed(year, time.May, 1),
		fixed(year, time.May, 3),
		easter.AddDate(0, 0, 49),
		easter.AddDate(0, 0, 60),
		fixed(year, time.August, 15),
		fixed(year, time.November, 1),
		fixed(year, time.November, 11),
		fixed(year, time.December, 25),
		fixed(year, time.December, 26),
	}
}

func greece(year int) []time.Time {
	easter := orthodoxEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		fixed(year, time.January, 6),
		easter.AddDate(0, 0, -48), // Clean Monday
		fixed(year, time.March, 25),
		easter.AddDate(0, 0, -2),
		easter.AddDate(0, 0, 1),
		fixed(year, time.May, 1),
		easter.AddDate(0, 0, 50), // Holy Spirit Monday
		fixed(year, time.August, 15),
		fixed(year, time.October, 28),
		fixed(year, time.December, 25),
		fixed(year, time.December, 26),
	}
}

func brazil(year int) []time.Time {
	easter := gregorianEaster(year)

	return []time.Time{
		fixed(year, time.January, 1),
		easter.AddDate(0, 0, -48), // Carnival Monday
		easter.AddDate(0, 0, -47), // Carnival Tuesday
		easter.AddDate(0, 0, -2),
		fixed(year, time.April, 21), // Tiradentes
		fixed(year, time.May, 1),
		easter.AddDate(0, 0, 60),
		fixed(year, time.September, 7),
		fixed(year, time.October, 12),
		fixed(year, time.November, 2),
		fixed(year, time.November, 15),
		fixed(year, time.December, 25),
	}
}
