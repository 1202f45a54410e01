package holiday

import "time"

// gregorianEaster returns the date of Easter Sunday for a given year
// (Meeus/Jones/Butcher algorithm, valid for the Gregorian era).
func gregorianEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h+l-7*m+114)%31 + 1)

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// orthodoxEaster returns the date of Orthodox Easter Sunday on the Gregorian
// calendar. The modular arithmetic runs on the Julian cycle (Meeus Julian
// algorithm); the resulting Julian date is shifted by the fixed 13-day
// Julian-Gregorian offset, which holds for 1900-2099. Outside that window the
// offset differs and the result drifts; the limitation is documented rather
// than generalized.
func orthodoxEaster(year int) time.Time {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := ((d+e+114)%31 + 1)

	julian := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return julian.AddDate(0, 0, 13)
}
