package holiday

import (
	"time"

	"github.com/username/bank-holidays/pkg/dateutil"
)

// Day offsets of the movable holidays from Easter Sunday
const (
	easterMondayOffset    = 1
	ascensionOffset       = 39
	pentecostMondayOffset = 50
)

// EasterSunday returns the Gregorian date of Easter Sunday for the given year
// using the anonymous Gregorian (Meeus/Jones/Butcher) algorithm.
// The result is midnight UTC. Years before 1583 are not validated.
func EasterSunday(year int) time.Time {
	a := year % 19 // position in the Metonic cycle
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30 // epact
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7 // dominical letter
	m := (a + 11*h + 22*l) / 451
	n := h + l - 7*m + 114

	month := n / 31
	day := (n % 31) + 1

	return dateutil.CalendarDay(year, time.Month(month), day)
}

// EasterSundayConway computes Easter Sunday with Conway's pivot-day method.
// It must agree with EasterSunday for every Gregorian year and serves as a cross-check.
func EasterSundayConway(year int) time.Time {
	s := year / 100
	t := year % 100
	a := t / 4
	p := s % 4
	jps := (9 - 2*p) % 7    // pivot day of the century
	jp := (jps + t + a) % 7 // pivot day of the year
	gn := year%19 + 1       // golden number
	b := s / 4
	r := (8 * (s + 11)) / 25
	corr := -s + b + r // secular correction

	// corr is negative, Go's % keeps the sign of the dividend
	d := (((11*gn + corr) % 30) + 30) % 30 // paschal full moon
	h := (551 - 19*d + gn) / 544           // epact exceptions
	e := (50 - d - h) % 7                  // full moon distance to the pivot day
	f := (e + jp) % 7                      // weekday of the full moon

	r2 := 57 - d - f - h // Easter as a day of March
	if r2 <= 31 {
		return dateutil.CalendarDay(year, time.March, r2)
	}
	return dateutil.CalendarDay(year, time.April, r2-31)
}

// EasterMonday returns the day after Easter Sunday
func EasterMonday(easter time.Time) time.Time {
	return easter.AddDate(0, 0, easterMondayOffset)
}

// Ascension returns Ascension Thursday, 39 days after Easter Sunday
func Ascension(easter time.Time) time.Time {
	return easter.AddDate(0, 0, ascensionOffset)
}

// PentecostMonday returns Whit Monday, 50 days after Easter Sunday
func PentecostMonday(easter time.Time) time.Time {
	return easter.AddDate(0, 0, pentecostMondayOffset)
}
