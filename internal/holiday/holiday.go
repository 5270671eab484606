// Package holiday computes French public (bank) holidays.
//
// A year has thirteen holidays: nine on fixed calendar dates and four derived
// from Easter Sunday. Every call recomputes the set for the requested year,
// nothing is kept between calls, so the functions are safe for concurrent use.
package holiday

import (
	"errors"
	"time"

	"github.com/username/bank-holidays/pkg/dateutil"
)

// ErrInvalidInput is returned when a required date or year is absent or malformed
var ErrInvalidInput = errors.New("invalid input")

// Holiday represents one public holiday of a given year
type Holiday struct {
	Date    time.Time `json:"date"`
	Name    string    `json:"name"`
	Movable bool      `json:"movable"` // derived from Easter Sunday
}

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

// fixedHolidays fall on the same month and day every year
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "Jour de l'an"},
	{time.May, 1, "Fête du Travail"},
	{time.May, 8, "Victoire 1945"},
	{time.July, 14, "Fête nationale"},
	{time.August, 15, "Assomption"},
	{time.November, 1, "Toussaint"},
	{time.November, 11, "Armistice 1918"},
	{time.December, 25, "Noël"},
	{time.December, 31, "Saint-Sylvestre"},
}

// Names of the movable holidays
const (
	NameEaster          = "Pâques"
	NameEasterMonday    = "Lundi de Pâques"
	NameAscension       = "Ascension"
	NamePentecostMonday = "Lundi de Pentecôte"
)

// Count is the number of entries ForYear returns
const Count = 13

// ForYear returns the holidays of the given year: the fixed dates in calendar
// order followed by Easter Sunday, Easter Monday, Ascension and Pentecost Monday.
// A movable holiday may share its date with a fixed one (Ascension fell on
// May 1 in 2008); both entries are kept.
func ForYear(year int) []Holiday {
	holidays := make([]Holiday, 0, Count)

	for _, fh := range fixedHolidays {
		holidays = append(holidays, Holiday{
			Date: dateutil.CalendarDay(year, fh.month, fh.day),
			Name: fh.name,
		})
	}

	easter := EasterSunday(year)
	holidays = append(holidays,
		Holiday{Date: easter, Name: NameEaster, Movable: true},
		Holiday{Date: EasterMonday(easter), Name: NameEasterMonday, Movable: true},
		Holiday{Date: Ascension(easter), Name: NameAscension, Movable: true},
		Holiday{Date: PentecostMonday(easter), Name: NamePentecostMonday, Movable: true},
	)

	return holidays
}

// Dates returns the dates of ForYear(year)
func Dates(year int) []time.Time {
	holidays := ForYear(year)
	dates := make([]time.Time, len(holidays))
	for i, h := range holidays {
		dates[i] = h.Date
	}
	return dates
}

// IsHoliday reports whether date is a French public holiday.
// Only the calendar day of date counts, in date's own location.
// The zero time is rejected with ErrInvalidInput.
func IsHoliday(date time.Time) (bool, error) {
	h, err := Lookup(date)
	if err != nil {
		return false, err
	}
	return h != nil, nil
}

// Lookup returns the first holiday falling on date's calendar day, or nil
func Lookup(date time.Time) (*Holiday, error) {
	if date.IsZero() {
		return nil, ErrInvalidInput
	}

	for _, h := range ForYear(date.Year()) {
		if dateutil.IsSameDay(h.Date, date) {
			return &h, nil
		}
	}

	return nil, nil
}
