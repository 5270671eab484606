package calendar

import (
	"context"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/fr"
	"github.com/username/bank-holidays/internal/holiday"
	"github.com/username/bank-holidays/pkg/dateutil"
)

// LibrarySource implements Source with the French holiday definitions of
// github.com/rickar/cal, an independent implementation used for verification
type LibrarySource struct {
	definitions []*cal.Holiday
}

// NewLibrarySource creates a new LibrarySource for metropolitan France
func NewLibrarySource() *LibrarySource {
	return &LibrarySource{definitions: fr.Holidays}
}

// Name returns "library"
func (s *LibrarySource) Name() string {
	return "library"
}

// Holidays evaluates every definition for the given year
func (s *LibrarySource) Holidays(_ context.Context, year int) ([]holiday.Holiday, error) {
	holidays := make([]holiday.Holiday, 0, len(s.definitions))
	for _, def := range s.definitions {
		actual, _ := def.Calc(year)
		if actual.IsZero() {
			// Not observed that year
			continue
		}
		holidays = append(holidays, holiday.Holiday{
			Date: dateutil.CalendarDay(actual.Date()),
			Name: def.Name,
		})
	}

	sortByDate(holidays)
	return holidays, nil
}
