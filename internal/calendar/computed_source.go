package calendar

import (
	"context"
	"sort"

	"github.com/username/bank-holidays/internal/holiday"
)

// ComputedSource serves holidays computed locally from the Easter algorithm
type ComputedSource struct{}

// NewComputedSource creates a new ComputedSource
func NewComputedSource() *ComputedSource {
	return &ComputedSource{}
}

// Name returns "computed"
func (ComputedSource) Name() string {
	return "computed"
}

// Holidays returns holiday.ForYear sorted by date
func (ComputedSource) Holidays(_ context.Context, year int) ([]holiday.Holiday, error) {
	holidays := holiday.ForYear(year)
	sortByDate(holidays)
	return holidays, nil
}

func sortByDate(holidays []holiday.Holiday) {
	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
}
