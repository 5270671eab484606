package calendar

import (
	"context"
	"fmt"

	"github.com/username/bank-holidays/internal/holiday"
	"github.com/username/bank-holidays/pkg/dateutil"
)

// Report is the outcome of checking computed holidays against a reference source
type Report struct {
	Year      int               `json:"year"`
	Reference string            `json:"reference"`
	Matched   int               `json:"matched"`
	Missing   []holiday.Holiday `json:"missing"` // in the reference, not computed
	Extra     []holiday.Holiday `json:"extra"`   // computed, not in the reference
}

// OK reports whether every reference date was computed
func (r *Report) OK() bool {
	return len(r.Missing) == 0
}

// Compare matches holidays by calendar date.
// Names are not compared since each source words them differently.
func Compare(year int, computed, reference []holiday.Holiday) *Report {
	report := &Report{Year: year}

	computedDates := dateSet(computed)
	referenceDates := dateSet(reference)

	for _, h := range reference {
		if computedDates[dateutil.FormatDate(h.Date)] {
			report.Matched++
		} else {
			report.Missing = append(report.Missing, h)
		}
	}

	for _, h := range computed {
		if !referenceDates[dateutil.FormatDate(h.Date)] {
			report.Extra = append(report.Extra, h)
		}
	}

	return report
}

// Verify compares the computed holidays of year with those of reference
func Verify(ctx context.Context, year int, reference Source) (*Report, error) {
	computed, err := NewComputedSource().Holidays(ctx, year)
	if err != nil {
		return nil, err
	}

	official, err := reference.Holidays(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get reference holidays from %s: %w", reference.Name(), err)
	}

	report := Compare(year, computed, official)
	report.Reference = reference.Name()
	return report, nil
}

func dateSet(holidays []holiday.Holiday) map[string]bool {
	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[dateutil.FormatDate(h.Date)] = true
	}
	return set
}
