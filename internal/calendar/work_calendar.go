package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/username/bank-holidays/pkg/dateutil"
	"go.uber.org/zap"
)

// DefaultHoursPerDay matches the 35-hour French working week
const DefaultHoursPerDay = 7

// WorkCalendar implements Calendar on top of a holiday Source.
// Holidays take precedence over weekends; every other weekday is a workday.
type WorkCalendar struct {
	source      Source
	hoursPerDay int
	logger      *zap.Logger
}

// NewWorkCalendar creates a new WorkCalendar
func NewWorkCalendar(source Source, hoursPerDay int, logger *zap.Logger) *WorkCalendar {
	if hoursPerDay <= 0 {
		hoursPerDay = DefaultHoursPerDay
	}

	return &WorkCalendar{
		source:      source,
		hoursPerDay: hoursPerDay,
		logger:      logger,
	}
}

// Source returns the underlying holiday source
func (wc *WorkCalendar) Source() Source {
	return wc.source
}

// IsWorkday checks if the given date is a working day
func (wc *WorkCalendar) IsWorkday(date time.Time) (bool, int, error) {
	dayInfo, err := wc.GetDayInfo(date)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetMonthInfo returns calendar info for the entire month
func (wc *WorkCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	return wc.MonthInfo(context.Background(), year, month)
}

// GetDayInfo returns detailed info for a specific day
func (wc *WorkCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	return wc.DayInfo(context.Background(), date)
}

// DayInfo is GetDayInfo bound to ctx
func (wc *WorkCalendar) DayInfo(ctx context.Context, date time.Time) (*DayInfo, error) {
	monthInfo, err := wc.MonthInfo(ctx, date.Year(), date.Month())
	if err != nil {
		return nil, err
	}

	// Find the specific day
	for _, day := range monthInfo.Days {
		if dateutil.IsSameDay(day.Date, date) {
			return &day, nil
		}
	}

	return nil, fmt.Errorf("day not found in month data: %s", dateutil.FormatDate(date))
}

// MonthInfo is GetMonthInfo bound to ctx
func (wc *WorkCalendar) MonthInfo(ctx context.Context, year int, month time.Month) (*MonthInfo, error) {
	holidays, err := wc.source.Holidays(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays from %s: %w", wc.source.Name(), err)
	}

	// First name wins when two holidays share a date
	names := make(map[string]string, len(holidays))
	for _, h := range holidays {
		key := dateutil.FormatDate(h.Date)
		if _, ok := names[key]; !ok {
			names[key] = h.Name
		}
	}

	daysInMonth := dateutil.DaysInMonth(year, month)
	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := dateutil.CalendarDay(year, month, day)
		info := DayInfo{Date: date}

		if name, ok := names[dateutil.FormatDate(date)]; ok {
			info.Type = DayTypeHoliday
			info.Note = name
			monthInfo.Holidays++
		} else if dateutil.IsWeekend(date) {
			info.Type = DayTypeWeekend
			monthInfo.Weekends++
		} else {
			info.Type = DayTypeWorkday
			info.IsWorkday = true
			info.WorkingHours = wc.hoursPerDay
			monthInfo.WorkDays++
		}

		monthInfo.WorkingHours += info.WorkingHours
		monthInfo.Days = append(monthInfo.Days, info)
	}

	wc.logger.Debug("Month info built",
		zap.String("source", wc.source.Name()),
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("working_hours", monthInfo.WorkingHours))

	return monthInfo, nil
}
