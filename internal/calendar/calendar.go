package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/username/bank-holidays/internal/holiday"
)

// ErrSourceUnavailable is returned when a holiday source cannot serve a year
var ErrSourceUnavailable = errors.New("holiday source unavailable")

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
)

// String returns the lowercase name of the day type
func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// MarshalText encodes the day type by name
func (t DayType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a day type name
func (t *DayType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "workday":
		*t = DayTypeWorkday
	case "weekend":
		*t = DayTypeWeekend
	case "holiday":
		*t = DayTypeHoliday
	default:
		return fmt.Errorf("unknown day type %q", text)
	}
	return nil
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date         time.Time `json:"date"`
	Type         DayType   `json:"type"`
	WorkingHours int       `json:"working_hours"`
	IsWorkday    bool      `json:"is_workday"`
	Note         string    `json:"note,omitempty"`
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	WorkingHours int        `json:"working_hours"` // Total working hours in the month
	WorkDays     int        `json:"work_days"`
	Weekends     int        `json:"weekends"`
	Holidays     int        `json:"holidays"`
	Days         []DayInfo  `json:"days"`
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) (bool, int, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) (*DayInfo, error)
}

// Source provides the list of public holidays of a year
type Source interface {
	// Name identifies the source in logs and reports
	Name() string

	// Holidays returns the holidays of the given year sorted by date
	Holidays(ctx context.Context, year int) ([]holiday.Holiday, error)
}
