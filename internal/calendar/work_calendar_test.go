package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/username/bank-holidays/internal/holiday"
	"go.uber.org/zap"
)

// stubSource serves a fixed list or a fixed error
type stubSource struct {
	name     string
	holidays []holiday.Holiday
	err      error
	calls    int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Holidays(_ context.Context, _ int) ([]holiday.Holiday, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.holidays, nil
}

func TestWorkCalendar_GetMonthInfo(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	cal := NewWorkCalendar(NewComputedSource(), 0, logger)

	tests := []struct {
		name         string
		year         int
		month        time.Month
		wantDays     int
		wantHolidays int
		wantWeekends int
		wantWork     int
		wantHours    int
	}{
		{
			name:         "January 2017",
			year:         2017,
			month:        time.January,
			wantDays:     31,
			wantHolidays: 1,
			wantWeekends: 8,
			wantWork:     22,
			wantHours:    154, // 22*7
		},
		{
			name:         "April 2017 Easter on a Sunday counts as holiday",
			year:         2017,
			month:        time.April,
			wantDays:     30,
			wantHolidays: 2,
			wantWeekends: 9,
			wantWork:     19,
			wantHours:    133,
		},
		{
			name:         "May 2017",
			year:         2017,
			month:        time.May,
			wantDays:     31,
			wantHolidays: 3, // May 1, May 8, Ascension
			wantWeekends: 8,
			wantWork:     20,
			wantHours:    140,
		},
		{
			name:         "June 2017",
			year:         2017,
			month:        time.June,
			wantDays:     30,
			wantHolidays: 1, // Pentecost Monday
			wantWeekends: 8,
			wantWork:     21,
			wantHours:    147,
		},
		{
			name:         "May 2008 Ascension on May 1",
			year:         2008,
			month:        time.May,
			wantDays:     31,
			wantHolidays: 3,
			wantWeekends: 9,
			wantWork:     19,
			wantHours:    133,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthInfo, err := cal.GetMonthInfo(tt.year, tt.month)
			if err != nil {
				t.Fatalf("GetMonthInfo() error = %v", err)
			}

			if len(monthInfo.Days) != tt.wantDays {
				t.Errorf("Days count = %d, want %d", len(monthInfo.Days), tt.wantDays)
			}
			if monthInfo.Holidays != tt.wantHolidays {
				t.Errorf("Holidays = %d, want %d", monthInfo.Holidays, tt.wantHolidays)
			}
			if monthInfo.Weekends != tt.wantWeekends {
				t.Errorf("Weekends = %d, want %d", monthInfo.Weekends, tt.wantWeekends)
			}
			if monthInfo.WorkDays != tt.wantWork {
				t.Errorf("WorkDays = %d, want %d", monthInfo.WorkDays, tt.wantWork)
			}
			if monthInfo.WorkingHours != tt.wantHours {
				t.Errorf("WorkingHours = %d, want %d", monthInfo.WorkingHours, tt.wantHours)
			}
		})
	}
}

func TestWorkCalendar_GetDayInfo(t *testing.T) {
	cal := NewWorkCalendar(NewComputedSource(), 8, zap.NewNop())

	tests := []struct {
		name      string
		date      time.Time
		wantType  DayType
		wantHours int
		wantNote  string
	}{
		{"Ascension", time.Date(2017, 5, 25, 0, 0, 0, 0, time.UTC), DayTypeHoliday, 0, holiday.NameAscension},
		{"Easter Sunday", time.Date(2017, 4, 16, 0, 0, 0, 0, time.UTC), DayTypeHoliday, 0, holiday.NameEaster},
		{"Saturday", time.Date(2017, 4, 29, 0, 0, 0, 0, time.UTC), DayTypeWeekend, 0, ""},
		{"Friday", time.Date(2017, 4, 28, 15, 0, 0, 0, time.UTC), DayTypeWorkday, 8, ""},
		{"May 1 2008 keeps the fixed name", time.Date(2008, 5, 1, 0, 0, 0, 0, time.UTC), DayTypeHoliday, 0, "Fête du Travail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dayInfo, err := cal.GetDayInfo(tt.date)
			if err != nil {
				t.Fatalf("GetDayInfo() error = %v", err)
			}

			if dayInfo.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", dayInfo.Type, tt.wantType)
			}
			if dayInfo.WorkingHours != tt.wantHours {
				t.Errorf("WorkingHours = %d, want %d", dayInfo.WorkingHours, tt.wantHours)
			}
			if dayInfo.Note != tt.wantNote {
				t.Errorf("Note = %q, want %q", dayInfo.Note, tt.wantNote)
			}
			if dayInfo.IsWorkday != (tt.wantType == DayTypeWorkday) {
				t.Errorf("IsWorkday = %v for %v", dayInfo.IsWorkday, tt.wantType)
			}
		})
	}
}

func TestWorkCalendar_IsWorkday(t *testing.T) {
	cal := NewWorkCalendar(NewComputedSource(), 0, zap.NewNop())

	isWorkday, hours, err := cal.IsWorkday(time.Date(2017, 7, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("IsWorkday() error = %v", err)
	}
	if isWorkday || hours != 0 {
		t.Errorf("IsWorkday(Bastille Day) = (%v, %d), want (false, 0)", isWorkday, hours)
	}

	isWorkday, hours, err = cal.IsWorkday(time.Date(2017, 7, 13, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("IsWorkday() error = %v", err)
	}
	if !isWorkday || hours != DefaultHoursPerDay {
		t.Errorf("IsWorkday(July 13) = (%v, %d), want (true, %d)", isWorkday, hours, DefaultHoursPerDay)
	}
}

func TestWorkCalendar_SourceError(t *testing.T) {
	source := &stubSource{name: "broken", err: ErrSourceUnavailable}
	cal := NewWorkCalendar(source, 0, zap.NewNop())

	_, _, err := cal.IsWorkday(time.Date(2017, 7, 14, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("IsWorkday() error = %v, want ErrSourceUnavailable", err)
	}
}

func TestWorkCalendar_NoCaching(t *testing.T) {
	source := &stubSource{name: "stub", holidays: holiday.ForYear(2017)}
	cal := NewWorkCalendar(source, 0, zap.NewNop())

	for i := 0; i < 3; i++ {
		if _, err := cal.GetMonthInfo(2017, time.May); err != nil {
			t.Fatalf("GetMonthInfo() error = %v", err)
		}
	}

	if source.calls != 3 {
		t.Errorf("source called %d times, want 3", source.calls)
	}
}

func TestDayType_String(t *testing.T) {
	tests := []struct {
		dayType DayType
		want    string
	}{
		{DayTypeWorkday, "workday"},
		{DayTypeWeekend, "weekend"},
		{DayTypeHoliday, "holiday"},
		{DayType(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dayType.String(); got != tt.want {
			t.Errorf("DayType(%d).String() = %q, want %q", int(tt.dayType), got, tt.want)
		}
	}
}

func TestDayType_UnmarshalText(t *testing.T) {
	for _, want := range []DayType{DayTypeWorkday, DayTypeWeekend, DayTypeHoliday} {
		text, _ := want.MarshalText()

		var got DayType
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, want)
		}
	}

	var dt DayType
	if err := dt.UnmarshalText([]byte("bridge")); err == nil {
		t.Error("UnmarshalText(\"bridge\") expected error, got nil")
	}
}
