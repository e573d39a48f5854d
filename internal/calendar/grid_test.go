package calendar

import (
	"testing"
	"time"

	"github.com/username/calendario/pkg/dateutil"
)

func TestBuildMonthGrid_Shape(t *testing.T) {
	holidays := DefaultHolidays()
	today := time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local)

	for _, year := range []int{2024, 2025, 2026, 2027, 2028} {
		for month := time.January; month <= time.December; month++ {
			days := BuildMonthGrid(year, month, holidays, today)

			if len(days) != GridSize {
				t.Fatalf("%d-%02d: len = %d, want %d", year, month, len(days), GridSize)
			}
			if days[0].Date.Weekday() != time.Monday {
				t.Errorf("%d-%02d: first cell is %v, want Monday", year, month, days[0].Date.Weekday())
			}
			if days[GridSize-1].Date.Weekday() != time.Sunday {
				t.Errorf("%d-%02d: last cell is %v, want Sunday", year, month, days[GridSize-1].Date.Weekday())
			}

			for i := 1; i < len(days); i++ {
				if dateutil.DaysBetween(days[i-1].Date, days[i].Date) != 1 {
					t.Fatalf("%d-%02d: cells %d and %d are not consecutive days", year, month, i-1, i)
				}
			}

			current := 0
			for _, d := range days {
				if d.IsCurrentMonth {
					current++
					if d.Date.Month() != month {
						t.Errorf("%d-%02d: current-month cell has month %v", year, month, d.Date.Month())
					}
				}
			}
			if want := dateutil.DaysInMonth(year, month); current != want {
				t.Errorf("%d-%02d: current-month run = %d, want %d", year, month, current, want)
			}
		}
	}
}

func TestBuildMonthGrid_January2026(t *testing.T) {
	today := time.Date(2026, 10, 14, 0, 0, 0, 0, time.Local)
	days := BuildMonthGrid(2026, time.January, DefaultHolidays(), today)

	first := days[3]
	if !first.IsCurrentMonth || first.Date.Day() != 1 || first.Date.Month() != time.January {
		t.Fatalf("days[3] = %v, want 2026-01-01", first.Date)
	}
	if !first.IsHoliday {
		t.Error("2026-01-01 IsHoliday = false, want true")
	}
	if first.HolidayName != "Año Nuevo" {
		t.Errorf("2026-01-01 HolidayName = %q, want %q", first.HolidayName, "Año Nuevo")
	}

	// Leading cells come from December 2025
	for i, want := range []int{29, 30, 31} {
		d := days[i]
		if d.IsCurrentMonth || d.Date.Month() != time.December || d.Date.Day() != want || d.Date.Year() != 2025 {
			t.Errorf("days[%d] = %v, want 2025-12-%02d outside month", i, d.Date, want)
		}
	}
}

func TestBuildMonthGrid_HolidayFlags(t *testing.T) {
	holidays := DefaultHolidays()
	today := time.Date(2026, 10, 14, 0, 0, 0, 0, time.Local)

	for month := time.January; month <= time.December; month++ {
		for _, d := range BuildMonthGrid(2026, month, holidays, today) {
			name, named := holidays.Lookup(d.Date)
			want := named || d.Date.Weekday() == time.Sunday

			if d.IsHoliday != want {
				t.Errorf("%s IsHoliday = %v, want %v", dateutil.DateKey(d.Date), d.IsHoliday, want)
			}
			if d.HolidayName != name {
				t.Errorf("%s HolidayName = %q, want %q", dateutil.DateKey(d.Date), d.HolidayName, name)
			}
		}
	}
}

func TestBuildMonthGrid_UnnamedSunday(t *testing.T) {
	days := BuildMonthGrid(2026, time.January, DefaultHolidays(), time.Time{})

	// 2026-01-04 is a Sunday with no named holiday
	sunday := days[6]
	if sunday.Date.Day() != 4 || sunday.Date.Weekday() != time.Sunday {
		t.Fatalf("days[6] = %v, want Sunday 2026-01-04", sunday.Date)
	}
	if !sunday.IsHoliday {
		t.Error("Sunday IsHoliday = false, want true")
	}
	if sunday.HolidayName != "" {
		t.Errorf("Sunday HolidayName = %q, want empty", sunday.HolidayName)
	}
}

func TestBuildMonthGrid_Today(t *testing.T) {
	today := time.Date(2026, 10, 14, 17, 45, 0, 0, time.Local)
	days := BuildMonthGrid(2026, time.October, DefaultHolidays(), today)

	count := 0
	for _, d := range days {
		if d.IsToday {
			count++
			if !dateutil.IsSameDay(d.Date, today) {
				t.Errorf("IsToday set on %v", d.Date)
			}
		}
	}
	if count != 1 {
		t.Errorf("today cells = %d, want 1", count)
	}
}

func TestBuildMonthGrid_MonthOverflow(t *testing.T) {
	days := BuildMonthGrid(2026, 13, DefaultHolidays(), time.Time{})
	want := BuildMonthGrid(2027, time.January, DefaultHolidays(), time.Time{})

	for i := range days {
		if !days[i].Date.Equal(want[i].Date) || days[i].IsCurrentMonth != want[i].IsCurrentMonth {
			t.Fatalf("cell %d = %v, want %v", i, days[i].Date, want[i].Date)
		}
	}
}

func TestBuildMonthGrid_NilHolidays(t *testing.T) {
	days := BuildMonthGrid(2026, time.January, nil, time.Time{})
	if days[3].IsHoliday || days[3].HolidayName != "" {
		t.Errorf("2026-01-01 without table = %+v, want plain weekday", days[3])
	}
	if !days[6].IsHoliday {
		t.Error("Sunday without table should still be a holiday")
	}
}

func TestBuilder_YearGrids(t *testing.T) {
	now := time.Date(2026, 3, 23, 8, 0, 0, 0, time.Local)
	b := NewBuilder(DefaultHolidays(), func() time.Time { return now })

	grids := b.YearGrids(2026)
	for i, grid := range grids {
		if len(grid) != GridSize {
			t.Errorf("month %d: len = %d, want %d", i+1, len(grid), GridSize)
		}
	}

	march := b.MonthGrid(2026, time.March)
	found := false
	for _, d := range march {
		if d.IsToday {
			found = true
			if d.HolidayName != "San José" {
				t.Errorf("today holiday = %q, want %q", d.HolidayName, "San José")
			}
		}
	}
	if !found {
		t.Error("no cell flagged as today in March 2026")
	}
}
