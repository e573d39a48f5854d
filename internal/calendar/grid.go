package calendar

import (
	"time"

	"github.com/username/calendario/pkg/dateutil"
)

// BuildMonthGrid returns the 42 days shown for the given month, Monday first.
// Months outside 1..12 normalise the way time.Date does (13 is January of next year).
func BuildMonthGrid(year int, month time.Month, holidays Holidays, today time.Time) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	start := dateutil.StartOfWeek(first)

	days := make([]Day, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		date := time.Date(start.Year(), start.Month(), start.Day()+i, 0, 0, 0, 0, time.Local)
		current := date.Year() == first.Year() && date.Month() == first.Month()
		days = append(days, newDay(date, current, holidays, today))
	}

	return days
}

func newDay(date time.Time, currentMonth bool, holidays Holidays, today time.Time) Day {
	name, named := "", false
	if holidays != nil {
		name, named = holidays.Lookup(date)
	}

	return Day{
		Date:           date,
		IsCurrentMonth: currentMonth,
		IsToday:        dateutil.IsSameDay(date, today),
		IsHoliday:      named || dateutil.IsSunday(date),
		HolidayName:    name,
	}
}

// Builder derives month grids from a holiday table and a clock
type Builder struct {
	holidays Holidays
	now      func() time.Time
}

// NewBuilder creates a Builder; a nil clock means time.Now
func NewBuilder(holidays Holidays, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{holidays: holidays, now: now}
}

// Holidays returns the table the builder annotates grids with
func (b *Builder) Holidays() Holidays {
	return b.holidays
}

// Now returns the builder's current time
func (b *Builder) Now() time.Time {
	return b.now()
}

// MonthGrid builds the grid for one month
func (b *Builder) MonthGrid(year int, month time.Month) []Day {
	return BuildMonthGrid(year, month, b.holidays, b.now())
}

// YearGrids builds the grids for all twelve months of the year
func (b *Builder) YearGrids(year int) [12][]Day {
	var grids [12][]Day
	today := b.now()
	for i := range grids {
		grids[i] = BuildMonthGrid(year, time.Month(i+1), b.holidays, today)
	}
	return grids
}
