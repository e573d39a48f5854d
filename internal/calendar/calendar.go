package calendar

import "time"

const (
	// GridSize is the number of cells in a month grid (6 weeks × 7 days)
	GridSize = 42

	// ReferenceYear is the year the holiday table and pattern anchor describe
	ReferenceYear = 2026
)

// Day represents a single cell of a month grid
type Day struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
	IsToday        bool      `json:"isToday"`
	IsHoliday      bool      `json:"isHoliday"`
	HolidayName    string    `json:"holidayName,omitempty"` // empty for unnamed Sundays
}

// Holiday is a named entry of a holiday table
type Holiday struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

// Holidays is a static date → name lookup
type Holidays interface {
	// Lookup returns the holiday name for the exact calendar date
	Lookup(date time.Time) (string, bool)

	// List returns every holiday in ascending date order
	List() []Holiday
}
